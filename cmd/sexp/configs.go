package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/symflower/smtfmt/encode"
)

type MainConfig struct {
	Width  int `cli:"name=width desc='column limit for one-line terms'"`
	Indent int `cli:"name=indent desc='spaces per nesting level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Width > 0 {
		res = append(res, encode.EncodeWidth(cfg.Width))
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write results back to source files'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='report unformatted files without diffs'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='encode with color'"`

	View *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts()
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.View.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
