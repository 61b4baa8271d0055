package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/symflower/smtfmt"
)

func sexpFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc.Out, os.Stdin)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtReader(cfg *FmtConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	out, err := smtfmt.Format(in, cfg.encOpts()...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func fmtFile(cfg *FmtConfig, w io.Writer, file string) error {
	if file == "-" {
		return fmtReader(cfg, w, os.Stdin)
	}
	in, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	out, err := smtfmt.Format(in, cfg.encOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if cfg.Write {
		if bytes.Equal(in, out) {
			return nil
		}
		return os.WriteFile(file, out, 0644)
	}
	_, err = w.Write(out)
	return err
}
