package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/symflower/smtfmt"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, os.Stdin)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	if file == "-" {
		return viewReader(cfg, w, os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	out, err := smtfmt.Format(in, cfg.encOpts(w)...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
