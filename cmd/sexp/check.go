package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/symflower/smtfmt"
)

func sexpCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	dirty := false
	for _, file := range args {
		clean, err := checkFile(cfg, cc.Out, file)
		if err != nil {
			return err
		}
		if !clean {
			dirty = true
		}
	}
	if dirty {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, w io.Writer, file string) (bool, error) {
	var (
		in  []byte
		err error
	)
	if file == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(file)
	}
	if err != nil {
		return false, fmt.Errorf("could not read %q: %w", file, err)
	}
	out, err := smtfmt.Format(in, cfg.encOpts()...)
	if err != nil {
		return false, fmt.Errorf("error processing %s: %w", file, err)
	}
	if bytes.Equal(in, out) {
		return true, nil
	}
	fmt.Fprintf(w, "%s is not formatted\n", file)
	if !cfg.Quiet {
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(string(in), string(out), true)
		fmt.Fprint(w, diffCfg.DiffPrettyText(diffs))
	}
	return false, nil
}
