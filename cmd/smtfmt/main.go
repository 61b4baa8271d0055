// Command smtfmt pretty-prints an S-expression document from standard
// input to standard output.
//
// Formatting is all-or-nothing: if the input does not parse, it is echoed
// to standard output unchanged, a diagnostic naming the unconsumed input
// goes to standard error, and the exit status is 1.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/symflower/smtfmt"
	"github.com/symflower/smtfmt/encode"
)

func usage() string {
	return fmt.Sprintf(`usage: %s < input.lisp

Pretty-print a balanced set of parentheses.

Short expressions (< %d characters) are printed inline.
Larger expressions are broken up in lines and aligned.
`, filepath.Base(os.Args[0]), encode.DefaultWidth)
}

func main() {
	if len(os.Args) > 1 {
		fmt.Print(usage())
		os.Exit(1)
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smtfmt: error: %v\n", err)
		os.Exit(1)
	}

	out, err := smtfmt.Format(in)
	if err != nil {
		os.Stdout.Write(in)
		fmt.Fprintf(os.Stderr, "smtfmt: error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
