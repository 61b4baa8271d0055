// Package smtfmt formats S-expression documents in SMT-LIB syntax into a
// canonical layout: short terms on one line, everything else expanded with
// two-space indentation, comments and blank lines preserved.
//
// Formatting is all-or-nothing. Either the whole input parses and the
// whole canonical rendering is produced, or Format returns a
// *parse.LeftoverError and no output. Formatting its own output changes
// nothing: Format(Format(s)) == Format(s).
package smtfmt

import (
	"bytes"

	"github.com/symflower/smtfmt/debug"
	"github.com/symflower/smtfmt/encode"
	"github.com/symflower/smtfmt/parse"
)

// Format renders src in canonical form: top-level terms separated by
// single newlines, a trailing newline at the end.
func Format(src []byte, opts ...encode.EncodeOption) ([]byte, error) {
	terms, err := parse.Parse(src)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	if debug.Layout() {
		for _, t := range terms {
			debug.Logf("term: %v\n", t)
		}
	}
	var buf bytes.Buffer
	if err := encode.EncodeProgram(terms, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatString is Format for strings.
func FormatString(src string, opts ...encode.EncodeOption) (string, error) {
	res, err := Format([]byte(src), opts...)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// Formatted reports whether src already is in canonical form.
func Formatted(src []byte) bool {
	res, err := Format(src)
	if err != nil {
		return false
	}
	return bytes.Equal(res, src)
}
