package parse

import (
	"bytes"
	"testing"

	"github.com/symflower/smtfmt/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`(simple x)`,
		"(1\n;comment\n)",
		"(1 ; comment\n2)",
		`(let ((x y) (y x)))`,
		`(`,
		"(assert (= x (f y)))\n\n; note\n(check-sat)",
		"(a)\n\n\n(b)",
		`(str "with "" quote and (")`,
		`(:kw #xFF #b1010 2.75 |quoted sym|)`,
		`;; only a comment`,
		"(a\n\n\nb)",
		"(a b) ; trailing",
		`()`,
		"((((deep))))",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		terms, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// Secondary: parsed input must encode
		var buf bytes.Buffer
		if err := encode.EncodeProgram(terms, &buf); err != nil {
			t.Fatalf("encode after successful parse: %v", err)
		}

		// Tertiary: the canonical rendering must parse again
		if _, err := Parse(buf.Bytes()); err != nil {
			t.Fatalf("reparse of %q: %v", buf.Bytes(), err)
		}
	})
}
