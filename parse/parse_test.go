package parse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/symflower/smtfmt/ir"
)

// dumpNode gives a compact shape for assertions: lists in parens, blanks
// as blank/N, attached comments in angle brackets.
func dumpNode(n *ir.Node) string {
	var s string
	switch n.Type {
	case ir.AtomType, ir.CommentType:
		s = n.Text
	case ir.BlankType:
		s = fmt.Sprintf("blank/%d", n.Blanks)
	case ir.ListType:
		parts := make([]string, len(n.Values))
		for i, c := range n.Values {
			parts[i] = dumpNode(c)
		}
		s = "(" + strings.Join(parts, " ") + ")"
	}
	if n.Comment != nil {
		s += "<" + n.Comment.Text + ">"
	}
	return s
}

func dump(nodes []*ir.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = dumpNode(n)
	}
	return strings.Join(parts, " ")
}

type parseTest struct {
	in   string
	want string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `(simple x)`,
			want: `(simple x)`,
		},
		{
			in:   `(a (b c) (d (e)))`,
			want: `(a (b c) (d (e)))`,
		},
		{
			in:   "(  a \t b\n c )",
			want: `(a b c)`,
		},
		{
			in:   `()`,
			want: `()`,
		},
		{
			in:   `(0 42 2.75 #xDEADbeef #b1010 :kw |quoted sym| <= - ?x)`,
			want: `(0 42 2.75 #xDEADbeef #b1010 :kw |quoted sym| <= - ?x)`,
		},
		{
			in:   `(str "a string with ( and "" inside")`,
			want: `(str "a string with ( and "" inside")`,
		},
		{
			// A numeral is split off before a trailing symbol.
			in:   `(1abc)`,
			want: `(1 abc)`,
		},
		{
			in:   ";; standalone",
			want: ";; standalone",
		},
		{
			in:   "(1\n;inside\n)",
			want: "(1 ;inside)",
		},
		{
			in:   "(1 ; on the line\n2)",
			want: "(1<; on the line> 2)",
		},
		{
			in:   "(a b) ; trailing",
			want: "(a b)<; trailing>",
		},
		{
			in:   "(a)\n\n\n\n(b)",
			want: "(a) blank/3 (b)",
		},
		{
			in:   "(a\n\nb)",
			want: "(a blank/1 b)",
		},
		{
			in:   "; c\n(a)",
			want: "; c (a)",
		},
		{
			// Leading blank lines have nothing to separate.
			in:   "\n\n\n(a)",
			want: "(a)",
		},
		{
			in:   "(a)\n\n",
			want: "(a) blank/1",
		},
		{
			in:   "(a)(b)",
			want: "(a) (b)",
		},
	}
	for _, pt := range pts {
		nodes, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("Parse(%q): %v", pt.in, err)
			continue
		}
		if got := dump(nodes); got != pt.want {
			t.Errorf("Parse(%q): got %q, want %q", pt.in, got, pt.want)
		}
	}
}

func TestParseErr(t *testing.T) {
	for _, in := range []string{
		"",
		"   \n \n\t",
		"(",
		")",
		"(a",
		"(a))",
		"(a) trailing",
		"atom-at-top-level",
		"(1 ; comment eats the paren)",
		`("unterminated)`,
	} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("Parse(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): error %v does not unwrap to ErrParse", in, err)
		}
	}
}

func TestLeftoverError(t *testing.T) {
	_, err := Parse([]byte("(a)  (b"))
	var lErr *LeftoverError
	if !errors.As(err, &lErr) {
		t.Fatalf("expected *LeftoverError, got %v", err)
	}
	if lErr.Leftover != "(b" {
		t.Errorf("Leftover: got %q, want %q", lErr.Leftover, "(b")
	}
	if lErr.Offset != 5 {
		t.Errorf("Offset: got %d, want 5", lErr.Offset)
	}
	if got, want := err.Error(), "not formatting, leftover: (b"; got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}
}

func TestLeftoverWholeInput(t *testing.T) {
	_, err := Parse([]byte("  ("))
	var lErr *LeftoverError
	if !errors.As(err, &lErr) {
		t.Fatalf("expected *LeftoverError, got %v", err)
	}
	if lErr.Leftover != "(" {
		t.Errorf("Leftover: got %q, want %q", lErr.Leftover, "(")
	}
	if lErr.Offset != 2 {
		t.Errorf("Offset: got %d, want 2", lErr.Offset)
	}
}
