package smtfmt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/symflower/smtfmt/ir"
	"github.com/symflower/smtfmt/parse"
)

// testData is already canonical: formatting it must change nothing.
const testData = `(simple x)

(list (list (fun) (number 0.5) atom))

;; comment

(list
  ; Comments are aligned too!
  (string "string literal with("))

(let
  ; List of lists.
  ((x y) (y x)))

; Short expressions on one line
(let ((x y) (y x)))

; Longer expressions are broken up and aligned.
(assert
  (=
    x
    (Pointer
      true
      #x00000002
      (variant_node1 (Pointer true #x00000001 variant_leaf1)))))

(declare-datatypes
  ((Pointer 0) (Any 0))
  (
    ((Pointer (? Bool) (address (_ BitVec 32)) (* Any)))
    (
      (variant_leaf1)
      (variant_leaf2)
      (variant_node1 (node1.next Pointer))
      (variant_node2 (node2.next Pointer)))))
`

func TestFormatTestData(t *testing.T) {
	got, err := FormatString(testData)
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}
	if diff := cmp.Diff(testData, got); diff != "" {
		t.Errorf("canonical document changed (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{in: "(simple x)", want: "(simple x)\n"},
		{in: "(simple x)\n", want: "(simple x)\n"},
		{in: "(a)(b)", want: "(a)\n(b)\n"},
		{in: "(1\n;comment\n)", want: "(1\n  ;comment\n  )\n"},
		{in: "(1 ; comment\n2)", want: "(1 ; comment\n  2)\n"},
		{in: "(let ((x y) (y x)))", want: "(let ((x y) (y x)))\n"},
	} {
		got, err := FormatString(tc.in)
		if err != nil {
			t.Errorf("FormatString(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatString(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, in := range []string{
		testData,
		"(   messy (  input\n\n\n with) \"strings\"\n; and comments\n)",
		"(a ;x\n(b\n\nc))",
		"; just\n\n; comments\n",
	} {
		once, err := FormatString(in)
		if err != nil {
			t.Fatalf("FormatString(%q): %v", in, err)
		}
		twice, err := FormatString(once)
		if err != nil {
			t.Fatalf("FormatString(%q): %v", once, err)
		}
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("not a fixpoint for %q (-once +twice):\n%s", in, diff)
		}
	}
}

// leafSummary flattens a document to its content: atom and comment text
// plus blank counts, in source order.
func leafSummary(terms []*ir.Node) []string {
	var res []string
	for _, term := range terms {
		for _, leaf := range ir.Leaves(term) {
			if leaf.Type == ir.BlankType {
				res = append(res, fmt.Sprintf("blank/%d", leaf.Blanks))
				continue
			}
			res = append(res, leaf.Text)
		}
	}
	return res
}

func TestFormatPreservesContent(t *testing.T) {
	for _, in := range []string{
		testData,
		"(a (b\n\n(c  d)) ; e\n)",
		"(x \"s(\" #b01 2.5\n;; c\n)",
	} {
		before, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		out, err := Format([]byte(in))
		if err != nil {
			t.Fatalf("Format(%q): %v", in, err)
		}
		after, err := parse.Parse(out)
		if err != nil {
			t.Fatalf("Parse of output %q: %v", out, err)
		}
		if diff := cmp.Diff(leafSummary(before), leafSummary(after)); diff != "" {
			t.Errorf("content changed for %q (-in +out):\n%s", in, diff)
		}
	}
}

func TestFormatErr(t *testing.T) {
	for _, tc := range []struct {
		in       string
		leftover string
	}{
		{in: "(", leftover: "("},
		{in: "(a", leftover: "(a"},
		{in: "(a))", leftover: ")"},
		{in: "", leftover: ""},
		{in: "(a) oops)", leftover: "oops)"},
	} {
		out, err := Format([]byte(tc.in))
		if err == nil {
			t.Errorf("Format(%q): expected error, got %q", tc.in, out)
			continue
		}
		if out != nil {
			t.Errorf("Format(%q): output on failure: %q", tc.in, out)
		}
		if !errors.Is(err, parse.ErrParse) {
			t.Errorf("Format(%q): error %v does not unwrap to parse.ErrParse", tc.in, err)
		}
		var lErr *parse.LeftoverError
		if !errors.As(err, &lErr) {
			t.Errorf("Format(%q): expected *parse.LeftoverError, got %v", tc.in, err)
			continue
		}
		if lErr.Leftover != tc.leftover {
			t.Errorf("Format(%q): leftover %q, want %q", tc.in, lErr.Leftover, tc.leftover)
		}
	}
}

func TestFormatted(t *testing.T) {
	if !Formatted([]byte("(a b)\n")) {
		t.Error("canonical input reported unformatted")
	}
	if Formatted([]byte("( a b )")) {
		t.Error("messy input reported formatted")
	}
	if Formatted([]byte("(")) {
		t.Error("invalid input reported formatted")
	}
}

func FuzzFormat(f *testing.F) {
	f.Add([]byte(testData))
	f.Add([]byte("(1 ; c\n2)"))
	f.Add([]byte("(a\n\n\nb)"))
	f.Add([]byte("("))
	f.Fuzz(func(t *testing.T, data []byte) {
		once, err := Format(data)
		if err != nil {
			return
		}
		twice, err := Format(once)
		if err != nil {
			t.Fatalf("canonical output does not parse: %q: %v", once, err)
		}
		if string(once) != string(twice) {
			t.Errorf("format not idempotent:\nonce  %q\ntwice %q", once, twice)
		}
	})
}
