package encode

import (
	"io"
	"strings"

	"github.com/symflower/smtfmt/ir"
)

// Encode writes the canonical rendering of a single term to w, followed by
// a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	s := es.term(node) + "\n"
	if es.colors != nil {
		s = es.colors.Colorize(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

// EncodeProgram renders a document's top-level terms, joined by single
// newlines, with a trailing newline. The terms are the slice parse.Parse
// produces for a whole document.
func EncodeProgram(terms []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = es.term(t)
	}
	s := strings.Join(parts, "\n") + "\n"
	if es.colors != nil {
		s = es.colors.Colorize(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) term(n *ir.Node) string {
	switch n.Type {
	case ir.AtomType:
		return es.attach(n.Text, n)
	case ir.CommentType:
		return n.Text
	case ir.BlankType:
		// A blank run of k lines sits between two single-newline
		// separators, so it contributes k-1 newlines of its own.
		if n.Blanks <= 1 {
			return ""
		}
		return strings.Repeat("\n", n.Blanks-1)
	case ir.ListType:
		if s, ok := es.oneline(n); ok && len(s) < es.width {
			return es.attach(s, n)
		}
		return es.attach(es.expand(n), n)
	}
	return ""
}

// oneline renders a list on a single line. It fails when any descendant is
// a comment or blank run or carries an attached comment: those force the
// expanded layout. The node's own attached comment does not disqualify it.
func (es *EncState) oneline(n *ir.Node) (string, bool) {
	parts := make([]string, len(n.Values))
	for i, c := range n.Values {
		if c.Comment != nil || c.Type == ir.CommentType || c.Type == ir.BlankType {
			return "", false
		}
		if c.Type == ir.AtomType {
			parts[i] = c.Text
			continue
		}
		s, ok := es.oneline(c)
		if !ok {
			return "", false
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, " ") + ")", true
}

func (es *EncState) expand(n *ir.Node) string {
	var b strings.Builder
	b.WriteString("(")
	last := len(n.Values) - 1
	for i, c := range n.Values {
		if i == 0 && c.Type != ir.AtomType && c.Type != ir.CommentType {
			b.WriteString("\n")
		}
		b.WriteString(es.term(c))
		if i != last || lineEndsOpen(c) {
			b.WriteString("\n")
		}
	}
	b.WriteString(")")
	return es.indentTail(b.String())
}

// lineEndsOpen reports whether a rendered child's last line cannot take a
// closing parenthesis: a trailing comment would swallow it and a blank run
// would misplace it, so the parenthesis moves to its own line.
func lineEndsOpen(c *ir.Node) bool {
	return c.Type == ir.CommentType || c.Type == ir.BlankType || c.Comment != nil
}

// indentTail shifts every line after the first one level right. Blank
// lines stay empty.
func (es *EncState) indentTail(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = es.indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (es *EncState) attach(s string, n *ir.Node) string {
	if n.Comment == nil {
		return s
	}
	return s + " " + n.Comment.Text
}
