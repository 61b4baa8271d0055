package parse

import (
	"strings"

	"github.com/symflower/smtfmt/ir"
)

// grammar holds the compiled rules for one document. Top level terms are
// blank runs, standalone comments, and parenthesized expressions; atoms
// only occur inside lists.
type grammar struct {
	blank   step
	comment step
	attach  step
	atom    step
	expr    step
	program step
}

func newGrammar() *grammar {
	g := &grammar{}

	// A run of two or more newlines separates terms and carries blank
	// lines: one fewer than the newlines in the run.
	g.blank = match(`[ \t\r]*\n(?:[ \t\r]*\n)+`, func(text string) *ir.Node {
		return ir.FromBlank(strings.Count(text, "\n") - 1)
	})
	g.comment = match(`\s*(;[^\n]*)`, ir.FromComment)
	// An attached comment must stay on the line of the token it follows,
	// so unlike every other rule it never skips a newline.
	g.attach = match(`[ \t\r]*(;[^\n]*)`, ir.FromComment)

	// Decimal before numeral: a numeral is a proper prefix of a decimal
	// and would split "1.5" at the dot.
	g.atom = g.attached(choice(
		match(`\s*((?:0|[1-9][0-9]*)\.[0-9]+)`, ir.FromAtom),
		match(`\s*(0|[1-9][0-9]*)`, ir.FromAtom),
		match(`\s*(#x[0-9a-fA-F]+)`, ir.FromAtom),
		match(`\s*(#b[01]+)`, ir.FromAtom),
		match(`\s*("(?:[^"]|"")*")`, ir.FromAtom),
		match(`\s*(:?[a-zA-Z~!@$%^&*_+=<>.?/-][0-9a-zA-Z~!@$%^&*_+=<>.?/-]*)`, ir.FromAtom),
		match(`\s*(\|[^|\\]*\|)`, ir.FromAtom),
	))

	exprRef := func(cur cursor) ([]*ir.Node, cursor, bool) {
		return g.expr(cur)
	}
	body := sequence(
		match(`\s*\(`, nil),
		zeroOrMore(exprRef),
		match(`\s*\)`, nil),
	)
	sexpr := g.attached(func(cur cursor) ([]*ir.Node, cursor, bool) {
		children, next, ok := body(cur)
		if !ok {
			return nil, cur, false
		}
		return []*ir.Node{ir.FromSlice(children)}, next, true
	})

	g.expr = choice(g.blank, g.comment, sexpr, g.atom)
	g.program = oneOrMore(choice(g.blank, g.comment, sexpr))
	return g
}

// attached wraps a rule producing a single node so that a comment sharing
// the node's last source line ends up in its Comment field.
func (g *grammar) attached(s step) step {
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		nodes, next, ok := s(cur)
		if !ok {
			return nil, cur, false
		}
		if cs, after, ok := g.attach(next); ok {
			nodes[0].WithComment(cs[0])
			next = after
		}
		return nodes, next, true
	}
}
