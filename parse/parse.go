package parse

import (
	"strings"
	"unicode"

	"github.com/symflower/smtfmt/ir"
)

// Parse parses a whole document into its top-level terms. The input must
// be consumed completely, up to trailing whitespace; anything else,
// including empty or whitespace-only input, yields a *LeftoverError.
//
// Blank lines before the first term are dropped: with no line above them
// they separate nothing, and keeping them would break the round-trip law
// at the document boundary.
func Parse(d []byte) ([]*ir.Node, error) {
	g := newGrammar()
	nodes, next, ok := g.program(cursor{src: string(d)})
	if ok {
		for len(nodes) > 0 && nodes[0].Type == ir.BlankType {
			nodes = nodes[1:]
		}
	}
	if !ok || strings.TrimSpace(next.rest()) != "" || len(nodes) == 0 {
		return nil, leftover(string(d), next.off)
	}
	return nodes, nil
}

func leftover(src string, off int) *LeftoverError {
	rest := src[off:]
	lead := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
	return &LeftoverError{
		Leftover: strings.TrimSpace(rest),
		Offset:   off + lead,
	}
}
