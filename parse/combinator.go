package parse

import (
	"fmt"
	"regexp"

	"github.com/symflower/smtfmt/ir"
)

// A cursor is an immutable read position into the source. Steps that fail
// hand back the cursor they were given, which is all the backtracking the
// engine needs.
type cursor struct {
	src string
	off int
}

func (c cursor) rest() string {
	return c.src[c.off:]
}

func (c cursor) advance(n int) cursor {
	c.off += n
	return c
}

// A step is one grammar rule. Applied at a cursor it either fails, or
// succeeds yielding zero or more nodes and the cursor past the consumed
// input.
type step func(cur cursor) ([]*ir.Node, cursor, bool)

// match applies pattern anchored at the cursor. On success mk, when
// non-nil, derives a node from the matched text; a pattern with a capture
// group yields the group instead of the whole match.
func match(pattern string, mk func(text string) *ir.Node) step {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		m := re.FindStringSubmatchIndex(cur.rest())
		if m == nil {
			return nil, cur, false
		}
		next := cur.advance(m[1])
		if mk == nil {
			return nil, next, true
		}
		text := cur.rest()[m[0]:m[1]]
		if len(m) > 2 && m[2] >= 0 {
			text = cur.rest()[m[2]:m[3]]
		}
		return []*ir.Node{mk(text)}, next, true
	}
}

// sequence succeeds when every step succeeds in order, concatenating their
// nodes. A failure restores the starting cursor.
func sequence(steps ...step) step {
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		var res []*ir.Node
		next := cur
		for _, s := range steps {
			nodes, after, ok := s(next)
			if !ok {
				return nil, cur, false
			}
			res = append(res, nodes...)
			next = after
		}
		return res, next, true
	}
}

// choice tries each alternative at the same cursor and commits to the
// first that succeeds.
func choice(alts ...step) step {
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		for _, s := range alts {
			if nodes, next, ok := s(cur); ok {
				return nodes, next, true
			}
		}
		return nil, cur, false
	}
}

// zeroOrMore applies s until it fails. Every successful application must
// consume input; a zero-width success under repetition would loop forever,
// so it panics instead.
func zeroOrMore(s step) step {
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		var res []*ir.Node
		next := cur
		for {
			nodes, after, ok := s(next)
			if !ok {
				return res, next, true
			}
			if after.off == next.off {
				panic(fmt.Sprintf("parse: zero-width match in repetition at offset %d", next.off))
			}
			res = append(res, nodes...)
			next = after
		}
	}
}

func oneOrMore(s step) step {
	star := zeroOrMore(s)
	return func(cur cursor) ([]*ir.Node, cursor, bool) {
		first, next, ok := s(cur)
		if !ok {
			return nil, cur, false
		}
		more, after, _ := star(next)
		return append(first, more...), after, true
	}
}
