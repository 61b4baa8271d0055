package encode

import "strings"

const (
	// DefaultWidth is the column limit: one-line renderings must be
	// strictly shorter.
	DefaultWidth = 80
	// DefaultIndent is the number of spaces per nesting level.
	DefaultIndent = 2
)

// EncState carries the encoder configuration while rendering.
type EncState struct {
	width  int
	indent string
	colors *Colors
}

type EncodeOption func(*EncState)

func EncodeWidth(n int) EncodeOption {
	return func(es *EncState) {
		es.width = n
	}
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = strings.Repeat(" ", n)
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.colors = c
	}
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		width:  DefaultWidth,
		indent: strings.Repeat(" ", DefaultIndent),
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
