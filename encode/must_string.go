package encode

import (
	"strings"

	"github.com/symflower/smtfmt/ir"
)

// MustString renders a term to a string, without the trailing newline
// Encode writes. It panics on encoder error, which a strings.Builder
// destination cannot produce.
func MustString(n *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(n, &b, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
