package debug

import (
	"fmt"
	"os"

	"github.com/symflower/smtfmt/encode"
	"github.com/symflower/smtfmt/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered through the
// encoder so traces show terms, not struct dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
