package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Layout bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SMTFMT_DEBUG_PARSE")
	d.Layout = boolEnv("SMTFMT_DEBUG_LAYOUT")
	d.LSP = boolEnv("SMTFMT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Layout() bool {
	return d.Layout
}
func LSP() bool {
	return d.LSP
}
