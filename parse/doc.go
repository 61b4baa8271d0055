// Package parse turns S-expression source text into ir.Node trees.
//
// The parser is a small backtracking combinator engine (combinator.go)
// driving an explicit grammar (grammar.go). A failed alternative restores
// the input cursor, so alternatives compose without lookahead bookkeeping.
//
// Parsing is all-or-nothing: Parse either consumes the whole document, up
// to trailing whitespace, or reports a LeftoverError carrying the input it
// could not make sense of.
package parse
