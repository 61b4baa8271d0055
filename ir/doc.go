// Package ir provides the intermediate representation (IR) for S-expression
// documents.
//
// # Overview
//
// The IR is a lossless syntax tree: it keeps every atom verbatim, every
// comment byte-for-byte, and a record of the blank lines between terms, so
// that a document can be re-rendered without losing anything a formatter
// must preserve.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - AtomType: a single token (numeral, decimal, hex, binary, string,
//     symbol, keyword, or quoted symbol), stored exactly as scanned
//   - CommentType: a ";" comment, text kept verbatim up to end of line
//   - BlankType: a run of blank source lines, stored as a count
//   - ListType: a parenthesized, ordered sequence of child nodes
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	atom := ir.FromAtom("assert")
//	com := ir.FromComment("; a note")
//	list := ir.FromSlice([]*ir.Node{atom, com})
//
// # Comments
//
// A comment either stands on its own (a CommentType node among a list's
// Values or at the top level) or is attached: it shares a source line with
// the node it follows and lives in that node's Comment field. An attached
// comment on a ListType node is one that appeared on the same line as the
// list's closing parenthesis. A node has at most one attached comment.
//
// # Thread Safety
//
// Node structures are not thread-safe. The tree is built once per parse,
// consumed read-only by the encoder, and then discarded; independent
// parses never share nodes.
//
// # Related Packages
//
//   - github.com/symflower/smtfmt/parse - Parses text into IR nodes
//   - github.com/symflower/smtfmt/encode - Encodes IR nodes to text
package ir
