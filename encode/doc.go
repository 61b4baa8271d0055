// Package encode renders ir.Node trees as canonically formatted
// S-expression text.
//
// Layout follows two rules. A list whose subtree holds no comments, blank
// lines, or attached comments, and whose one-line rendering is strictly
// under the column limit, is printed on a single line with one space
// between children. Every other list is expanded: children on their own
// lines, indented one unit per nesting level, with the opening parenthesis
// hugging a leading atom or comment and the closing parenthesis hugging
// the last child unless a comment or blank run holds it on its own line.
//
// Rendering the output again yields the output unchanged.
package encode
