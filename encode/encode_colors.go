package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ColorAttr classifies a span of formatted output for colorization.
type ColorAttr int

const (
	ParenColor ColorAttr = iota
	SymbolColor
	KeywordColor
	NumberColor
	StringColor
	QuotedColor
	CommentColor
)

type Colorable = func(string, ...any) string

// Colors maps span classes to paint functions. Classes missing from Map
// fall back to Default.
type Colors struct {
	Default Colorable
	Map     map[ColorAttr]Colorable
}

func NewColors() *Colors {
	return &Colors{
		Default: fmt.Sprintf,
		Map: map[ColorAttr]Colorable{
			ParenColor:   color.RGB(128, 128, 128).SprintfFunc(),
			KeywordColor: color.New(color.FgCyan).SprintfFunc(),
			NumberColor:  color.New(color.FgGreen).SprintfFunc(),
			StringColor:  color.New(color.FgYellow).SprintfFunc(),
			QuotedColor:  color.New(color.FgMagenta).SprintfFunc(),
			CommentColor: color.RGB(106, 153, 85).SprintfFunc(),
		},
	}
}

func (c *Colors) Get(attr ColorAttr) Colorable {
	if f, ok := c.Map[attr]; ok {
		return f
	}
	return c.Default
}

func (c *Colors) paint(attr ColorAttr, s string) string {
	return c.Get(attr)("%s", s)
}

// Colorize paints already-formatted output. Outside the inserted escape
// sequences the bytes pass through unchanged, so stripped output equals
// the input.
func (c *Colors) Colorize(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '(' || ch == ')':
			b.WriteString(c.paint(ParenColor, string(ch)))
			i++
		case ch == ';':
			j := i
			for j < len(s) && s[j] != '\n' {
				j++
			}
			b.WriteString(c.paint(CommentColor, s[i:j]))
			i = j
		case ch == '"':
			j := i + 1
			for j < len(s) {
				if s[j] != '"' {
					j++
					continue
				}
				if j+1 < len(s) && s[j+1] == '"' {
					j += 2
					continue
				}
				j++
				break
			}
			b.WriteString(c.paint(StringColor, s[i:j]))
			i = j
		case ch == '|':
			j := strings.IndexByte(s[i+1:], '|')
			if j < 0 {
				j = len(s)
			} else {
				j = i + 2 + j
			}
			b.WriteString(c.paint(QuotedColor, s[i:j]))
			i = j
		case ch == ':':
			j := tokenEnd(s, i+1)
			b.WriteString(c.paint(KeywordColor, s[i:j]))
			i = j
		case ch >= '0' && ch <= '9' || ch == '#':
			j := tokenEnd(s, i+1)
			b.WriteString(c.paint(NumberColor, s[i:j]))
			i = j
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			b.WriteByte(ch)
			i++
		default:
			j := tokenEnd(s, i+1)
			b.WriteString(c.paint(SymbolColor, s[i:j]))
			i = j
		}
	}
	return b.String()
}

func tokenEnd(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n', '(', ')', ';':
			return i
		}
		i++
	}
	return i
}
