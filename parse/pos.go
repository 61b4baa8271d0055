package parse

import (
	"fmt"
	"sort"
)

// A PosDoc maps byte offsets in a document to line/column coordinates. It
// indexes the newlines of the document once, so LineCol is a binary search.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	res := &PosDoc{d: d}
	for i, b := range d {
		if b == '\n' {
			res.n = append(res.n, i)
		}
	}
	return res
}

// LineCol gives the 0-based line and column of the byte at offset i.
func (p *PosDoc) LineCol(i int) (int, int) {
	line := sort.Search(len(p.n), func(j int) bool {
		return p.n[j] >= i
	})
	start := 0
	if line > 0 {
		start = p.n[line-1] + 1
	}
	return line, i - start
}

// Pos ties an offset to its document for display.
func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) Line() int {
	l, _ := p.D.LineCol(p.I)
	return l
}

func (p *Pos) Col() int {
	_, c := p.D.LineCol(p.I)
	return c
}

func (p *Pos) String() string {
	line, col := p.D.LineCol(p.I)
	end := p.I + 16
	if end > len(p.D.d) {
		end = len(p.D.d)
	}
	return fmt.Sprintf("%d:%d near %q", line+1, col+1, p.D.d[p.I:end])
}
