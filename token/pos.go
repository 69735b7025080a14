package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the newlines of a source text so that byte offsets can be
// turned into line and column numbers. Lines and columns are 0-based.
type PosDoc struct {
	d string
	n []int
}

// NewPosDoc returns a PosDoc over src.
func NewPosDoc(src string) *PosDoc {
	p := &PosDoc{d: src}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			p.nl(i)
		}
	}
	return p
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if p.d[i] != '\n' {
		panic("token: newline index at non-newline byte")
	}
	p.n = append(p.n, i)
}

// Source returns the text the PosDoc indexes.
func (p *PosDoc) Source() string {
	return p.d
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// Offset is the inverse of LineCol. Positions past the end of a line are
// clamped to the line's end, and lines past the end of the document map to
// the document's length.
func (p *PosDoc) Offset(line, col int) int {
	if line < 0 || col < 0 {
		return 0
	}
	start := 0
	if line > 0 {
		if line > len(p.n) {
			return len(p.d)
		}
		start = p.n[line-1] + 1
	}
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	return min(start+col, end)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

// Span returns the source text between start and end, positioned at start.
func (p *PosDoc) Span(start, end int) Span {
	return Span{Text: p.d[start:end], Pos: p.Pos(start)}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	if p.D == nil {
		return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
