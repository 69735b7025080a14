package spath

import (
	"strings"

	"github.com/signadot/scopepath/token"
)

// Path is a sequence of segments, outermost first.
type Path []Segment

// Plains builds a Path of Plain segments without source positions.
func Plains(texts ...string) Path {
	res := make(Path, len(texts))
	for i, t := range texts {
		res[i] = Plain{Span: token.Span{Text: t}}
	}
	return res
}

func (p Path) Texts() []string {
	res := make([]string, len(p))
	for i, s := range p {
		res[i] = Text(s)
	}
	return res
}

// String joins the segment texts with '.', without a separator after
// segments that end in '/'.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		t := Text(s)
		if i > 0 && !strings.HasSuffix(Text(p[i-1]), "/") {
			b.WriteByte('.')
		}
		b.WriteString(t)
	}
	return b.String()
}

// Clone returns a copy of p with its own segment list.
func (p Path) Clone() Path {
	res := make(Path, len(p))
	copy(res, p)
	return res
}

// EqualText reports whether p and q have the same segment texts. Depths
// are ignored.
func (p Path) EqualText(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	return textsMatch(p, q)
}

// HasTextPrefix reports whether the segment texts of q are a prefix of p.
func (p Path) HasTextPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	return textsMatch(p[:len(q)], q)
}

// textsMatch compares the texts of a and b, which must have equal length.
func textsMatch(a, b Path) bool {
	for i := range a {
		if Text(a[i]) != Text(b[i]) {
			return false
		}
	}
	return true
}
