package spath

import (
	"fmt"

	"github.com/signadot/scopepath/token"
)

// Segment is one component of a Path. The only implementations are Plain
// and Scoped.
type Segment interface {
	isSegment()
}

// Plain is a segment carrying only its source text.
type Plain struct {
	Span token.Span
}

// Scoped is a segment tagged with the number of enclosing scopes a reader
// must climb to find the value it names. Depth is never consulted by
// Resolve.
type Scoped struct {
	Span  token.Span
	Depth uint32
}

func (Plain) isSegment()  {}
func (Scoped) isSegment() {}

func (p Plain) String() string {
	return p.Span.Text
}

func (s Scoped) String() string {
	return fmt.Sprintf("%s^%d", s.Span.Text, s.Depth)
}

// Text returns the source text of s.
func Text(s Segment) string {
	return SpanOf(s).Text
}

// SpanOf returns the source span of s.
func SpanOf(s Segment) token.Span {
	switch x := s.(type) {
	case Plain:
		return x.Span
	case Scoped:
		return x.Span
	default:
		panic(fmt.Sprintf("spath: unknown segment type %T", s))
	}
}

// WithDepth returns a Scoped segment with the span of s and the given depth.
func WithDepth(s Segment, depth uint32) Segment {
	switch x := s.(type) {
	case Plain:
		return Scoped{Span: x.Span, Depth: depth}
	case Scoped:
		return Scoped{Span: x.Span, Depth: depth}
	default:
		panic(fmt.Sprintf("spath: unknown segment type %T", s))
	}
}

// Depth returns the depth of s and whether s carries one.
func Depth(s Segment) (uint32, bool) {
	switch x := s.(type) {
	case Plain:
		return 0, false
	case Scoped:
		return x.Depth, true
	default:
		panic(fmt.Sprintf("spath: unknown segment type %T", s))
	}
}

// IsKeyword reports whether s names a reserved keyword such as @root.
func IsKeyword(s Segment) bool {
	t := Text(s)
	return len(t) > 0 && t[0] == KeywordPrefix
}

// IsMarker reports whether s is a stay or up marker.
func IsMarker(s Segment) bool {
	t := Text(s)
	return t == Stay || t == Up
}
