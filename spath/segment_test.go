package spath

import (
	"testing"

	"github.com/signadot/scopepath/token"
)

func TestWithDepth(t *testing.T) {
	doc := token.NewPosDoc("a.b")
	span := doc.Span(2, 3)
	tests := []struct {
		name  string
		seg   Segment
		depth uint32
	}{
		{name: "plain", seg: Plain{Span: span}, depth: 2},
		{name: "scoped overwrite", seg: Scoped{Span: span, Depth: 9}, depth: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithDepth(tt.seg, tt.depth)
			sc, ok := got.(Scoped)
			if !ok {
				t.Fatalf("got %T want Scoped", got)
			}
			if sc.Depth != tt.depth {
				t.Errorf("got depth %d want %d", sc.Depth, tt.depth)
			}
			if Text(got) != "b" || SpanOf(got).Offset() != 2 {
				t.Errorf("span not preserved: %q at %d", Text(got), SpanOf(got).Offset())
			}
			if Text(tt.seg) != "b" {
				t.Errorf("original segment changed")
			}
		})
	}
}

func TestDepth(t *testing.T) {
	p := Plains("a")[0]
	if _, ok := Depth(p); ok {
		t.Errorf("plain segment has no depth")
	}
	d, ok := Depth(WithDepth(p, 4))
	if !ok || d != 4 {
		t.Errorf("got %d, %v", d, ok)
	}
}

func TestSegmentKinds(t *testing.T) {
	tests := []struct {
		text    string
		keyword bool
		marker  bool
	}{
		{"@root", true, false},
		{"@", true, false},
		{"root", false, false},
		{"./", false, true},
		{"../", false, true},
		{"../../", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		s := Plains(tt.text)[0]
		if IsKeyword(s) != tt.keyword {
			t.Errorf("IsKeyword(%q) = %v", tt.text, !tt.keyword)
		}
		if IsMarker(s) != tt.marker {
			t.Errorf("IsMarker(%q) = %v", tt.text, !tt.marker)
		}
	}
}

func TestSegmentString(t *testing.T) {
	s := Plains("x")[0]
	if got := s.(Plain).String(); got != "x" {
		t.Errorf("got %q", got)
	}
	if got := WithDepth(s, 3).(Scoped).String(); got != "x^3" {
		t.Errorf("got %q", got)
	}
}
