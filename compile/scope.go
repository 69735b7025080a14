package compile

import (
	"github.com/signadot/scopepath/debug"
	"github.com/signadot/scopepath/spath"
)

// Scope is the stack of paths of the blocks enclosing a reference,
// outermost first.
type Scope struct {
	frames []spath.Path
}

func (s *Scope) Push(p spath.Path) {
	s.frames = append(s.frames, p)
}

func (s *Scope) Pop() spath.Path {
	n := len(s.frames)
	if n == 0 {
		panic("compile: Pop on empty scope")
	}
	p := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return p
}

func (s *Scope) Len() int {
	return len(s.frames)
}

// Base returns the path of the innermost frame, or nil at top level.
func (s *Scope) Base() spath.Path {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Resolve resolves rel against the innermost frame and tags the result
// with the depth of the frames whose paths it extends.
func (s *Scope) Resolve(rel spath.Path) spath.Path {
	res := spath.Resolve(s.Base(), rel)
	s.tag(res)
	if debug.Resolve() {
		debug.Logf("resolve %v in %v -> %v\n", rel, s.Base(), res)
	}
	return res
}

// tag marks, for each frame whose path is a prefix of p, the last segment
// of that prefix with the number of frames opened after it. Inner frames
// are visited last so they win when two frames end at the same segment.
func (s *Scope) tag(p spath.Path) {
	n := len(s.frames)
	for f, frame := range s.frames {
		if len(frame) == 0 || !p.HasTextPrefix(frame) {
			continue
		}
		i := len(frame) - 1
		if spath.IsKeyword(p[i]) {
			continue
		}
		p[i] = spath.WithDepth(p[i], uint32(n-1-f))
	}
}
