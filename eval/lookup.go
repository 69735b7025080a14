package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/scopepath/debug"
	"github.com/signadot/scopepath/spath"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Start says where a Lookup begins its walk.
type Start int

const (
	FromRoot Start = iota
	FromFrame
	FromKeyword
)

func (s Start) String() string {
	switch s {
	case FromRoot:
		return "root"
	case FromFrame:
		return "frame"
	case FromKeyword:
		return "keyword"
	}
	return "Start(" + strconv.Itoa(int(s)) + ")"
}

// Frame is the value of an open block at render time, with the keyword
// variables it binds.
type Frame struct {
	Value any
	Vars  map[string]any
}

// Lookup is a compiled walk over data for one resolved path.
type Lookup struct {
	Path    spath.Path
	Start   Start
	Keyword string
	// Depth selects the frame when Start is FromFrame, 0 being the
	// innermost.
	Depth uint32
	Walk  []string
	Src   string

	program *vm.Program
}

// CompileLookup compiles the walk described by the resolved path p.
//
// The walk starts at the frame named by the last depth tagged segment of p
// and covers the segments after it. Without a tag, a leading @root or no
// keyword walks from the root, and any other keyword is looked up in the
// frames' variables. An empty path is the root itself.
func CompileLookup(p spath.Path) (*Lookup, error) {
	l := &Lookup{Path: p}
	walkFrom := 0
	for i := len(p) - 1; i >= 0; i-- {
		if d, ok := spath.Depth(p[i]); ok {
			l.Start = FromFrame
			l.Depth = d
			walkFrom = i + 1
			break
		}
	}
	if l.Start != FromFrame && len(p) > 0 && spath.IsKeyword(p[0]) {
		kw := spath.Text(p[0])
		walkFrom = 1
		if kw != "@root" {
			if len(p) > 1 {
				return nil, fmt.Errorf("%w: keyword %s followed by %s", ErrLookup, kw, p[1:].String())
			}
			l.Start = FromKeyword
			l.Keyword = kw
		}
	}
	for _, s := range p[walkFrom:] {
		l.Walk = append(l.Walk, spath.Text(s))
	}
	l.Src = walkSource(l.Walk)
	prg, err := expr.Compile(l.Src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	l.program = prg
	return l, nil
}

// walkSource builds get(get(v, w[0]), w[1]) for a walk of two segments.
// Segment texts stay in the walk variable so that no key is re-read as
// expr source.
func walkSource(walk []string) string {
	var b strings.Builder
	for range walk {
		b.WriteString(getName + "(")
	}
	b.WriteString(valueName)
	for i := range walk {
		fmt.Fprintf(&b, ", %s[%d])", walkName, i)
	}
	return b.String()
}

// Run evaluates the lookup against root and the open frames, outermost
// first.
func (l *Lookup) Run(root any, frames []Frame) (any, error) {
	var from any
	switch l.Start {
	case FromRoot:
		from = root
	case FromFrame:
		i := len(frames) - 1 - int(l.Depth)
		if i < 0 {
			return nil, fmt.Errorf("%w: depth %d with %d frames", ErrNoFrame, l.Depth, len(frames))
		}
		from = frames[i].Value
	case FromKeyword:
		v, ok := keywordVar(frames, l.Keyword)
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrUnbound, l.Keyword)
		}
		return v, nil
	}
	res, err := vm.Run(l.program, map[string]any{valueName: from, walkName: l.Walk})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	if debug.Eval() {
		debug.Logf("lookup %v from %s: %s -> %v\n", l.Path, l.Start, l.Src, res)
	}
	return res, nil
}

// keywordVar finds kw in the innermost frame that binds it.
func keywordVar(frames []Frame, kw string) (any, bool) {
	for i := len(frames) - 1; i >= 0; i-- {
		if v, ok := frames[i].Vars[kw]; ok {
			return v, true
		}
	}
	return nil, false
}
