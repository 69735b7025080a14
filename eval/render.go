package eval

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/debug"

	"github.com/goccy/go-yaml"
)

// Template is a compiled program with a Lookup for each of its references.
type Template struct {
	Program *compile.Program
	lookups map[*compile.Ref]*Lookup
}

// Prepare compiles the lookups of every reference in prog.
func Prepare(prog *compile.Program) (*Template, error) {
	t := &Template{Program: prog, lookups: make(map[*compile.Ref]*Lookup, len(prog.Refs))}
	for _, r := range prog.Refs {
		l, err := CompileLookup(r.Path)
		if err != nil {
			return nil, &RenderErr{Err: err, Raw: r.Raw, Pos: r.Pos, Filename: prog.Filename}
		}
		t.lookups[r] = l
	}
	return t, nil
}

// Lookup returns the compiled lookup of r.
func (t *Template) Lookup(r *compile.Ref) *Lookup {
	return t.lookups[r]
}

// Render renders prog against data.
func Render(w io.Writer, prog *compile.Program, data any) error {
	t, err := Prepare(prog)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

type renderer struct {
	t      *Template
	w      *bufio.Writer
	root   any
	frames []Frame
}

// Execute renders t against data. Templates are safe for concurrent use.
func (t *Template) Execute(w io.Writer, data any) error {
	r := &renderer{t: t, w: bufio.NewWriter(w), root: data}
	if err := r.nodes(t.Program.Nodes); err != nil {
		return err
	}
	return r.w.Flush()
}

func (r *renderer) value(ref *compile.Ref) (any, error) {
	v, err := r.t.lookups[ref].Run(r.root, r.frames)
	if err != nil {
		return nil, &RenderErr{Err: err, Raw: ref.Raw, Pos: ref.Pos, Filename: r.t.Program.Filename}
	}
	return v, nil
}

func (r *renderer) nodes(nodes []compile.Node) error {
	for _, n := range nodes {
		var err error
		switch x := n.(type) {
		case *compile.Text:
			_, err = r.w.WriteString(x.Text)
		case *compile.Ref:
			err = r.ref(x)
		case *compile.Block:
			err = r.block(x)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) ref(ref *compile.Ref) error {
	v, err := r.value(ref)
	if err != nil {
		return err
	}
	s, err := Stringify(v)
	if err != nil {
		return &RenderErr{Err: err, Raw: ref.Raw, Pos: ref.Pos, Filename: r.t.Program.Filename}
	}
	_, err = r.w.WriteString(s)
	return err
}

// body renders nodes inside a new frame.
func (r *renderer) body(f Frame, nodes []compile.Node) error {
	r.frames = append(r.frames, f)
	err := r.nodes(nodes)
	r.frames = r.frames[:len(r.frames)-1]
	return err
}

func (r *renderer) block(b *compile.Block) error {
	v, err := r.value(b.Expr)
	if err != nil {
		return err
	}
	if debug.Eval() {
		debug.Logf("block %s %q frames=%d value=%v\n", b.Kind, b.Expr.Raw, len(r.frames), v)
	}
	switch b.Kind {
	case compile.With:
		if v == nil {
			return nil
		}
		return r.body(Frame{Value: v}, b.Body)
	case compile.If:
		if !Truth(v) {
			return nil
		}
		return r.body(Frame{Value: v}, b.Body)
	case compile.Unless:
		if Truth(v) {
			return nil
		}
		return r.body(Frame{Value: v}, b.Body)
	case compile.Each:
		return r.each(b, v)
	}
	return fmt.Errorf("%w %q", compile.ErrUnknownBlock, b.Name)
}

func (r *renderer) each(b *compile.Block, v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		for i, item := range x {
			f := Frame{Value: item, Vars: map[string]any{
				"@index": i,
				"@first": i == 0,
				"@last":  i == len(x)-1,
			}}
			if err := r.body(f, b.Body); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		for i, k := range keys {
			f := Frame{Value: x[k], Vars: map[string]any{
				"@key":   k,
				"@index": i,
				"@first": i == 0,
				"@last":  i == len(keys)-1,
			}}
			if err := r.body(f, b.Body); err != nil {
				return err
			}
		}
		return nil
	}
	return &RenderErr{
		Err:      fmt.Errorf("%w: %T", ErrNotIterable, v),
		Raw:      b.Expr.Raw,
		Pos:      b.Expr.Pos,
		Filename: r.t.Program.Filename,
	}
}

// Stringify renders v for output: nil is empty, scalars print as is and
// collections are written as flow YAML.
func Stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case map[string]any, map[any]any, []any:
		d, err := yaml.MarshalWithOptions(x, yaml.Flow(true))
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(d), "\n"), nil
	default:
		return fmt.Sprint(x), nil
	}
}
