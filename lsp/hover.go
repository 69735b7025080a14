package lsp

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/encode"
	"github.com/signadot/scopepath/eval"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.prog == nil {
		return nil, nil
	}
	off := doc.doc.Offset(int(params.Position.Line), int(params.Position.Character))
	r := refAt(doc.prog, off)
	if r == nil {
		return nil, nil
	}
	rng := spanRange(doc.doc, r.Pos.I, r.Pos.I+len(r.Raw))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(r, doc.lookup(r)),
		},
		Range: &rng,
	}, nil
}

// refAt returns the reference whose text contains off.
func refAt(prog *compile.Program, off int) *compile.Ref {
	if prog == nil {
		return nil
	}
	for _, r := range prog.Refs {
		if r.Pos.I <= off && off <= r.Pos.I+len(r.Raw) {
			return r
		}
	}
	return nil
}

func (d *document) lookup(r *compile.Ref) *eval.Lookup {
	if d.lookups == nil {
		return nil
	}
	return d.lookups.Lookup(r)
}

func buildHoverText(r *compile.Ref, l *eval.Lookup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "`%s` resolves to `%s`\n\n", r.Raw, encode.Path(r.Path, encode.Depths(true)))
	if r.Frames == 0 {
		b.WriteString("top level")
	} else {
		fmt.Fprintf(&b, "in `%s`, %d enclosing block", encode.Path(r.Base), r.Frames)
		if r.Frames > 1 {
			b.WriteString("s")
		}
	}
	if l != nil {
		b.WriteString("\n\n")
		b.WriteString(lookupText(l))
	}
	return b.String()
}

func lookupText(l *eval.Lookup) string {
	var from string
	switch l.Start {
	case eval.FromKeyword:
		return fmt.Sprintf("value of `%s`", l.Keyword)
	case eval.FromFrame:
		from = fmt.Sprintf("block value %d out", l.Depth)
		if l.Depth == 0 {
			from = "innermost block value"
		}
	default:
		from = "data root"
	}
	if len(l.Walk) == 0 {
		return "reads the " + from
	}
	return fmt.Sprintf("reads `%s` from the %s", strings.Join(l.Walk, "."), from)
}
