package lsp

import (
	"context"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/spath"

	"go.lsp.dev/protocol"
)

// Definition takes a reference to the block whose value it starts from.
// References that start from the root or a keyword have no definition.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.prog == nil {
		return nil, nil
	}
	off := doc.doc.Offset(int(params.Position.Line), int(params.Position.Character))
	r := refAt(doc.prog, off)
	if r == nil {
		return nil, nil
	}
	b := frameBlock(doc.prog, r)
	if b == nil {
		return nil, nil
	}
	return []protocol.Location{{
		URI:   params.TextDocument.URI,
		Range: spanRange(doc.doc, b.Expr.Pos.I, b.Expr.Pos.I+len(b.Expr.Raw)),
	}}, nil
}

// frameBlock returns the enclosing block named by the last depth tagged
// segment of r, or nil.
func frameBlock(prog *compile.Program, r *compile.Ref) *compile.Block {
	depth, ok := uint32(0), false
	for i := len(r.Path) - 1; i >= 0 && !ok; i-- {
		depth, ok = spath.Depth(r.Path[i])
	}
	if !ok {
		return nil
	}
	blocks := enclosing(prog.Nodes, r, nil)
	i := len(blocks) - 1 - int(depth)
	if i < 0 {
		return nil
	}
	return blocks[i]
}

// enclosing returns the blocks around r, outermost first, or nil when r is
// not in nodes.
func enclosing(nodes []compile.Node, r *compile.Ref, stack []*compile.Block) []*compile.Block {
	for _, n := range nodes {
		switch x := n.(type) {
		case *compile.Ref:
			if x == r {
				return stack
			}
		case *compile.Block:
			if x.Expr == r {
				return stack
			}
			if res := enclosing(x.Body, r, append(stack, x)); res != nil {
				return res
			}
		}
	}
	return nil
}
