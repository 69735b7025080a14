package compile

import (
	"errors"
	"fmt"

	"github.com/signadot/scopepath/debug"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"
)

type BlockKind int

const (
	Each BlockKind = iota
	With
	If
	Unless
)

var blockKinds = map[string]BlockKind{
	"each":   Each,
	"with":   With,
	"if":     If,
	"unless": Unless,
}

func (k BlockKind) String() string {
	for name, kind := range blockKinds {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

func ParseBlockKind(name string) (BlockKind, error) {
	k, ok := blockKinds[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownBlock, name)
	}
	return k, nil
}

// Node is an element of a compiled template: *Text, *Ref or *Block.
type Node interface {
	isNode()
}

type Text struct {
	Text string
	Pos  *token.Pos
}

// Ref is a reference with its path resolved against the enclosing blocks.
type Ref struct {
	Raw    string
	Rel    spath.Path
	Tokens []token.Token
	// Base is the path of the innermost enclosing block and Frames the
	// number of enclosing blocks.
	Base   spath.Path
	Frames int
	// Path is the resolved, depth tagged path.
	Path spath.Path
	Pos  *token.Pos
}

type Block struct {
	Kind BlockKind
	Name string
	Expr *Ref
	Pos  *token.Pos
	End  *token.Pos
	Body []Node
}

func (*Text) isNode()  {}
func (*Ref) isNode()   {}
func (*Block) isNode() {}

// Program is a compiled template.
type Program struct {
	Filename string
	Source   string
	Doc      *token.PosDoc
	Nodes    []Node
	// Refs lists every reference, block expressions included, in source
	// order.
	Refs []*Ref
}

type compiler struct {
	opts     *compileOpts
	filename string
	scope    Scope
	refs     []*Ref
	errs     []error
}

// Compile resolves every reference of t. When some references are in
// error, the returned Program is still complete and err joins one *Error
// per problem.
func Compile(t *parse.Template, opts ...CompileOption) (*Program, error) {
	c := &compiler{opts: newOpts(opts), filename: t.Filename}
	nodes := c.nodes(t.Nodes)
	prog := &Program{
		Filename: t.Filename,
		Source:   t.Source,
		Doc:      t.Doc,
		Nodes:    nodes,
		Refs:     c.refs,
	}
	return prog, errors.Join(c.errs...)
}

func (c *compiler) errorf(pos *token.Pos, err error) {
	c.errs = append(c.errs, &Error{Pos: pos, Filename: c.filename, Err: err})
}

func (c *compiler) nodes(in []parse.Node) []Node {
	res := make([]Node, 0, len(in))
	for _, n := range in {
		switch x := n.(type) {
		case *parse.Text:
			res = append(res, &Text{Text: x.Text, Pos: x.Pos})
		case *parse.Comment:
		case *parse.Ref:
			res = append(res, c.ref(x.Raw, x.Path, x.Tokens, x.Pos))
		case *parse.Block:
			res = append(res, c.block(x))
		default:
			panic(fmt.Sprintf("compile: unexpected node %T", n))
		}
	}
	return res
}

func (c *compiler) ref(raw string, rel spath.Path, toks []token.Token, pos *token.Pos) *Ref {
	r := &Ref{
		Raw:    raw,
		Rel:    rel,
		Tokens: toks,
		Base:   c.scope.Base(),
		Frames: c.scope.Len(),
		Path:   c.scope.Resolve(rel),
		Pos:    pos,
	}
	if debug.Compile() {
		debug.Logf("ref %q at %d frames=%d -> %v\n", raw, pos.I, r.Frames, r.Path)
	}
	if err := c.checkKeyword(r.Path); err != nil {
		c.errorf(pos, err)
	}
	c.refs = append(c.refs, r)
	return r
}

func (c *compiler) checkKeyword(p spath.Path) error {
	if len(p) == 0 || !spath.IsKeyword(p[0]) {
		return nil
	}
	kw := spath.Text(p[0])
	if !c.opts.keywords[kw] {
		return fmt.Errorf("%w %s", ErrUnknownKeyword, kw)
	}
	if kw != "@root" && len(p) > 1 {
		return fmt.Errorf("%w: %s", ErrKeywordPath, p.String())
	}
	return nil
}

func (c *compiler) block(b *parse.Block) *Block {
	kind, err := ParseBlockKind(b.Name)
	if err != nil {
		c.errorf(b.Pos, err)
	}
	res := &Block{
		Kind: kind,
		Name: b.Name,
		Expr: c.ref(b.Raw, b.Path, b.Tokens, b.ExprPos),
		Pos:  b.Pos,
		End:  b.End,
	}
	c.scope.Push(res.Expr.Path)
	res.Body = c.nodes(b.Body)
	c.scope.Pop()
	return res
}

// Walk calls f on each node in depth first order, descending into blocks
// when f returns true.
func Walk(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		if !f(n) {
			continue
		}
		if b, ok := n.(*Block); ok {
			Walk(b.Body, f)
		}
	}
}
