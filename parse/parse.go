package parse

import (
	"strings"

	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"
)

// Node is an element of a parsed template: *Text, *Ref, *Block or *Comment.
type Node interface {
	isNode()
}

// Text is literal template text.
type Text struct {
	Text string
	Pos  *token.Pos
}

// Ref is a {{ path }} reference. Path is as written, not yet resolved.
type Ref struct {
	Raw    string
	Path   spath.Path
	Tokens []token.Token
	Pos    *token.Pos
}

// Block is a {{#name path}} ... {{/name}} section.
type Block struct {
	Name   string
	Raw    string
	Path   spath.Path
	Tokens []token.Token
	// Pos is the position of the opening "{{", ExprPos that of the path
	// and End that of the "{{" of the closing tag.
	Pos     *token.Pos
	ExprPos *token.Pos
	End     *token.Pos
	Body    []Node
}

// Comment is a {{! ... }} or {{!-- ... --}} comment, kept only with
// ParseComments.
type Comment struct {
	Text string
	Pos  *token.Pos
}

func (*Text) isNode()    {}
func (*Ref) isNode()     {}
func (*Block) isNode()   {}
func (*Comment) isNode() {}

type Template struct {
	Filename string
	Source   string
	Doc      *token.PosDoc
	Nodes    []Node
}

const (
	openDelim      = "{{"
	closeDelim     = "}}"
	openLongCmt    = "{{!--"
	closeLongCmt   = "--}}"
	blockOpenMark  = '#'
	blockCloseMark = '/'
	commentMark    = '!'
)

type parser struct {
	opts  *parseOpts
	doc   *token.PosDoc
	src   string
	nodes []Node
	stack []*Block
}

// Parse parses template source. Every path and text in the result is a
// slice of a single string copy of src.
func Parse(src []byte, opts ...ParseOption) (*Template, error) {
	o := newOpts(opts)
	s := string(src)
	p := &parser{opts: o, doc: token.NewPosDoc(s), src: s}
	if err := p.parse(); err != nil {
		return nil, o.named(err)
	}
	return &Template{
		Filename: o.filename,
		Source:   s,
		Doc:      p.doc,
		Nodes:    p.nodes,
	}, nil
}

func (p *parser) add(n Node) {
	if len(p.stack) == 0 {
		p.nodes = append(p.nodes, n)
		return
	}
	top := p.stack[len(p.stack)-1]
	top.Body = append(top.Body, n)
}

func (p *parser) parse() error {
	s := p.src
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], openDelim)
		if j == -1 {
			p.add(&Text{Text: s[i:], Pos: p.doc.Pos(i)})
			break
		}
		if j > 0 {
			p.add(&Text{Text: s[i : i+j], Pos: p.doc.Pos(i)})
		}
		open := i + j
		if strings.HasPrefix(s[open:], openLongCmt) {
			start := open + len(openLongCmt)
			k := strings.Index(s[start:], closeLongCmt)
			if k == -1 {
				return &ParseErr{Err: ErrUnclosedTag, Pos: *p.doc.Pos(open)}
			}
			if p.opts.comments {
				p.add(&Comment{Text: s[start : start+k], Pos: p.doc.Pos(start)})
			}
			i = start + k + len(closeLongCmt)
			continue
		}
		start := open + len(openDelim)
		k := strings.Index(s[start:], closeDelim)
		if k == -1 {
			return &ParseErr{Err: ErrUnclosedTag, Pos: *p.doc.Pos(open)}
		}
		end := start + k
		i = end + len(closeDelim)
		if err := p.tag(open, start, end); err != nil {
			return err
		}
	}
	if len(p.stack) != 0 {
		b := p.stack[len(p.stack)-1]
		return &UnbalancedErr{Open: &Tag{Name: b.Name, Text: p.tagText(b.Pos.I), Pos: b.Pos}}
	}
	return nil
}

// tag handles the tag whose "{{" is at open and whose inside spans
// [start, end).
func (p *parser) tag(open, start, end int) error {
	a, b := trim(p.src, start, end)
	if a == b {
		return &ParseErr{Err: ErrEmptyTag, Pos: *p.doc.Pos(open)}
	}
	switch p.src[a] {
	case commentMark:
		if p.opts.comments {
			p.add(&Comment{Text: p.src[a+1 : b], Pos: p.doc.Pos(a + 1)})
		}
		return nil
	case blockOpenMark:
		nameEnd := a + 1
		for nameEnd < b && !isSpace(p.src[nameEnd]) {
			nameEnd++
		}
		ea, eb := trim(p.src, nameEnd, b)
		if nameEnd == a+1 || ea == eb {
			return &ParseErr{Err: ErrEmptyTag, Pos: *p.doc.Pos(open)}
		}
		path, toks, err := pathAt(p.doc, ea, eb)
		if err != nil {
			return err
		}
		blk := &Block{
			Name:    p.src[a+1 : nameEnd],
			Raw:     p.src[ea:eb],
			Path:    path,
			Tokens:  toks,
			Pos:     p.doc.Pos(open),
			ExprPos: p.doc.Pos(ea),
		}
		p.add(blk)
		p.stack = append(p.stack, blk)
		return nil
	case blockCloseMark:
		na, nb := trim(p.src, a+1, b)
		if na == nb {
			return &ParseErr{Err: ErrEmptyTag, Pos: *p.doc.Pos(open)}
		}
		closeTag := &Tag{Name: p.src[na:nb], Text: p.tagText(open), Pos: p.doc.Pos(open)}
		if len(p.stack) == 0 {
			return &UnbalancedErr{Close: closeTag}
		}
		top := p.stack[len(p.stack)-1]
		if top.Name != closeTag.Name {
			return &UnbalancedErr{
				Open:  &Tag{Name: top.Name, Text: p.tagText(top.Pos.I), Pos: top.Pos},
				Close: closeTag,
			}
		}
		top.End = p.doc.Pos(open)
		p.stack = p.stack[:len(p.stack)-1]
		return nil
	default:
		path, toks, err := pathAt(p.doc, a, b)
		if err != nil {
			return err
		}
		p.add(&Ref{Raw: p.src[a:b], Path: path, Tokens: toks, Pos: p.doc.Pos(a)})
		return nil
	}
}

// tagText returns the source of the tag starting at open.
func (p *parser) tagText(open int) string {
	k := strings.Index(p.src[open:], closeDelim)
	if k == -1 {
		return p.src[open:]
	}
	return p.src[open : open+k+len(closeDelim)]
}

func trim(s string, a, b int) (int, int) {
	for a < b && isSpace(s[a]) {
		a++
	}
	for b > a && isSpace(s[b-1]) {
		b--
	}
	return a, b
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
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
