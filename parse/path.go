package parse

import (
	"errors"

	"github.com/signadot/scopepath/debug"
	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"
)

// Path parses a single path expression such as `a.b`, `../x` or
// `@root.items`. Segments of the result are Plain and share memory with src.
func Path(src string, opts ...ParseOption) (spath.Path, error) {
	o := newOpts(opts)
	p, _, err := pathAt(token.NewPosDoc(src), 0, len(src))
	if err != nil {
		return nil, o.named(err)
	}
	return p, nil
}

func pathAt(doc *token.PosDoc, start, end int) (spath.Path, []token.Token, error) {
	toks, err := token.Tokenize(nil, doc.Source()[start:end], token.TokenDoc(doc, start))
	if err != nil {
		var tkErr *token.TokenizeErr
		if errors.As(err, &tkErr) {
			return nil, nil, &ParseErr{Err: tkErr.Err, Pos: tkErr.Pos}
		}
		return nil, nil, err
	}
	if debug.Resolve() {
		token.PrintTokens(toks, doc.Source()[start:end])
	}
	res := make(spath.Path, 0, len(toks))
	for i := range toks {
		if toks[i].Type == token.TDot {
			continue
		}
		res = append(res, spath.Plain{Span: toks[i].Span()})
	}
	return res, toks, nil
}

// named attaches the configured filename to positioned errors.
func (o *parseOpts) named(err error) error {
	if o.filename == "" {
		return err
	}
	var pErr *ParseErr
	if errors.As(err, &pErr) {
		pErr.Filename = o.filename
		return err
	}
	var uErr *UnbalancedErr
	if errors.As(err, &uErr) {
		uErr.Filename = o.filename
	}
	return err
}
