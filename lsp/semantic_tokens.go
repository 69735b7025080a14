package lsp

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/token"

	"go.lsp.dev/protocol"
)

// tokenTypes is the semantic token legend sent in Initialize.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

type tokenInfo struct {
	off       int
	length    int
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

func pathTokenType(t token.TokenType) (protocol.SemanticTokenTypes, bool) {
	switch t {
	case token.TName:
		return protocol.SemanticTokenProperty, true
	case token.TLiteral:
		return protocol.SemanticTokenString, true
	case token.TKeyword:
		return protocol.SemanticTokenKeyword, true
	case token.TUp, token.TStay, token.TDot:
		return protocol.SemanticTokenOperator, true
	}
	// lead-ins cover the same text as the markers after them
	return "", false
}

func collectTokenInfos(tmpl *parse.Template) []tokenInfo {
	var res []tokenInfo
	addPath := func(toks []token.Token) {
		for i := range toks {
			tt, ok := pathTokenType(toks[i].Type)
			if !ok {
				continue
			}
			res = append(res, tokenInfo{off: toks[i].Pos.I, length: len(toks[i].Text), tokenType: tt})
		}
	}
	parse.Walk(tmpl.Nodes, func(n parse.Node) bool {
		switch x := n.(type) {
		case *parse.Ref:
			addPath(x.Tokens)
		case *parse.Block:
			res = append(res, tokenInfo{
				off:       x.Pos.I + strings.IndexByte(tmpl.Source[x.Pos.I:], '#') + 1,
				length:    len(x.Name),
				tokenType: protocol.SemanticTokenKeyword,
				modifiers: []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition},
			})
			addPath(x.Tokens)
		case *parse.Comment:
			// tokens may not span lines
			text := x.Text
			if i := strings.IndexByte(text, '\n'); i != -1 {
				text = text[:i]
			}
			if text != "" {
				res = append(res, tokenInfo{off: x.Pos.I, length: len(text), tokenType: protocol.SemanticTokenComment})
			}
		}
		return true
	})
	sort.Slice(res, func(i, j int) bool {
		return res[i].off < res[j].off
	})
	return res
}

// encodeTokens encodes the infos within [start, end) in the relative form
// of the protocol.
func encodeTokens(pd *token.PosDoc, infos []tokenInfo, start, end int) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range infos {
		if ti.off < start || ti.off >= end {
			continue
		}
		l, c := pd.LineCol(ti.off)
		line, char := uint32(l), uint32(c)
		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		bits := uint32(0)
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, uint32(ti.length), typeMap[ti.tokenType], bits)
		prevLine, prevChar = line, char
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tmpl == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	infos := collectTokenInfos(doc.tmpl)
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.doc, infos, 0, len(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tmpl == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	start := doc.doc.Offset(int(r.Start.Line), int(r.Start.Character))
	end := doc.doc.Offset(int(r.End.Line), int(r.End.Character))
	infos := collectTokenInfos(doc.tmpl)
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.doc, infos, start, end),
	}, nil
}
