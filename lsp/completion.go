package lsp

import (
	"context"
	"slices"
	"strings"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := doc.doc.Offset(int(params.Position.Line), int(params.Position.Character))
	items := completions(doc, off, s.cfg)
	if items == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: items}, nil
}

// tagPrefix returns the text between the "{{" open at off and off.
func tagPrefix(content string, off int) (string, bool) {
	before := content[:off]
	open := strings.LastIndex(before, "{{")
	if open == -1 || strings.Contains(before[open:], "}}") {
		return "", false
	}
	return before[open+2:], true
}

// currentWord returns the segment being typed at the end of prefix.
func currentWord(prefix string) string {
	i := strings.LastIndexAny(prefix, " \t\n./#")
	return prefix[i+1:]
}

func completions(doc *document, off int, cfg *Config) []protocol.CompletionItem {
	prefix, ok := tagPrefix(doc.content, off)
	if !ok || strings.HasPrefix(prefix, "!") {
		return nil
	}
	word := currentWord(prefix)
	var items []protocol.CompletionItem
	switch {
	case strings.HasPrefix(prefix, "#") && !strings.ContainsAny(prefix, " \t\n"):
		for _, kind := range []string{"each", "if", "unless", "with"} {
			if strings.HasPrefix(kind, word) {
				items = append(items, protocol.CompletionItem{
					Label:      kind,
					Kind:       protocol.CompletionItemKindKeyword,
					InsertText: kind + " ",
				})
			}
		}
	case strings.HasPrefix(word, "@"):
		for _, kw := range cfg.Keywords {
			if strings.HasPrefix(kw, word) {
				items = append(items, protocol.CompletionItem{
					Label:      kw,
					Kind:       protocol.CompletionItemKindKeyword,
					InsertText: kw[1:],
				})
			}
		}
	default:
		for _, name := range scopeNames(doc.last, off, cfg.Completion != nil && cfg.Completion.Names) {
			if strings.HasPrefix(name, word) && name != word {
				items = append(items, protocol.CompletionItem{
					Label:      name,
					Kind:       protocol.CompletionItemKindField,
					InsertText: name,
				})
			}
		}
	}
	if cfg.Completion != nil && cfg.Completion.Max > 0 && len(items) > cfg.Completion.Max {
		items = items[:cfg.Completion.Max]
	}
	return items
}

// scopeNames returns the names on the paths of the blocks enclosing off,
// innermost first, followed when all is set by every other name the
// program uses, sorted.
func scopeNames(prog *compile.Program, off int, all bool) []string {
	if prog == nil {
		return nil
	}
	seen := map[string]bool{}
	var res []string
	add := func(p spath.Path) []string {
		var names []string
		for _, s := range p {
			t := spath.Text(s)
			if seen[t] || spath.IsKeyword(s) || strings.HasSuffix(t, "/") || !token.IsName(t) {
				continue
			}
			seen[t] = true
			names = append(names, t)
		}
		return names
	}
	var frames []spath.Path
	compile.Walk(prog.Nodes, func(n compile.Node) bool {
		b, ok := n.(*compile.Block)
		if !ok {
			return false
		}
		if b.Pos.I < off && (b.End == nil || off <= b.End.I) {
			frames = append(frames, b.Expr.Path)
			return true
		}
		return false
	})
	for i := len(frames) - 1; i >= 0; i-- {
		res = append(res, add(frames[i])...)
	}
	if !all {
		return res
	}
	var rest []string
	for _, r := range prog.Refs {
		rest = append(rest, add(r.Path)...)
	}
	slices.Sort(rest)
	return append(res, rest...)
}
