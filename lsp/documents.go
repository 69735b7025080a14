package lsp

import (
	"context"
	"sync"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/debug"
	"github.com/signadot/scopepath/eval"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	opts []compile.CompileOption
}

type document struct {
	uri     string
	content string
	version int32
	doc     *token.PosDoc
	// tmpl and prog are nil when the content does not parse.
	tmpl *parse.Template
	prog *compile.Program
	err  error
	// lookups is set when prog compiled without errors.
	lookups *eval.Template
	// last is the most recent program of this uri that parsed, for
	// completion while the content is being edited.
	last *compile.Program
}

func newDocument(uri, content string, version int32, opts []compile.CompileOption) *document {
	d := &document{
		uri:     uri,
		content: content,
		version: version,
		doc:     token.NewPosDoc(content),
	}
	tmpl, err := parse.Parse([]byte(content), parse.ParseComments(true))
	if err != nil {
		d.err = err
		return d
	}
	d.tmpl = tmpl
	d.doc = tmpl.Doc
	d.prog, d.err = compile.Compile(tmpl, opts...)
	d.last = d.prog
	if d.err == nil {
		d.lookups, d.err = eval.Prepare(d.prog)
	}
	return d
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	d := newDocument(uri, content, version, ds.opts)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old := ds.docs[uri]; old != nil && d.last == nil {
		d.last = old.last
	}
	ds.docs[uri] = d
	return d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp: %s v%d: %d diagnostics\n", doc.uri, doc.version, len(diagnostics))
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Version:     uint32(doc.version),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

// applyChanges applies content changes in order. A change with a zero
// range replaces the whole document. Characters are byte offsets within a
// line.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) {
			content = change.Text
			continue
		}
		pd := token.NewPosDoc(content)
		start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
		end := pd.Offset(int(r.End.Line), int(r.End.Character))
		if start > end {
			start, end = end, start
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
