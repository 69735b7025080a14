package lsp

import (
	"context"
	"io"

	"github.com/signadot/scopepath/compile"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "sp-lsp"

var (
	version = "0.0.1"
)

type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
	cfg  *Config
}

// New returns a server using cfg, or the defaults when cfg is nil.
func New(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Server{
		cfg: cfg,
		docs: &documentStore{
			docs: make(map[string]*document),
			opts: []compile.CompileOption{compile.Keywords(cfg.Keywords...)},
		},
	}
}

// Serve answers requests read from rwc until the connection closes or ctx
// is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	handler := protocol.ServerHandler(s, nil)
	conn.Go(ctx, handler)
	select {
	case <-conn.Done():
		return conn.Err()
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindIncremental,
			OpenClose: true,
			Save:      &protocol.SaveOptions{IncludeText: false},
		},
		HoverProvider:      true,
		DefinitionProvider: true,
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"{", "#", "@", ".", "/"},
		},
		SemanticTokensProvider: map[string]interface{}{
			"full":  true,
			"range": true,
			"legend": protocol.SemanticTokensLegend{
				TokenTypes:     tokenTypes,
				TokenModifiers: tokenModifiers,
			},
		},
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}

// Formatting leaves templates as written.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return nil, nil
}
