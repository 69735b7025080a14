package lsp

import (
	"errors"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/eval"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/token"

	"go.lsp.dev/protocol"
)

const diagnosticSource = "scopepath"

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	if doc.tmpl == nil {
		d := protocol.Diagnostic{
			Range:    pointRange(doc.doc, 0),
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   diagnosticSource,
		}
		if pos, ok := parse.ErrPos(doc.err); ok {
			d.Range = pointRange(doc.doc, pos.I)
		}
		var uErr *parse.UnbalancedErr
		if errors.As(doc.err, &uErr) {
			t := uErr.Close
			if t == nil {
				t = uErr.Open
			}
			d.Range = spanRange(doc.doc, t.Pos.I, t.Pos.I+len(t.Text))
		}
		return append(diagnostics, d)
	}
	for _, cErr := range compile.Errors(doc.err) {
		end := cErr.Pos.I + 1
		if r := refAt(doc.prog, cErr.Pos.I); r != nil {
			end = r.Pos.I + len(r.Raw)
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(doc.doc, cErr.Pos.I, end),
			Severity: protocol.DiagnosticSeverityError,
			Message:  cErr.Err.Error(),
			Source:   diagnosticSource,
		})
	}
	var rErr *eval.RenderErr
	if errors.As(doc.err, &rErr) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(doc.doc, rErr.Pos.I, rErr.Pos.I+len(rErr.Raw)),
			Severity: protocol.DiagnosticSeverityError,
			Message:  rErr.Err.Error(),
			Source:   diagnosticSource,
		})
	}
	return diagnostics
}

func position(pd *token.PosDoc, off int) protocol.Position {
	line, col := pd.LineCol(off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func spanRange(pd *token.PosDoc, start, end int) protocol.Range {
	return protocol.Range{Start: position(pd, start), End: position(pd, end)}
}

// pointRange is the one character range at off, or an empty range at the
// end of the document.
func pointRange(pd *token.PosDoc, off int) protocol.Range {
	end := min(off+1, len(pd.Source()))
	return spanRange(pd, off, max(off, end))
}
