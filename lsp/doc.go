// Package lsp is a language server for scopepath templates.
//
// It reports parse and compile errors as diagnostics, shows the resolved
// path of a reference on hover, completes block kinds, keywords and the
// names of enclosing blocks, and provides semantic tokens for paths.
package lsp
