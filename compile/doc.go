// Package compile resolves the references of a parsed template against the
// blocks that enclose them.
//
// Each block opens a scope whose path is the resolved path of the block's
// expression. References inside the block are resolved with [spath.Resolve]
// against the innermost scope, and the segments of the result that end an
// enclosing scope's path are tagged with that scope's depth, 0 being the
// innermost. A renderer uses the tags to start its walk from the value of
// the right scope rather than from the root.
package compile
