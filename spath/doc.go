// Package spath models scope paths and resolves relative references against
// the path of the currently open scope.
//
// A [Path] is a sequence of [Segment] values, outermost first. Segment text
// is borrowed from the source the path was parsed from (see
// [github.com/signadot/scopepath/token.Span]); paths own their segment list
// but never the text.
//
// # Resolution
//
// [Resolve] turns a relative path into an absolute one given a base path:
//
//	Resolve(Plains("x", "y", "z"), Plains("./", "../", "a"))  // x.y.a
//	Resolve(Plains("root", "a", "b", "c"), Plains("b", "c", "d"))  // root.a.b.c.d
//	Resolve(Plains("root"), Plains("@index"))  // @index
//
// See [Resolve] for the exact rules.
//
// # Related Packages
//
//   - github.com/signadot/scopepath/parse - parse path expressions into Paths
//   - github.com/signadot/scopepath/compile - resolve references in templates
package spath
