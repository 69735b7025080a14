// Package libdiff computes differences between paths and between rendered
// texts.
//
// # Usage
//
//	edits := libdiff.Paths(want, got)
//	if libdiff.Changed(edits) {
//		fmt.Println(libdiff.Format(edits, " ", nil))
//	}
//
// Path diffs work on whole segments: each distinct segment is mapped to a
// rune and the rune strings are diffed.
package libdiff
