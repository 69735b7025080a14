package spath

import "strings"

const (
	// Stay keeps the current scope in an explicitly relative path.
	Stay = "./"
	// Up leaves one scope in an explicitly relative path.
	Up = "../"
	// KeywordPrefix starts reserved keyword segments such as @root.
	KeywordPrefix = '@'
)

// Resolve returns the absolute path that rel names when read inside the
// scope whose path is base. Neither argument is modified and the result
// never shares its segment list with them.
//
// Resolution picks the first applicable rule:
//
//  1. A single keyword segment (@root, @index, ...) resolves to itself.
//  2. If the first segment of rel ends in "./", it is a lead-in and rel is
//     explicitly relative. The lead-in is dropped, then each following "../"
//     removes one trailing segment of base (never going below empty) and
//     each "./" is skipped. The remaining segments of rel are appended to
//     what is left of base.
//  3. Otherwise the longest prefix of rel that occurs in base is located,
//     preferring the occurrence closest to the end of base when there are
//     several of the same length. base up to the end of that occurrence is
//     kept and the rest of rel is appended. If no segment of rel occurs in
//     base at all, rel is taken to be absolute.
//
// Segment texts are compared; depths are ignored. rel must not be empty.
func Resolve(base, rel Path) Path {
	if len(rel) == 0 {
		panic("spath: Resolve with empty relative path")
	}
	if len(rel) == 1 && IsKeyword(rel[0]) {
		return rel.Clone()
	}
	if strings.HasSuffix(Text(rel[0]), Stay) {
		return resolveExplicit(base, rel)
	}
	return resolveImplicit(base, rel)
}

func resolveExplicit(base, rel Path) Path {
	baseEnd, relStart := len(base), 1
loop:
	for relStart < len(rel) {
		switch Text(rel[relStart]) {
		case Up:
			if baseEnd > 0 {
				baseEnd--
			}
			relStart++
		case Stay:
			relStart++
		default:
			break loop
		}
	}
	return join(base[:baseEnd], rel[relStart:])
}

func resolveImplicit(base, rel Path) Path {
	found := false
	baseEnd, relStart := 0, 0
	for l := len(rel); l > 0 && !found; l-- {
		if len(base) < l {
			continue
		}
		// rightmost window first
		for j := len(base) - l; j >= 0; j-- {
			if textsMatch(base[j:j+l], rel[:l]) {
				found = true
				baseEnd, relStart = j+l, l
				break
			}
		}
	}
	if !found {
		return rel.Clone()
	}
	return join(base[:baseEnd], rel[relStart:])
}

func join(a, b Path) Path {
	res := make(Path, 0, len(a)+len(b))
	res = append(res, a...)
	return append(res, b...)
}
