package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/scopepath/encode"
	"github.com/signadot/scopepath/spath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Edit is one step turning the wanted value into the one we got.
type Edit struct {
	Op   Op
	Text string
}

// Paths diffs want and got segment by segment. Segments compare by text
// and each edit carries one segment in encoded form.
func Paths(want, got spath.Path) []Edit {
	segMap := map[string]rune{}
	runeMap := map[rune]string{}
	wantRunes := mapSegmentsTo(segMap, runeMap, want)
	gotRunes := mapSegmentsTo(segMap, runeMap, got)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(wantRunes, gotRunes, false)
	var res []Edit
	for i := range diffs {
		diff := &diffs[i]
		op := opOf(diff.Type)
		for _, r := range diff.Text {
			res = append(res, Edit{Op: op, Text: runeMap[r]})
		}
	}
	return res
}

func mapSegmentsTo(m map[string]rune, im map[rune]string, p spath.Path) []rune {
	rs := make([]rune, len(p))
	for i := range p {
		s := encode.Path(p[i : i+1])
		r, ok := m[s]
		if !ok {
			r = rune(len(m))
			m[s] = r
			im[r] = s
		}
		rs[i] = r
	}
	return rs
}

// Strings diffs want and got as text, by line when both span several
// lines.
func Strings(want, got string) []Edit {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(want, "\n") && strings.Contains(got, "\n")
	diffs := diffCfg.DiffMain(want, got, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Edit, len(diffs))
	for i := range diffs {
		res[i] = Edit{Op: opOf(diffs[i].Type), Text: diffs[i].Text}
	}
	return res
}

func opOf(t diffpatch.Operation) Op {
	switch t {
	case diffpatch.DiffDelete:
		return Delete
	case diffpatch.DiffInsert:
		return Insert
	default:
		return Equal
	}
}

// Changed reports whether any edit is not Equal.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Format writes edits separated by sep, marking deletions with '-' and
// insertions with '+'. c may be nil.
func Format(edits []Edit, sep string, c *encode.Colors) string {
	if c == nil {
		c = &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	}
	parts := make([]string, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Delete:
			parts[i] = c.Color(encode.DiffDeleteColor, "-"+e.Text)
		case Insert:
			parts[i] = c.Color(encode.DiffInsertColor, "+"+e.Text)
		default:
			parts[i] = e.Text
		}
	}
	return strings.Join(parts, sep)
}
