package encode

import (
	"strconv"
	"strings"

	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"
)

// Path writes p in the dotted form Tokenize reads back. Segments that are
// not names are bracketed, and a lead-in that repeats the markers after it
// is written once. Brackets have no escape: a segment whose text contains
// "]" is written bracketed all the same and does not tokenize back.
func Path(p spath.Path, opts ...EncodeOption) string {
	es := newState(opts)
	var b strings.Builder
	for i, s := range p {
		if i == 0 && isLeadIn(p) {
			continue
		}
		t := spath.Text(s)
		if b.Len() > 0 && !strings.HasSuffix(spath.Text(p[i-1]), "/") {
			b.WriteString(es.Color(SepColor, "."))
		}
		b.WriteString(segment(es, s, t))
		if es.depths {
			if d, ok := spath.Depth(s); ok {
				b.WriteString(es.Color(DepthColor, "^"+strconv.FormatUint(uint64(d), 10)))
			}
		}
	}
	return b.String()
}

func segment(es *EncState, s spath.Segment, t string) string {
	switch {
	case isMarkers(t):
		return es.Color(MarkerColor, t)
	case spath.IsKeyword(s) && token.IsName(t[1:]):
		return es.Color(KeywordColor, t)
	case token.IsName(t):
		return es.Color(NameColor, t)
	default:
		return es.Color(LiteralColor, "["+t+"]")
	}
}

// isLeadIn reports whether p[0] is a lead-in followed by the markers it
// stands for.
func isLeadIn(p spath.Path) bool {
	lead := spath.Text(p[0])
	if !isMarkers(lead) {
		return false
	}
	var b strings.Builder
	for _, s := range p[1:] {
		if !spath.IsMarker(s) {
			break
		}
		b.WriteString(spath.Text(s))
	}
	return b.String() == lead
}

// isMarkers reports whether t is a non-empty run of "./" and "../".
func isMarkers(t string) bool {
	if t == "" {
		return false
	}
	for t != "" {
		switch {
		case strings.HasPrefix(t, spath.Up):
			t = t[len(spath.Up):]
		case strings.HasPrefix(t, spath.Stay):
			t = t[len(spath.Stay):]
		default:
			return false
		}
	}
	return true
}
