package encode

import "github.com/signadot/scopepath/format"

type EncState struct {
	format format.Format
	depths bool
	Color  func(ColorAttr, string) string
}

type EncodeOption func(*EncState)

func newState(opts []EncodeOption) *EncState {
	es := &EncState{Color: func(_ ColorAttr, s string) string { return s }}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Depths writes the depth of scoped segments as a ^N suffix.
func Depths(v bool) EncodeOption {
	return func(es *EncState) { es.depths = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
