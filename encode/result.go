package encode

import (
	"fmt"
	"io"

	"github.com/signadot/scopepath/format"
	"github.com/signadot/scopepath/spath"

	"github.com/goccy/go-yaml"
)

// Segment is the structured form of one path segment.
type Segment struct {
	Text  string  `yaml:"text"`
	Depth *uint32 `yaml:"depth,omitempty"`
}

// Result describes one resolution: rel read in base gives path. Pos, when
// set, locates rel in a template.
type Result struct {
	Pos      string    `yaml:"pos,omitempty"`
	Base     string    `yaml:"base"`
	Rel      string    `yaml:"rel"`
	Path     string    `yaml:"path"`
	Segments []Segment `yaml:"segments"`

	base, rel, path spath.Path
}

func NewResult(base, rel, path spath.Path) *Result {
	r := &Result{
		Base:     Path(base),
		Rel:      Path(rel),
		Path:     Path(path),
		Segments: make([]Segment, len(path)),
		base:     base,
		rel:      rel,
		path:     path,
	}
	for i, s := range path {
		r.Segments[i].Text = spath.Text(s)
		if d, ok := spath.Depth(s); ok {
			r.Segments[i].Depth = &d
		}
	}
	return r
}

// Results writes rs in the format given by opts. The text format writes
// one line per result and honors colors and depths; the others are
// structured lists.
func Results(w io.Writer, rs []*Result, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(rs)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		d, err := yaml.MarshalWithOptions(rs, yaml.JSON())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	for _, r := range rs {
		if err := r.text(w, opts); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) text(w io.Writer, opts []EncodeOption) error {
	path := r.Path
	if r.path != nil {
		path = Path(r.path, opts...)
	}
	prefix := ""
	if r.Pos != "" {
		prefix = r.Pos + ": "
	}
	var err error
	if r.Base == "" {
		_, err = fmt.Fprintf(w, "%s%s -> %s\n", prefix, r.Rel, path)
	} else {
		_, err = fmt.Fprintf(w, "%s%s in %s -> %s\n", prefix, r.Rel, r.Base, path)
	}
	return err
}
