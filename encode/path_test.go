package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/scopepath/format"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/spath"
	"github.com/signadot/scopepath/token"
)

func scoped(text string, d uint32) spath.Segment {
	return spath.Scoped{Span: token.Span{Text: text}, Depth: d}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		in   spath.Path
		opts []EncodeOption
		want string
	}{
		{name: "names", in: spath.Plains("a", "b"), want: "a.b"},
		{name: "literal", in: spath.Plains("a b", "c"), want: "[a b].c"},
		{name: "empty", in: spath.Plains(""), want: "[]"},
		{name: "keyword", in: spath.Plains("@root", "x"), want: "@root.x"},
		{name: "bare lead-in", in: spath.Plains("./", "x"), want: "./x"},
		{name: "markers", in: spath.Plains("../../", "../", "../", "x"), want: "../../x"},
		{name: "markers without lead-in", in: spath.Plains("a", "../", "x"), want: "a.../x"},
		{
			name: "depths off",
			in:   spath.Path{scoped("a", 1), spath.Plains("b")[0]},
			want: "a.b",
		},
		{
			name: "depths",
			in:   spath.Path{scoped("a", 1), scoped("b", 0), spath.Plains("c")[0]},
			opts: []EncodeOption{Depths(true)},
			want: "a^1.b^0.c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.in, tt.opts...); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, src := range []string{"a.b", "../../x", "./", "././y", "@root.[a b].c", "@index"} {
		p, err := parse.Path(src)
		if err != nil {
			t.Fatal(err)
		}
		if got := Path(p); got != src {
			t.Errorf("got %q want %q", got, src)
		}
	}
	// Brackets have no escape, so a text holding "]" does not read back.
	enc := Path(spath.Plains("a]b"))
	if enc != "[a]b]" {
		t.Errorf("got %q", enc)
	}
	if _, err := parse.Path(enc); err == nil {
		t.Errorf("%q parsed", enc)
	}
}

func TestPathColors(t *testing.T) {
	c := &Colors{Default: func(s string, _ ...any) string { return "<" + s + ">" }}
	got := Path(spath.Path{scoped("a", 2), spath.Plains("b")[0]}, EncodeColors(c), Depths(true))
	if want := "<a><^2><.><b>"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestResults(t *testing.T) {
	res := NewResult(spath.Plains("a", "b"), spath.Plains("./", "./", "c"), spath.Path{scoped("b", 0), spath.Plains("c")[0]})
	res2 := NewResult(nil, spath.Plains("x"), spath.Plains("x"))
	res2.Pos = "t.tmpl:1:3"

	buf := bytes.NewBuffer(nil)
	if err := Results(buf, []*Result{res, res2}, Depths(true)); err != nil {
		t.Fatal(err)
	}
	want := "./c in a.b -> b^0.c\nt.tmpl:1:3: x -> x\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}

	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		buf.Reset()
		if err := Results(buf, []*Result{res}, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, s := range []string{"path", "b.c", "depth", "segments"} {
			if !strings.Contains(out, s) {
				t.Errorf("%s: %q missing from %s", f, s, out)
			}
		}
		if strings.Contains(out, "pos") {
			t.Errorf("%s: empty pos written: %s", f, out)
		}
	}
}
