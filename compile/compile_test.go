package compile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/spath"
)

func mustCompile(t *testing.T, src string, opts ...CompileOption) (*Program, error) {
	t.Helper()
	tmpl, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return Compile(tmpl, opts...)
}

func segStrings(p spath.Path) []string {
	res := make([]string, len(p))
	for i, s := range p {
		res[i] = fmt.Sprint(s)
	}
	return res
}

func TestCompileRefs(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want [][]string
	}{
		{
			name: "top level",
			src:  "{{a.b}}",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "stay in each",
			src:  "{{#each items}}{{./name}}{{/each}}",
			want: [][]string{{"items"}, {"items^0", "name"}},
		},
		{
			name: "up from nested",
			src:  "{{#with a}}{{#each ./b}}{{../c}}{{/each}}{{/with}}",
			want: [][]string{{"a"}, {"a^0", "b"}, {"a^1", "c"}},
		},
		{
			name: "no match is absolute",
			src:  "{{#with a}}{{x}}{{/with}}",
			want: [][]string{{"a"}, {"x"}},
		},
		{
			name: "implicit match",
			src:  "{{#with a.b}}{{b.c}}{{/with}}",
			want: [][]string{{"a", "b"}, {"a", "b^0", "c"}},
		},
		{
			name: "keyword",
			src:  "{{#each items}}{{@index}}{{/each}}",
			want: [][]string{{"items"}, {"@index"}},
		},
		{
			name: "root keyword frame",
			src:  "{{#with @root.a}}{{./b}}{{/with}}",
			want: [][]string{{"@root", "a"}, {"@root", "a^0", "b"}},
		},
		{
			name: "keyword frame not tagged",
			src:  "{{#with @root}}{{./b}}{{/with}}",
			want: [][]string{{"@root"}, {"@root", "b"}},
		},
		{
			name: "sibling blocks",
			src:  "{{#with a}}{{./x}}{{/with}}{{#with b}}{{./y}}{{/with}}",
			want: [][]string{{"a"}, {"a^0", "x"}, {"b"}, {"b^0", "y"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := mustCompile(t, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got := make([][]string, len(prog.Refs))
			for i, r := range prog.Refs {
				got[i] = segStrings(r.Path)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileTree(t *testing.T) {
	prog, err := mustCompile(t, "x{{#each a}}{{#if ./ok}}y{{/if}}{{/each}}")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Nodes) != 2 {
		t.Fatalf("got %d nodes", len(prog.Nodes))
	}
	each := prog.Nodes[1].(*Block)
	if each.Kind != Each || each.Expr.Frames != 0 {
		t.Errorf("got %s with %d frames", each.Kind, each.Expr.Frames)
	}
	cond := each.Body[0].(*Block)
	if cond.Kind != If || cond.Expr.Frames != 1 {
		t.Errorf("got %s with %d frames", cond.Kind, cond.Expr.Frames)
	}
	if diff := cmp.Diff([]string{"a"}, cond.Expr.Base.Texts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var kinds []string
	Walk(prog.Nodes, func(n Node) bool {
		if b, ok := n.(*Block); ok {
			kinds = append(kinds, b.Kind.String())
		}
		return true
	})
	if diff := cmp.Diff([]string{"each", "if"}, kinds); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		src  string
		opts []CompileOption
		want []error
	}{
		{src: "{{@foo}}", want: []error{ErrUnknownKeyword}},
		{src: "{{@foo}}", opts: []CompileOption{Keywords("@foo")}},
		{src: "{{@index}}", opts: []CompileOption{Keywords("@foo")}, want: []error{ErrUnknownKeyword}},
		{src: "{{@index.a}}", want: []error{ErrKeywordPath}},
		{src: "{{@root.a.b}}"},
		{src: "{{#loop a}}{{/loop}}", want: []error{ErrUnknownBlock}},
		{src: "{{@foo}} {{#loop @bar}}{{/loop}}", want: []error{ErrUnknownKeyword, ErrUnknownBlock, ErrUnknownKeyword}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, err := mustCompile(t, tt.src, tt.opts...)
			if prog == nil {
				t.Fatal("nil program")
			}
			errs := Errors(err)
			if len(errs) != len(tt.want) {
				t.Fatalf("got %v", err)
			}
			for i, e := range errs {
				if !errors.Is(e, tt.want[i]) {
					t.Errorf("error %d: got %v want %v", i, e, tt.want[i])
				}
				if e.Pos == nil {
					t.Errorf("error %d has no position", i)
				}
			}
		})
	}
}

func TestErrorFilename(t *testing.T) {
	tmpl, err := parse.Parse([]byte("\n  {{@nope}}"), parse.Filename("t.tmpl"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Compile(tmpl)
	errs := Errors(err)
	if len(errs) != 1 {
		t.Fatalf("got %v", err)
	}
	if l, c := errs[0].Pos.LineCol(); l != 1 || c != 4 {
		t.Errorf("got %d:%d", l, c)
	}
	if got := errs[0].Error(); got[:len("t.tmpl: ")] != "t.tmpl: " {
		t.Errorf("got %q", got)
	}
}
