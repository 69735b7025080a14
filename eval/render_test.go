package eval

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/parse"
)

func prepare(t *testing.T, src string) *Template {
	t.Helper()
	tmpl, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	prog, err := compile.Compile(tmpl)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Prepare(prog)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func renderString(t *testing.T, src, data string) (string, error) {
	t.Helper()
	tmpl := prepare(t, src)
	d, err := LoadData([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	err = tmpl.Execute(buf, d)
	return buf.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		data string
		want string
	}{
		{
			name: "ref",
			src:  "Hello {{name}}!",
			data: "name: World",
			want: "Hello World!",
		},
		{
			name: "each stay",
			src:  "{{#each items}}{{./name}},{{/each}}",
			data: "items: [{name: a}, {name: b}]",
			want: "a,b,",
		},
		{
			name: "each keywords",
			src:  "{{#each xs}}{{@index}}{{#if @first}}F{{/if}}{{#unless @last}},{{/unless}}{{/each}}",
			data: "xs: [a, b, c]",
			want: "0F,1,2",
		},
		{
			name: "each map",
			src:  "{{#each m}}{{@key}}={{./}};{{/each}}",
			data: "m: {b: 2, a: 1}",
			want: "a=1;b=2;",
		},
		{
			name: "stay at top level",
			src:  "[{{./}}]",
			data: "x",
			want: "[x]",
		},
		{
			name: "with",
			src:  "{{#with a}}{{./b}}{{/with}}",
			data: "a: {b: x}",
			want: "x",
		},
		{
			name: "with nil",
			src:  "[{{#with a}}{{./b}}{{/with}}]",
			data: "b: x",
			want: "[]",
		},
		{
			name: "up to root",
			src:  "{{#each xs}}{{../title}}{{/each}}",
			data: "title: T\nxs: [1, 2]",
			want: "TT",
		},
		{
			name: "implicit match",
			src:  "{{#each people}}{{people.name}} {{/each}}",
			data: "people: [{name: a}, {name: b}]",
			want: "a b ",
		},
		{
			name: "root keyword",
			src:  "{{#each xs}}{{@root.t}}{{/each}}",
			data: "t: z\nxs: [1, 2, 3]",
			want: "zzz",
		},
		{
			name: "nested up",
			src:  "{{#each outer}}{{#each ./inner}}{{../k}}{{./}}{{/each}}{{/each}}",
			data: "outer: [{k: A, inner: [1, 2]}, {k: B, inner: [3]}]",
			want: "A1A2B3",
		},
		{
			name: "length",
			src:  "{{xs.length}}",
			data: "xs: [a, b]",
			want: "2",
		},
		{
			name: "index",
			src:  "{{xs.1}}",
			data: "xs: [a, b]",
			want: "b",
		},
		{
			name: "missing",
			src:  "[{{a.b.c}}]",
			data: "a: 1",
			want: "[]",
		},
		{
			name: "falsy",
			src:  "{{#if e}}x{{/if}}{{#unless e}}y{{/unless}}",
			data: "e: []",
			want: "y",
		},
		{
			name: "literal segment",
			src:  "{{[a b].c}}",
			data: "a b: {c: d}",
			want: "d",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderString(t, tt.src, tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		src  string
		data string
		want error
	}{
		{src: "{{#each n}}{{/each}}", data: "n: 3", want: ErrNotIterable},
		{src: "x{{@index}}", data: "", want: ErrUnbound},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := renderString(t, tt.src, tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
			var rErr *RenderErr
			if !errors.As(err, &rErr) || rErr.Pos == nil {
				t.Errorf("no position in %v", err)
			}
		})
	}
}

func TestRenderConcurrent(t *testing.T) {
	tmpl := prepare(t, "{{#each xs}}{{./}}{{/each}}")
	data := map[string]any{"xs": []any{"a", "b"}}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := bytes.NewBuffer(nil)
			if err := tmpl.Execute(buf, data); err != nil {
				t.Error(err)
				return
			}
			if buf.String() != "ab" {
				t.Errorf("got %q", buf.String())
			}
		}()
	}
	wg.Wait()
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "s", want: "s"},
		{in: true, want: "true"},
		{in: uint64(3), want: "3"},
		{in: 1.5, want: "1.5"},
		{in: []any{}, want: "[]"},
	}
	for _, tt := range tests {
		got, err := Stringify(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v: got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderNonUTF8Key(t *testing.T) {
	tmpl := prepare(t, "{{[\xe9]}}")
	buf := bytes.NewBuffer(nil)
	if err := tmpl.Execute(buf, map[string]any{"\xe9": "latin1", "é": "utf8"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "latin1" {
		t.Errorf("got %q want latin1", got)
	}
}
