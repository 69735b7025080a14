package spath

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func split(s string) Path {
	if s == "" {
		return nil
	}
	return Plains(strings.Fields(s)...)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{name: "keyword", base: "a b c", rel: "@root", want: "@root"},
		{name: "keyword empty base", base: "", rel: "@index", want: "@index"},
		{name: "keyword text in base", base: "@index", rel: "@index", want: "@index"},
		{name: "keyword with more segments", base: "a", rel: "@root a", want: "@root a"},
		{name: "up one", base: "x y z", rel: "./ ../ a", want: "x y a"},
		{name: "up saturates", base: "x", rel: "./ ../ ../ a", want: "a"},
		{name: "stay is a no-op", base: "x y", rel: "./ ./ z", want: "x y z"},
		{name: "mixed markers", base: "a b c", rel: "./ ../ ./ ../ d", want: "a d"},
		{name: "up lead-in is dropped", base: "a b", rel: "../ ../ c", want: "a c"},
		{name: "lead-in slice", base: "a b c", rel: "../../ ../ ../ d", want: "a d"},
		{name: "only markers", base: "a b", rel: "./ ../", want: "a"},
		{name: "only lead-in", base: "a b", rel: "./", want: "a b"},
		{name: "explicit empty base", base: "", rel: "./ ../ a", want: "a"},
		{name: "markers stop at first name", base: "a b", rel: "./ x ../ y", want: "a b x ../ y"},
		{name: "suffix match", base: "root a b c", rel: "b c d", want: "root a b c d"},
		{name: "rightmost anchor", base: "a b a b", rel: "a b x", want: "a b a b x"},
		{name: "longest wins over rightmost", base: "a b c x a", rel: "a b c d", want: "a b c d"},
		{name: "full base match", base: "a b c", rel: "a b c", want: "a b c"},
		{name: "interior match truncates", base: "root a b c", rel: "a x", want: "root a x"},
		{name: "rel head must match", base: "b", rel: "a b c", want: "a b c"},
		{name: "rel longer than base", base: "a", rel: "a b c", want: "a b c"},
		{name: "single segment match", base: "root a", rel: "a", want: "root a"},
		{name: "no match", base: "root", rel: "totally unrelated", want: "totally unrelated"},
		{name: "no match empty base", base: "", rel: "a b", want: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(split(tt.base), split(tt.rel))
			if diff := cmp.Diff(split(tt.want).Texts(), got.Texts()); diff != "" {
				t.Errorf("Resolve(%q, %q) (-want +got):\n%s", tt.base, tt.rel, diff)
			}
		})
	}
}

func TestResolveKeywordAnyBase(t *testing.T) {
	rel := Plains("@root")
	for _, base := range []Path{nil, {}, Plains("a"), Plains("@root", "x"), Plains("./", "../")} {
		got := Resolve(base, rel)
		if !got.EqualText(rel) {
			t.Errorf("Resolve(%s, @root) = %s", base, got)
		}
	}
}

func TestResolveIgnoresDepth(t *testing.T) {
	base := Plains("root", "a", "b", "c")
	tagged := base.Clone()
	for i := range tagged {
		tagged[i] = WithDepth(tagged[i], uint32(i+7))
	}
	rels := []Path{
		Plains("b", "c", "d"),
		Plains("./", "../", "z"),
		Plains("q"),
		{WithDepth(Plains("b")[0], 3), Plains("x")[0]},
	}
	for _, rel := range rels {
		plain := Resolve(base, rel)
		scoped := Resolve(tagged, rel)
		if !plain.EqualText(scoped) {
			t.Errorf("rel %s: %s != %s", rel, plain, scoped)
		}
	}
}

func TestResolveKeepsSegments(t *testing.T) {
	base := Path{WithDepth(Plains("a")[0], 1), Plains("b")[0]}
	got := Resolve(base, Plains("b", "c"))
	if d, ok := Depth(got[0]); !ok || d != 1 {
		t.Errorf("got depth %d, %v want 1, true", d, ok)
	}
	if _, ok := Depth(got[2]); ok {
		t.Errorf("appended segment should be plain")
	}
}

func TestResolveDoesNotAlias(t *testing.T) {
	base := Plains("a", "b", "c")
	baseCopy := base.Clone()
	for _, rel := range []Path{
		Plains("@root"),
		Plains("./", "../", "x"),
		Plains("b", "x"),
		Plains("q"),
	} {
		relCopy := rel.Clone()
		got := Resolve(base, rel)
		if len(got) > 0 {
			got[0] = Plains("mutated")[0]
		}
		if !base.EqualText(baseCopy) {
			t.Fatalf("base changed to %s", base)
		}
		if !rel.EqualText(relCopy) {
			t.Fatalf("rel changed to %s", rel)
		}
	}
}

func TestResolveAppendDoesNotAlias(t *testing.T) {
	backing := Plains("a", "b", "c", "d")
	base := backing[:2]
	got := Resolve(base, Plains("b", "x"))
	got = append(got, Plains("y")...)
	if Text(backing[2]) != "c" {
		t.Errorf("resolution wrote into base's backing array: %s", backing)
	}
	_ = got
}

func TestResolveNotIdempotent(t *testing.T) {
	p := Plains("./", "x")
	got := Resolve(p, p)
	if got.EqualText(p) {
		t.Errorf("expected %s to change when resolved against itself", p)
	}
	if diff := cmp.Diff([]string{"./", "x", "x"}, got.Texts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolveEmptyRelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Resolve(Plains("a"), nil)
}

func TestResolveConcurrent(t *testing.T) {
	base := Plains("root", "a", "b", "c")
	rels := []Path{
		Plains("b", "c", "d"),
		Plains("./", "../", "../", "x"),
		Plains("@index"),
		Plains("nope"),
	}
	want := make([]Path, len(rels))
	for i, rel := range rels {
		want[i] = Resolve(base, rel)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, rel := range rels {
					if got := Resolve(base, rel); !got.EqualText(want[i]) {
						t.Errorf("got %s want %s", got, want[i])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
