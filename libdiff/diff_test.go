package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scopepath/spath"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name      string
		want, got spath.Path
		edits     []Edit
	}{
		{
			name:  "equal",
			want:  spath.Plains("a", "b"),
			got:   spath.Plains("a", "b"),
			edits: []Edit{{Equal, "a"}, {Equal, "b"}},
		},
		{
			name:  "replace last",
			want:  spath.Plains("a", "b"),
			got:   spath.Plains("a", "c"),
			edits: []Edit{{Equal, "a"}, {Delete, "b"}, {Insert, "c"}},
		},
		{
			name:  "insert middle",
			want:  spath.Plains("a", "c"),
			got:   spath.Plains("a", "b", "c"),
			edits: []Edit{{Equal, "a"}, {Insert, "b"}, {Equal, "c"}},
		},
		{
			name:  "literal",
			want:  spath.Plains("x y"),
			got:   nil,
			edits: []Edit{{Delete, "[x y]"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paths(tt.want, tt.got)
			if diff := cmp.Diff(tt.edits, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if Changed(got) != (tt.name != "equal") {
				t.Errorf("Changed = %v", Changed(got))
			}
		})
	}
}

func TestStrings(t *testing.T) {
	edits := Strings("hello world", "hello there")
	if !Changed(edits) {
		t.Fatal("no change")
	}
	var want, got string
	for _, e := range edits {
		if e.Op != Insert {
			want += e.Text
		}
		if e.Op != Delete {
			got += e.Text
		}
	}
	if want != "hello world" || got != "hello there" {
		t.Errorf("edits do not rebuild inputs: %q %q", want, got)
	}
	if Changed(Strings("a\nb\n", "a\nb\n")) {
		t.Error("equal texts changed")
	}
}

func TestFormat(t *testing.T) {
	edits := []Edit{{Equal, "a"}, {Delete, "b"}, {Insert, "c"}}
	if got, want := Format(edits, " ", nil), "a -b +c"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
