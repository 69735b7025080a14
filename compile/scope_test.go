package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/scopepath/spath"
)

func TestScope(t *testing.T) {
	s := &Scope{}
	if s.Base() != nil || s.Len() != 0 {
		t.Fatal("new scope not empty")
	}
	s.Push(spath.Plains("a"))
	s.Push(spath.Plains("a", "b"))
	if s.Len() != 2 {
		t.Errorf("got len %d", s.Len())
	}
	got := segStrings(s.Resolve(spath.Plains("../", "../", "c")))
	if diff := cmp.Diff([]string{"a^1", "c"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = segStrings(s.Resolve(spath.Plains("b", "d")))
	if diff := cmp.Diff([]string{"a^1", "b^0", "d"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.Pop().Texts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, s.Base().Texts()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScopeSameFrame(t *testing.T) {
	s := &Scope{}
	s.Push(spath.Plains("a"))
	s.Push(spath.Plains("a"))
	got := segStrings(s.Resolve(spath.Plains("./", "x")))
	if diff := cmp.Diff([]string{"a^0", "x"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScopePopEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	(&Scope{}).Pop()
}
