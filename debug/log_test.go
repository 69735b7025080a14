package debug

import (
	"io"
	"os"
	"testing"

	"github.com/signadot/scopepath/spath"
)

func TestLogf(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stderr := os.Stderr
	os.Stderr = w
	Logf("%v %s %d %v\n", spath.Plains("a", "b"), "s", 3, true)
	os.Stderr = stderr
	w.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "[a b] s 3 true\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
