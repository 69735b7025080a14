package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/scopepath/token"
)

var (
	ErrLookup      = errors.New("lookup error")
	ErrNoFrame     = errors.New("no such frame")
	ErrUnbound     = errors.New("unbound keyword")
	ErrNotIterable = errors.New("value cannot be iterated")
)

// RenderErr is an error evaluating the reference Raw at Pos.
type RenderErr struct {
	Err      error
	Raw      string
	Pos      *token.Pos
	Filename string
}

func (e *RenderErr) Unwrap() error {
	return e.Err
}

func (e *RenderErr) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: {{%s}}: %s at %s", e.Filename, e.Raw, e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("{{%s}}: %s at %s", e.Raw, e.Err.Error(), e.Pos.String())
}
