package compile

import (
	"errors"
	"fmt"

	"github.com/signadot/scopepath/token"
)

var (
	ErrUnknownBlock   = errors.New("unknown block")
	ErrUnknownKeyword = errors.New("unknown keyword")
	ErrKeywordPath    = errors.New("keyword cannot be followed by a path")
)

// Error is a compile error at a reference or block.
type Error struct {
	Pos      *token.Pos
	Filename string
	Err      error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: %s at %s", e.Filename, e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Errors returns the compile errors joined in err.
func Errors(err error) []*Error {
	if err == nil {
		return nil
	}
	var res []*Error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			res = append(res, Errors(e)...)
		}
		return res
	}
	var cErr *Error
	if errors.As(err, &cErr) {
		res = append(res, cErr)
	}
	return res
}
