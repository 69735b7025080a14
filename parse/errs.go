package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/scopepath/token"
)

var (
	ErrParse       = errors.New("parse error")
	ErrUnclosedTag = fmt.Errorf("%w: unclosed tag", ErrParse)
	ErrEmptyTag    = fmt.Errorf("%w: empty tag", ErrParse)
	ErrUnbalanced  = fmt.Errorf("%w: unbalanced block", ErrParse)
)

// ParseErr is an error at a position in the parsed source.
type ParseErr struct {
	Err      error
	Pos      token.Pos
	Filename string
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: %s at %s", e.Filename, e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Tag is a block tag as written in the source.
type Tag struct {
	Name string
	Text string
	Pos  *token.Pos
}

// UnbalancedErr reports a block closed by the wrong tag, a close tag
// without an open block (Open is nil), or a block left open (Close is nil).
type UnbalancedErr struct {
	Open, Close *Tag
	Filename    string
}

func (u *UnbalancedErr) Unwrap() error {
	return ErrUnbalanced
}

func (u *UnbalancedErr) Error() string {
	prefix := ""
	if u.Filename != "" {
		prefix = u.Filename + ": "
	}
	if u.Open == nil {
		return prefix + ErrUnbalanced.Error() + ": " + fmt.Sprintf("unexpected %s at %s", u.Close.Text, u.Close.Pos.String())
	}
	if u.Close == nil {
		return prefix + ErrUnbalanced.Error() + ": " + fmt.Sprintf("unclosed %s at %s", u.Open.Text, u.Open.Pos.String())
	}
	return fmt.Sprintf("%s%s: %s at %s closed by %s at %s",
		prefix,
		ErrUnbalanced.Error(),
		u.Open.Text, u.Open.Pos.String(),
		u.Close.Text, u.Close.Pos.String())
}

// ErrPos returns the source position carried by err, if any.
func ErrPos(err error) (*token.Pos, bool) {
	var pErr *ParseErr
	if errors.As(err, &pErr) {
		return &pErr.Pos, true
	}
	var uErr *UnbalancedErr
	if errors.As(err, &uErr) {
		if uErr.Close != nil {
			return uErr.Close.Pos, true
		}
		return uErr.Open.Pos, true
	}
	var tkErr *token.TokenizeErr
	if errors.As(err, &tkErr) {
		return &tkErr.Pos, true
	}
	return nil, false
}
