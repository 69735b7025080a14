package token

import (
	"errors"
)

var (
	ErrEmpty            = errors.New("empty path")
	ErrEmptySegment     = errors.New("empty path segment")
	ErrMisplacedMarker  = errors.New("scope marker after path segment")
	ErrUnterminated     = errors.New("unterminated")
	ErrKeywordPlacement = errors.New("keyword must start the path")
)
