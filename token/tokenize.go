package token

import (
	"strconv"
	"strings"
)

const (
	stay = "./"
	up   = "../"
)

type tokenOpts struct {
	doc    *PosDoc
	offset int
}

type TokenOpt func(*tokenOpts)

// TokenDoc tells Tokenize that its input is the slice of doc's source that
// starts at offset, so that token positions refer to the whole document.
func TokenDoc(doc *PosDoc, offset int) TokenOpt {
	return func(o *tokenOpts) {
		o.doc = doc
		o.offset = offset
	}
}

// Tokenize appends the tokens of the path expression src to dst.
func Tokenize(dst []Token, src string, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.doc == nil {
		o.doc = NewPosDoc(src)
	}
	pos := func(i int) *Pos {
		return o.doc.Pos(o.offset + i)
	}
	n := len(src)
	if n == 0 {
		return nil, NewTokenizeErr(ErrEmpty, pos(0))
	}

	i := markerPrefix(src)
	if i > 0 {
		dst = append(dst, Token{Type: TLeadIn, Pos: pos(0), Text: src[:i]})
		for j := 0; j < i; {
			if strings.HasPrefix(src[j:], up) {
				dst = append(dst, Token{Type: TUp, Pos: pos(j), Text: src[j : j+len(up)]})
				j += len(up)
				continue
			}
			dst = append(dst, Token{Type: TStay, Pos: pos(j), Text: src[j : j+len(stay)]})
			j += len(stay)
		}
	}
	if i == n {
		return dst, nil
	}

	first := true
	for {
		if i == n {
			return nil, NewTokenizeErr(ErrEmptySegment, pos(i))
		}
		c := src[i]
		switch {
		case c == '[':
			j := strings.IndexByte(src[i+1:], ']')
			if j == -1 {
				return nil, NewTokenizeErr(ErrUnterminated, pos(i))
			}
			dst = append(dst, Token{Type: TLiteral, Pos: pos(i + 1), Text: src[i+1 : i+1+j]})
			i += j + 2
		case c == '@':
			if !first {
				return nil, NewTokenizeErr(ErrKeywordPlacement, pos(i))
			}
			j := i + 1 + nameLen(src[i+1:])
			if j == i+1 {
				return nil, NewTokenizeErr(ErrEmptySegment, pos(i))
			}
			dst = append(dst, Token{Type: TKeyword, Pos: pos(i), Text: src[i:j]})
			i = j
		case c == '.':
			return nil, NewTokenizeErr(ErrEmptySegment, pos(i))
		case c == '/':
			return nil, NewTokenizeErr(ErrMisplacedMarker, pos(i))
		case isNameByte(c):
			j := i + nameLen(src[i:])
			dst = append(dst, Token{Type: TName, Pos: pos(i), Text: src[i:j]})
			i = j
		default:
			return nil, UnexpectedErr(strconv.QuoteRune(rune(c)), pos(i))
		}
		first = false
		if i == n {
			return dst, nil
		}
		switch {
		case strings.HasPrefix(src[i:], stay), strings.HasPrefix(src[i:], up):
			return nil, NewTokenizeErr(ErrMisplacedMarker, pos(i))
		case src[i] == '.':
			dst = append(dst, Token{Type: TDot, Pos: pos(i), Text: src[i : i+1]})
			i++
		case src[i] == '/':
			return nil, NewTokenizeErr(ErrMisplacedMarker, pos(i))
		default:
			return nil, ExpectedErr("'.'", pos(i))
		}
	}
}

// markerPrefix returns the length of the run of "./" and "../" markers at
// the start of src.
func markerPrefix(src string) int {
	i := 0
	for {
		switch {
		case strings.HasPrefix(src[i:], up):
			i += len(up)
		case strings.HasPrefix(src[i:], stay):
			i += len(stay)
		default:
			return i
		}
	}
}

func nameLen(src string) int {
	for i := 0; i < len(src); i++ {
		if !isNameByte(src[i]) {
			return i
		}
	}
	return len(src)
}

func isNameByte(c byte) bool {
	switch c {
	case '.', '/', '[', ']', '{', '}', '@', ' ', '\t', '\r', '\n':
		return false
	}
	return true
}

// IsName reports whether s can be written as a path segment without
// brackets.
func IsName(s string) bool {
	return len(s) > 0 && nameLen(s) == len(s)
}
