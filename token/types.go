package token

import (
	"fmt"
)

type TokenType int

const (
	TLeadIn TokenType = iota
	TStay
	TUp
	TName
	TLiteral
	TKeyword
	TDot
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLeadIn:  "TLeadIn",
		TStay:    "TStay",
		TUp:      "TUp",
		TName:    "TName",
		TLiteral: "TLiteral",
		TKeyword: "TKeyword",
		TDot:     "TDot",
	}[t]
}

// IsMarker reports whether tokens of this type navigate scopes rather than
// name anything.
func (t TokenType) IsMarker() bool {
	switch t {
	case TLeadIn, TStay, TUp:
		return true
	}
	return false
}

type Token struct {
	Type TokenType
	Pos  *Pos
	Text string
}

func (t *Token) Span() Span {
	return Span{Text: t.Text, Pos: t.Pos}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
