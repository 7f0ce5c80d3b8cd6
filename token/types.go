package token

import (
	"fmt"
)

type TokenType int

const (
	TBareKey TokenType = iota
	TString
	TMString
	TLiteral
	TMLit
	TInteger
	TFloat
	TDatetime
	TTrue
	TFalse
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TBareKey:  "TBareKey",
		TString:   "TString",
		TMString:  "TMString",
		TLiteral:  "TLiteral",
		TMLit:     "TMLit",
		TInteger:  "TInteger",
		TFloat:    "TFloat",
		TDatetime: "TDatetime",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
	}[t]
}

// Token is a key or scalar. Bytes is the source text; Val is the decoded
// content for the string types and the source text otherwise.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Val   string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Val
}

func (t *Token) IsString() bool {
	switch t.Type {
	case TString, TMString, TLiteral, TMLit:
		return true
	}
	return false
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
