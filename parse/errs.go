package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/tomldoc/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrRedefined     = errors.New("table defined twice")
	ErrNotExtensible = errors.New("cannot extend")
	ErrTrailing      = errors.New("trailing text")
)

// ParseError is a diagnostic for input that is not a TOML document. It
// matches ErrParse and its cause with errors.Is.
type ParseError struct {
	Err      error
	Pos      *token.Pos
	Filename string
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *ParseError) Error() string {
	if e.Pos == nil {
		if e.Filename != "" {
			return fmt.Sprintf("%s: %s: %s", e.Filename, ErrParse, e.Err)
		}
		return fmt.Sprintf("%s: %s", ErrParse, e.Err)
	}
	line, col := e.Pos.LineCol()
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Filename, line, col, ErrParse, e.Err)
	}
	return fmt.Sprintf("%s at line %d, column %d: %s", ErrParse, line, col, e.Err)
}

// Line and Col are 1-based; both are 0 when the position is unknown.
func (e *ParseError) Line() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Line()
}

func (e *ParseError) Col() int {
	if e.Pos == nil {
		return 0
	}
	return e.Pos.Col()
}

func (e *ParseError) Offset() int {
	if e.Pos == nil {
		return -1
	}
	return e.Pos.I
}

func asParseError(err error, filename string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Filename = filename
		return pe
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		pos := te.Pos
		return &ParseError{Err: te.Err, Pos: &pos, Filename: filename}
	}
	return &ParseError{Err: err, Filename: filename}
}
