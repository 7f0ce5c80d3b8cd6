package ir

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrEncoding     = errors.New("invalid utf8")
	ErrPath         = errors.New("bad path")
)

// TypeMismatchError is returned by the typed getters when the active
// variant is not the requested one.
type TypeMismatchError struct {
	Want, Got Type
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrTypeMismatch, e.Want, e.Got)
}

func mismatch(want, got Type) error {
	return &TypeMismatchError{Want: want, Got: got}
}

func encodingErr(what string) error {
	return fmt.Errorf("%w: %s", ErrEncoding, what)
}
