package parse

import (
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/token"
)

type parseOpts struct {
	positions map[*ir.Value]*token.Pos
	filename  string
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of every parsed value in m.
func ParsePositions(m map[*ir.Value]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseFilename names the input in diagnostics.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
