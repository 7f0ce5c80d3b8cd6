package libdiff

import (
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"
)

func DiffScalar(at *kpath.KPath, from, to *ir.Value) []Change {
	if ir.Equal(from, to) {
		return nil
	}
	return []Change{MakeChange(at, from, to)}
}
