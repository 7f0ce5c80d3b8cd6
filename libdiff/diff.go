package libdiff

import (
	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"
)

// Diff returns the changes that turn from into to, in the order Apply
// performs them. Equal trees give no changes.
func Diff(from, to *ir.Value) []Change {
	res := diff(nil, from, to)
	if debug.Patch() {
		for _, c := range res {
			debug.Logf("diff %s\n", c)
		}
	}
	return res
}

func diff(at *kpath.KPath, from, to *ir.Value) []Change {
	if from.Type() != to.Type() {
		return []Change{MakeChange(at, from, to)}
	}
	switch from.Type() {
	case ir.TableType:
		ft, _ := from.GetTable()
		tt, _ := to.GetTable()
		return DiffTable(at, ft, tt, diff)
	case ir.ArrayType:
		fa, _ := from.GetArray()
		ta, _ := to.GetArray()
		return DiffArrayByIndex(at, fa, ta, diff)
	case ir.StringType:
		return DiffString(at, from, to)
	default:
		return DiffScalar(at, from, to)
	}
}
