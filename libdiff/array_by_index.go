package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"
	"github.com/signadot/tomldoc/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we map each element to a rune standing for its summary
//
//  1. scalars are summarized by type and value, containers by type only
//  2. diff the sequence of summaries
//  3. for every matching element that is a container we recurse
//  4. a delete directly followed by an insert becomes a replace
//
// Indexes in the result are positions in the array as it is when the
// change is applied, with changes applied in order.
func DiffArrayByIndex(at *kpath.KPath, from, to *ir.Array, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti, pos := 0, 0, 0
	// pending deletes at pos that a following insert may turn into
	// replaces
	pending := 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				fv, _ := from.Get(fi)
				res = append(res, MakeChange(at.Append(kpath.Idx(pos)), fv, nil))
				fi++
				pending++
			}
		case diffpatch.DiffEqual:
			pending = 0
			for range n {
				fv, _ := from.Get(fi)
				tv, _ := to.Get(ti)
				res = append(res, df(at.Append(kpath.Idx(pos)), fv, tv)...)
				fi++
				ti++
				pos++
			}
		case diffpatch.DiffInsert:
			for range n {
				tv, _ := to.Get(ti)
				if pending > 0 {
					j := len(res) - pending
					res[j] = MakeChange(res[j].Path, res[j].From, tv)
					pending--
					if pending > 0 {
						for k := j + 1; k < len(res); k++ {
							res[k].Path = at.Append(kpath.Idx(pos + 1))
						}
					}
				} else {
					res = append(res, MakeChange(at.Append(kpath.Idx(pos)), nil, tv))
				}
				ti++
				pos++
			}
			pending = 0
		}
	}
	return res
}

func mapValues(m map[string]rune, a *ir.Array) []rune {
	rs := make([]rune, a.Len())
	for i, v := range a.All() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v *ir.Value) string {
	switch v.Type() {
	case ir.TableType, ir.ArrayType:
		return v.Type().String()
	case ir.BoolType:
		b, _ := v.GetBool()
		return v.Type().String() + "-" + strconv.FormatBool(b)
	case ir.StringType:
		s, _ := v.GetString()
		if strings.Contains(s, "\n") {
			return v.Type().String() + "/m"
		}
		return v.Type().String() + "-" + s
	case ir.DatetimeType:
		s, _ := v.GetDatetime()
		return v.Type().String() + "-" + s
	case ir.IntType:
		i, _ := v.GetInt()
		return v.Type().String() + "-" + strconv.FormatInt(i, 10)
	case ir.FloatType:
		f, _ := v.GetFloat()
		return v.Type().String() + "-" + token.FormatFloat(f)
	}
	panic("type")
}
