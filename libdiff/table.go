package libdiff

import (
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffTable diffs the key sequences of from and to. Keys present in both
// at matching places are diffed with df; the rest are deletes and inserts,
// so a key that moved shows up as both. Deletes come first and inserts
// last, in the order of to.
func DiffTable(at *kpath.KPath, from, to *ir.Table, df DiffFunc) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeys(fieldMap, runeMap, from)
	toRunes := mapKeys(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var dels, res, ins []Change
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			k := runeMap[r]
			sub := at.Append(kpath.Field(k))
			switch d.Type {
			case diffpatch.DiffDelete:
				v, _ := from.Get(k)
				dels = append(dels, MakeChange(sub, v, nil))
			case diffpatch.DiffEqual:
				fv, _ := from.Get(k)
				tv, _ := to.Get(k)
				res = append(res, df(sub, fv, tv)...)
			case diffpatch.DiffInsert:
				v, _ := to.Get(k)
				ins = append(ins, MakeChange(sub, nil, v))
			}
		}
	}
	return append(append(dels, res...), ins...)
}

func mapKeys(m map[string]rune, im map[rune]string, t *ir.Table) []rune {
	keys := t.Keys()
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
