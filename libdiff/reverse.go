package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes that undo changes: applied to the result of
// Apply(doc, changes) they give back doc.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
		}
		if c.Text != nil {
			r.Text = make([]diffpatch.Diff, len(c.Text))
			for j, d := range c.Text {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				r.Text[j] = d
			}
		}
		res[len(changes)-1-i] = r
	}
	return res
}
