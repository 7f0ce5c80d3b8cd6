package libdiff

import (
	"strings"

	"github.com/signadot/tomldoc/encode"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one edit at Path. From is nil for an Insert and To is nil for
// a Delete. A Replace of one string by a similar one carries the text
// edits in Text.
type Change struct {
	Op   Op
	Path *kpath.KPath
	From *ir.Value
	To   *ir.Value
	Text []diffpatch.Diff
}

type DiffFunc func(at *kpath.KPath, from, to *ir.Value) []Change

func MakeChange(at *kpath.KPath, from, to *ir.Value) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: at, To: to.Clone()}
	case to == nil:
		return Change{Op: Delete, Path: at, From: from.Clone()}
	default:
		return Change{Op: Replace, Path: at, From: from.Clone(), To: to.Clone()}
	}
}

// String gives a one line summary:
//
//	+ a.b = 1
//	- a.c = "x"
//	~ a.d = 1 -> 2
//	~ a.s = "ab[-c-]{+d+}"
func (c Change) String() string {
	path := c.Path.String()
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Insert:
		return "+ " + path + " = " + inline(c.To)
	case Delete:
		return "- " + path + " = " + inline(c.From)
	}
	if c.Text != nil {
		return "~ " + path + " = " + textString(c.Text)
	}
	return "~ " + path + " = " + inline(c.From) + " -> " + inline(c.To)
}

func inline(v *ir.Value) string {
	b := &strings.Builder{}
	if err := encode.EncodeValue(v, b); err != nil {
		return err.Error()
	}
	return b.String()
}

func textString(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	b.WriteByte('"')
	for _, d := range diffs {
		q := inline(ir.MustFromString(d.Text))
		q = q[1 : len(q)-1]
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(q)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + q + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + q + "+}")
		}
	}
	b.WriteByte('"')
	return b.String()
}
