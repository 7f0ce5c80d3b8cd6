package libdiff

import (
	"fmt"

	"github.com/signadot/tomldoc/ir"
)

// Apply performs changes on a copy of doc. Every change must find what it
// expects: a Delete or Replace needs its From value in place and an Insert
// into a table needs the key to be absent. Keys inserted into a table go
// last.
func Apply(doc *ir.Value, changes []Change) (*ir.Value, error) {
	res := doc.Clone()
	for _, c := range changes {
		if err := apply(res, c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func apply(doc *ir.Value, c Change) error {
	if c.Path == nil {
		if c.Op != Replace || !ir.Equal(doc, c.From) {
			return fmt.Errorf("%w: unexpected value at root", ErrPatch)
		}
		c.To.CloneTo(doc)
		return nil
	}
	parent, err := ir.GetPath(doc, c.Path.Parent())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	last := c.Path.Last()
	if c.Op == Insert {
		if last.Field != nil {
			t, err := parent.GetTable()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPatch, err)
			}
			if _, ok := t.Get(*last.Field); ok {
				return fmt.Errorf("%w: %s already present", ErrPatch, c.Path)
			}
			t.Insert(*last.Field, c.To.Clone())
			return nil
		}
		a, err := parent.GetArray()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPatch, err)
		}
		if !a.Insert(*last.Index, c.To.Clone()) {
			return fmt.Errorf("%w: index out of range at %s", ErrPatch, c.Path)
		}
		return nil
	}
	cur, err := ir.GetPath(parent, last)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if !ir.Equal(cur, c.From) {
		return fmt.Errorf("%w: unexpected value at %s", ErrPatch, c.Path)
	}
	if c.Op == Delete {
		if err := ir.DeletePath(parent, last); err != nil {
			return fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return nil
	}
	if err := ir.SetPath(parent, last, c.To.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return nil
}
