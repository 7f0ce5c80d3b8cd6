package ir

import (
	"fmt"

	"github.com/signadot/tomldoc/ir/kpath"
)

// PathValue is a value found by ListPath together with its concrete path.
type PathValue struct {
	Path  *kpath.KPath
	Value *Value
}

// GetPath returns the value at p below v. A nil p denotes v itself.
// Wildcards are not allowed; use ListPath.
func GetPath(v *Value, p *kpath.KPath) (*Value, error) {
	if p.HasWildcard() {
		return nil, fmt.Errorf("%w: wildcard in %q", ErrPath, p)
	}
	x := v
	for seg := p; seg != nil; seg = seg.Next {
		next, err := step(x, seg)
		if err != nil {
			return nil, fmt.Errorf("%w at %q", err, p)
		}
		x = next
	}
	return x, nil
}

// ListPath returns every value matching p below v in document order.
// Entries that do not have the shape p asks for are skipped.
func ListPath(v *Value, p *kpath.KPath) []PathValue {
	var res []PathValue
	listPath(v, nil, p, &res)
	return res
}

func listPath(v *Value, at, p *kpath.KPath, res *[]PathValue) {
	if p == nil {
		*res = append(*res, PathValue{Path: at, Value: v})
		return
	}
	rest := p.Next
	switch {
	case p.FieldAll:
		if v.typ != TableType {
			return
		}
		for k, e := range v.tbl.All() {
			listPath(e, at.Append(kpath.Field(k)), rest, res)
		}
	case p.IndexAll:
		if v.typ != ArrayType {
			return
		}
		for i, e := range v.arr.All() {
			listPath(e, at.Append(kpath.Idx(i)), rest, res)
		}
	default:
		next, err := step(v, p)
		if err != nil {
			return
		}
		seg := *p
		seg.Next = nil
		listPath(next, at.Append(&seg), rest, res)
	}
}

func step(v *Value, seg *kpath.KPath) (*Value, error) {
	switch {
	case seg.Field != nil:
		if v.typ != TableType {
			return nil, fmt.Errorf("%w: key %q in %s", ErrPath, *seg.Field, v.typ)
		}
		e, ok := v.tbl.Get(*seg.Field)
		if !ok {
			return nil, fmt.Errorf("%w: no key %q", ErrPath, *seg.Field)
		}
		return e, nil
	case seg.Index != nil:
		if v.typ != ArrayType {
			return nil, fmt.Errorf("%w: index %d in %s", ErrPath, *seg.Index, v.typ)
		}
		e, ok := v.arr.Get(*seg.Index)
		if !ok {
			return nil, fmt.Errorf("%w: index %d out of range", ErrPath, *seg.Index)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: empty segment", ErrPath)
}

// SetPath stores x at p below v, creating missing tables along the way.
// An index equal to the array length appends.
func SetPath(v *Value, p *kpath.KPath, x *Value) error {
	if p == nil {
		x.CloneTo(v)
		return nil
	}
	if p.HasWildcard() {
		return fmt.Errorf("%w: wildcard in %q", ErrPath, p)
	}
	cur := v
	for seg := p; seg.Next != nil; seg = seg.Next {
		next, err := step(cur, seg)
		if err != nil && seg.Field != nil && cur.typ == TableType {
			cur.tbl.Insert(*seg.Field, NewTableValue())
			next, err = step(cur, seg)
		}
		if err != nil {
			return fmt.Errorf("%w at %q", err, p)
		}
		cur = next
	}
	last := p.Last()
	switch {
	case last.Field != nil:
		if cur.typ != TableType {
			return fmt.Errorf("%w: key %q in %s at %q", ErrPath, *last.Field, cur.typ, p)
		}
		cur.tbl.Insert(*last.Field, x)
	case last.Index != nil:
		if cur.typ != ArrayType {
			return fmt.Errorf("%w: index %d in %s at %q", ErrPath, *last.Index, cur.typ, p)
		}
		i := *last.Index
		if i == cur.arr.Len() {
			cur.arr.Push(x)
		} else if !cur.arr.Set(i, x) {
			return fmt.Errorf("%w: index %d out of range at %q", ErrPath, i, p)
		}
	}
	return nil
}

// DeletePath removes the entry at p below v.
func DeletePath(v *Value, p *kpath.KPath) error {
	if p == nil || p.HasWildcard() {
		return fmt.Errorf("%w: cannot delete %q", ErrPath, p)
	}
	parent, err := GetPath(v, p.Parent())
	if err != nil {
		return err
	}
	last := p.Last()
	if _, err := step(parent, last); err != nil {
		return fmt.Errorf("%w at %q", err, p)
	}
	if last.Field != nil {
		parent.tbl.Remove(*last.Field)
	} else {
		parent.arr.Remove(*last.Index)
	}
	return nil
}
