package ir

import (
	"iter"
	"slices"
)

// Array is an ordered, possibly heterogeneous sequence of values. A nil
// *Array reads as empty and ignores removals; Push on it panics.
type Array struct {
	vals  []*Value
	mods  int
	owned bool
}

func NewArray() *Array {
	return &Array{}
}

// FromSlice builds an array holding vs, copying any value that already
// belongs to a container.
func FromSlice(vs []*Value) *Array {
	res := &Array{vals: make([]*Value, 0, len(vs))}
	for _, v := range vs {
		res.Push(v)
	}
	return res
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vals)
}

func (a *Array) Get(i int) (*Value, bool) {
	if a == nil || i < 0 || i >= len(a.vals) {
		return nil, false
	}
	return a.vals[i], true
}

// Push appends v, or a copy of v if it already belongs to a container or
// a lies within it. Push on a nil array panics.
func (a *Array) Push(v *Value) {
	if a == nil {
		panic("ir: push to nil array")
	}
	a.vals = append(a.vals, adopt(v, a))
	a.mods++
}

// Set replaces the element at index i, 0 <= i < Len(). The previous
// element is released.
func (a *Array) Set(i int, v *Value) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	v = adopt(v, a)
	if old := a.vals[i]; old != v {
		old.owned = false
	}
	a.vals[i] = v
	return true
}

// Pop removes the last element and returns it, released from the array.
func (a *Array) Pop() (*Value, bool) {
	n := a.Len()
	if n == 0 {
		return nil, false
	}
	v := a.vals[n-1]
	a.vals[n-1] = nil
	a.vals = a.vals[:n-1]
	v.owned = false
	a.mods++
	return v, true
}

// Insert places v at index i, 0 <= i <= Len(), shifting later elements.
func (a *Array) Insert(i int, v *Value) bool {
	if a == nil || i < 0 || i > len(a.vals) {
		return false
	}
	a.vals = slices.Insert(a.vals, i, adopt(v, a))
	a.mods++
	return true
}

// Remove deletes the element at index i, 0 <= i < Len().
func (a *Array) Remove(i int) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	a.vals[i].owned = false
	a.vals = slices.Delete(a.vals, i, i+1)
	a.mods++
	return true
}

func (a *Array) Clear() {
	if a.Len() == 0 {
		return
	}
	for _, v := range a.vals {
		v.owned = false
	}
	a.vals = nil
	a.mods++
}

// All iterates over index, element pairs. Push, Pop, Insert, Remove or
// Clear during the iteration panics.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if a == nil {
			return
		}
		mods := a.mods
		for i := 0; i < len(a.vals); i++ {
			if !yield(i, a.vals[i]) {
				return
			}
			if a.mods != mods {
				panic("ir: array modified during iteration")
			}
		}
	}
}

func (a *Array) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (a *Array) Clone() *Array {
	res := &Array{vals: make([]*Value, a.Len())}
	for i, v := range a.All() {
		c := v.Clone()
		c.owned = true
		res.vals[i] = c
	}
	return res
}

// AllTables reports whether a is non-empty and every element is a table,
// the shape written as [[array.of.tables]].
func (a *Array) AllTables() bool {
	if a.Len() == 0 {
		return false
	}
	for _, v := range a.vals {
		if v.typ != TableType {
			return false
		}
	}
	return true
}

func (a *Array) holds(c any) bool {
	for _, v := range a.All() {
		if v.holds(c) {
			return true
		}
	}
	return false
}
