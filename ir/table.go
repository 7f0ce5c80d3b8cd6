package ir

import (
	"iter"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is an ordered mapping of unique keys to values. Iteration follows
// insertion order; replacing the value of an existing key keeps its place.
// A nil *Table reads as empty and ignores removals; Insert on it panics.
type Table struct {
	m     *orderedmap.OrderedMap[string, *Value]
	mods  int
	owned bool
}

func NewTable() *Table {
	return &Table{m: orderedmap.New[string, *Value]()}
}

func (t *Table) Len() int {
	if t == nil || t.m == nil {
		return 0
	}
	return t.m.Len()
}

func (t *Table) Get(key string) (*Value, bool) {
	if t == nil || t.m == nil {
		return nil, false
	}
	return t.m.Get(key)
}

// Insert stores v under key and reports whether key is new. An existing
// key keeps its position and its previous value is released. If v already
// belongs to a container, or t lies within v, a copy is stored instead.
//
// Keys that are not valid UTF-8 are rejected: Insert returns false and the
// table is unchanged. Insert on a nil table panics.
func (t *Table) Insert(key string, v *Value) bool {
	if t == nil {
		panic("ir: insert into nil table")
	}
	if !utf8.ValidString(key) {
		return false
	}
	if t.m == nil {
		t.m = orderedmap.New[string, *Value]()
	}
	v = adopt(v, t)
	old, present := t.m.Set(key, v)
	if present {
		if old != v {
			old.owned = false
		}
		return false
	}
	t.mods++
	return true
}

func (t *Table) Remove(key string) bool {
	if t == nil || t.m == nil {
		return false
	}
	old, present := t.m.Delete(key)
	if !present {
		return false
	}
	old.owned = false
	t.mods++
	return true
}

func (t *Table) Clear() {
	if t == nil || t.m == nil || t.m.Len() == 0 {
		return
	}
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		p.Value.owned = false
	}
	t.m = orderedmap.New[string, *Value]()
	t.mods++
}

func (t *Table) Keys() []string {
	res := make([]string, 0, t.Len())
	for k := range t.All() {
		res = append(res, k)
	}
	return res
}

// All iterates over the entries in insertion order. Adding or removing
// keys while the iteration is running panics.
func (t *Table) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if t == nil || t.m == nil {
			return
		}
		mods := t.mods
		for p := t.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
			if t.mods != mods {
				panic("ir: table modified during iteration")
			}
		}
	}
}

func (t *Table) Clone() *Table {
	res := NewTable()
	for k, v := range t.All() {
		c := v.Clone()
		c.owned = true
		res.m.Set(k, c)
	}
	return res
}

func (t *Table) holds(c any) bool {
	for _, v := range t.All() {
		if v.holds(c) {
			return true
		}
	}
	return false
}
