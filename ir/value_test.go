package ir

import (
	"errors"
	"math"
	"testing"
)

func TestTypedGetters(t *testing.T) {
	v := FromInt(7)
	if _, err := v.GetString(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	var tm *TypeMismatchError
	_, err := v.GetTable()
	if !errors.As(err, &tm) {
		t.Fatalf("got %T", err)
	}
	if tm.Want != TableType || tm.Got != IntType {
		t.Errorf("got %+v", tm)
	}
	if err.Error() != "type mismatch: want Table, got Integer" {
		t.Errorf("message %q", err.Error())
	}
	if i, err := v.GetInt(); err != nil || i != 7 {
		t.Errorf("got %d %v", i, err)
	}
}

func TestZeroValueIsEmptyString(t *testing.T) {
	var v Value
	s, err := v.GetString()
	if err != nil || s != "" {
		t.Errorf("got %q %v", s, err)
	}
}

func TestSetters(t *testing.T) {
	v := FromBool(true)
	v.SetFloat(math.Inf(-1))
	if f, _ := v.GetFloat(); !math.IsInf(f, -1) {
		t.Errorf("got %v", f)
	}
	if err := v.SetString("\xc3"); !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
	if f, err := v.GetFloat(); err != nil || !math.IsInf(f, -1) {
		t.Errorf("failed set changed value: %v %v", f, err)
	}
	if err := v.SetDatetime("1979-05-27"); err != nil {
		t.Fatal(err)
	}
	if d, _ := v.GetDatetime(); d != "1979-05-27" {
		t.Errorf("got %q", d)
	}
	v.SetArray(nil)
	a, _ := v.GetArray()
	if a == nil || a.Len() != 0 {
		t.Error("nil array not empty")
	}
	v.SetTable(nil)
	tbl, _ := v.GetTable()
	if tbl == nil || tbl.Len() != 0 {
		t.Error("nil table not empty")
	}
}

func TestLiveContainers(t *testing.T) {
	root := NewTableValue()
	tbl, _ := root.GetTable()
	tbl.Insert("list", NewArrayValue())
	lv, _ := tbl.Get("list")
	arr, _ := lv.GetArray()
	arr.Push(FromInt(1))
	again, _ := tbl.Get("list")
	a2, _ := again.GetArray()
	if a2.Len() != 1 {
		t.Error("change through GetArray not visible")
	}
}

func TestInsertOwnedValueCopies(t *testing.T) {
	src := NewTable()
	src.Insert("inner", NewTableValue())
	inner, _ := src.Get("inner")
	it, _ := inner.GetTable()
	it.Insert("x", FromInt(1))

	dst := NewTable()
	dst.Insert("copy", inner)
	c, _ := dst.Get("copy")
	if c == inner {
		t.Fatal("owned value aliased")
	}
	ct, _ := c.GetTable()
	ct.Insert("y", FromInt(2))
	if it.Len() != 1 {
		t.Error("copy shares table with source")
	}
}

func TestReleasedValueMoves(t *testing.T) {
	a := NewArray()
	a.Push(MustFromString("v"))
	v, _ := a.Pop()
	b := NewArray()
	b.Push(v)
	got, _ := b.Get(0)
	if got != v {
		t.Error("released value was copied")
	}
}

func TestSetArrayOwnedCopies(t *testing.T) {
	v1 := NewArrayValue()
	a, _ := v1.GetArray()
	a.Push(FromInt(1))
	v2 := FromArray(a)
	b, _ := v2.GetArray()
	if a == b {
		t.Fatal("array shared by two values")
	}
	b.Push(FromInt(2))
	if a.Len() != 1 {
		t.Error("copy not independent")
	}
	// replacing v1's payload frees the old array for reuse
	v1.SetInt(0)
	v3 := FromArray(a)
	if c, _ := v3.GetArray(); c != a {
		t.Error("released array was copied")
	}
}

func countNodes(t *testing.T, v *Value) int {
	t.Helper()
	n := 0
	err := v.Visit(func(*Value, bool) (bool, error) {
		n++
		if n > 1000 {
			return false, errors.New("cycle")
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestInsertAncestorCopies(t *testing.T) {
	root := NewTableValue()
	rt, _ := root.GetTable()
	rt.Insert("s", NewTableValue())
	sv, _ := rt.Get("s")
	st, _ := sv.GetTable()
	st.Insert("x", FromInt(1))

	st.Insert("up", root)
	up, _ := st.Get("up")
	if up == root {
		t.Fatal("ancestor stored as its own descendant")
	}
	// root, s, x, up, up.s, up.s.x visited pre and post
	if n := countNodes(t, root); n != 12 {
		t.Errorf("visited %d", n)
	}
	if !Equal(root.Clone(), root) {
		t.Error("clone differs")
	}
}

func TestPushOwnValueCopies(t *testing.T) {
	v := NewArrayValue()
	a, _ := v.GetArray()
	a.Push(FromInt(1))
	a.Push(v)
	if !a.Insert(0, v) || !a.Set(1, v) {
		t.Fatal("insert or set failed")
	}
	for i, e := range a.All() {
		if e == v {
			t.Fatalf("element %d is the array's own value", i)
		}
	}
	countNodes(t, v)
}

func TestSetTableHoldingValue(t *testing.T) {
	v := FromInt(1)
	tbl := NewTable()
	tbl.Insert("x", v)
	v.SetTable(tbl)
	got, _ := v.GetTable()
	if got == tbl {
		t.Fatal("table holding v installed in v")
	}
	x, _ := got.Get("x")
	if i, err := x.GetInt(); err != nil || i != 1 {
		t.Errorf("got %d %v", i, err)
	}
	countNodes(t, v)

	w := FromBool(true)
	arr := NewArray()
	arr.Push(w)
	w.SetArray(arr)
	if a, _ := w.GetArray(); a == arr {
		t.Fatal("array holding w installed in w")
	}
	countNodes(t, w)
}

func TestCloneToSelf(t *testing.T) {
	v := NewTableValue()
	tbl, _ := v.GetTable()
	tbl.Insert("a", FromInt(1))
	if v.CloneTo(v) != v {
		t.Fatal("wrong result")
	}
	after, _ := v.GetTable()
	if after == nil || after.Len() != 1 {
		t.Fatalf("lost contents: %v", after)
	}
	after.Insert("b", FromInt(2))

	// copying an ancestor into a descendant
	inner := NewTableValue()
	tbl.Insert("in", inner)
	in, _ := tbl.Get("in")
	v.CloneTo(in)
	it, _ := in.GetTable()
	if got := len(it.Keys()); got != 3 {
		t.Errorf("got %d keys", got)
	}
	countNodes(t, v)
}

func TestNilContainers(t *testing.T) {
	var tbl *Table
	if tbl.Remove("x") || tbl.Len() != 0 || len(tbl.Keys()) != 0 {
		t.Error("nil table")
	}
	tbl.Clear()
	if tbl.Clone().Len() != 0 {
		t.Error("nil table clone")
	}
	var a *Array
	if _, ok := a.Pop(); ok {
		t.Error("pop")
	}
	if a.Set(0, FromInt(1)) || a.Insert(0, FromInt(1)) || a.Remove(0) {
		t.Error("nil array changed")
	}
	a.Clear()
	if a.Clone().Len() != 0 || a.AllTables() {
		t.Error("nil array clone")
	}
	defer func() {
		if recover() == nil {
			t.Error("push to nil array did not panic")
		}
	}()
	a.Push(FromInt(1))
}

func TestClone(t *testing.T) {
	tbl := NewTable()
	tbl.Insert("a", FromArray(FromSlice([]*Value{FromInt(1)})))
	orig := FromTable(tbl)
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	ct, _ := c.GetTable()
	ct.Insert("b", FromInt(2))
	if tbl.Len() != 1 {
		t.Error("clone shares table")
	}
	if Equal(orig, c) {
		t.Error("equal after change")
	}
}

func TestCompare(t *testing.T) {
	nan := FromFloat(math.NaN())
	if !Equal(nan, FromFloat(math.NaN())) {
		t.Error("nan")
	}
	if Compare(FromBool(true), FromInt(0)) >= 0 {
		t.Error("bool < int")
	}
	if Compare(MustFromString("a"), MustFromString("b")) >= 0 {
		t.Error("a < b")
	}
	if Equal(MustFromString("1979-05-27"), MustFromDatetime("1979-05-27")) {
		t.Error("string equals datetime")
	}
	t1, t2 := NewTable(), NewTable()
	t1.Insert("a", FromInt(1))
	t1.Insert("b", FromInt(2))
	t2.Insert("b", FromInt(2))
	t2.Insert("a", FromInt(1))
	if Equal(FromTable(t1), FromTable(t2)) {
		t.Error("key order ignored")
	}
}

func TestHash(t *testing.T) {
	a := FromSlice([]*Value{FromInt(1), MustFromString("x")})
	b := a.Clone()
	if FromArray(a).Hash() != FromArray(b).Hash() {
		t.Error("equal arrays hash differently")
	}
	if FromFloat(0).Hash() != FromFloat(math.Copysign(0, -1)).Hash() {
		t.Error("-0")
	}
}

func TestTruth(t *testing.T) {
	for _, c := range []struct {
		v    *Value
		want bool
	}{
		{FromInt(0), false},
		{FromInt(3), true},
		{MustFromString(""), false},
		{NewTableValue(), false},
		{FromBool(true), true},
	} {
		if Truth(c.v) != c.want {
			t.Errorf("%s: want %v", c.v.Type(), c.want)
		}
	}
}

func TestVisit(t *testing.T) {
	tbl := NewTable()
	tbl.Insert("a", FromArray(FromSlice([]*Value{FromInt(1), FromInt(2)})))
	tbl.Insert("b", FromBool(true))
	n := 0
	err := FromTable(tbl).Visit(func(v *Value, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	if err != nil || n != 5 {
		t.Errorf("visited %d, %v", n, err)
	}
}

func TestPredicates(t *testing.T) {
	v := MustFromDatetime("07:32:00")
	if !v.IsDatetime() || v.IsString() {
		t.Errorf("datetime is %s", v.Type())
	}
	v.SetBool(false)
	if !v.IsBool() {
		t.Errorf("after SetBool %s", v.Type())
	}
	v.SetArray(NewArray())
	if !v.IsArray() || v.IsTable() {
		t.Errorf("after SetArray %s", v.Type())
	}
}
