package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tables compare entry by entry in iteration order, so two tables holding
// the same entries in a different order are not equal. NaN equals NaN.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case IntType:
		return cmp.Compare(a.i64, b.i64)
	case FloatType:
		return cmp.Compare(a.f64, b.f64)
	case StringType, DatetimeType:
		return strings.Compare(a.str, b.str)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a.arr, b.arr)
	case TableType:
		return compareTables(a.tbl, b.tbl)
	}
	return 0
}

func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Bool < Integer < Float < Datetime < String < Array < Table
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case IntType:
		return 1
	case FloatType:
		return 2
	case DatetimeType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case TableType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Array) int {
	lenA := a.Len()
	lenB := b.Len()
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareTables(a, b *Table) int {
	lenA := a.Len()
	lenB := b.Len()
	if lenA == 0 || lenB == 0 {
		return cmp.Compare(lenA, lenB)
	}
	pa, pb := a.m.Oldest(), b.m.Oldest()
	for pa != nil && pb != nil {
		if c := strings.Compare(pa.Key, pb.Key); c != 0 {
			return c
		}
		if c := Compare(pa.Value, pb.Value); c != 0 {
			return c
		}
		pa, pb = pa.Next(), pb.Next()
	}
	return cmp.Compare(lenA, lenB)
}
