package jsontree

import (
	"math"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"
)

// ToDocument converts a JSON tree to a document tree. Integers that do
// not fit an int64 are clamped to math.MaxInt64. Nulls have no document
// counterpart: null members and elements are dropped and a null root
// yields an empty table.
func ToDocument(v *Value) *ir.Value {
	res := toDocument(v)
	if res == nil {
		res = ir.NewTableValue()
	}
	if debug.Convert() {
		debug.Logf("json to document: %v\n", res)
	}
	return res
}

func toDocument(v *Value) *ir.Value {
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return ir.FromBool(v.Bool)
	case IntType:
		return ir.FromInt(v.Int64)
	case UintType:
		return ir.FromInt(int64(min(v.Uint64, math.MaxInt64)))
	case FloatType:
		return ir.FromFloat(v.Float64)
	case StringType:
		return ir.MustFromString(validString(v.String))
	case ArrayType:
		a := ir.NewArray()
		for _, e := range v.Values {
			if x := toDocument(e); x != nil {
				a.Push(x)
			}
		}
		return ir.FromArray(a)
	case ObjectType:
		t := ir.NewTable()
		for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
			if x := toDocument(pair.Value); x != nil {
				t.Insert(validString(pair.Key), x)
			}
		}
		return ir.FromTable(t)
	}
	return nil
}

// FromDocument converts a document tree to a JSON tree. Datetimes become
// strings holding their text.
func FromDocument(v *ir.Value) *Value {
	switch v.Type() {
	case ir.StringType:
		s, _ := v.GetString()
		return FromString(s)
	case ir.DatetimeType:
		s, _ := v.GetDatetime()
		return FromString(s)
	case ir.IntType:
		i, _ := v.GetInt()
		return FromInt(i)
	case ir.FloatType:
		f, _ := v.GetFloat()
		return FromFloat(f)
	case ir.BoolType:
		b, _ := v.GetBool()
		return FromBool(b)
	case ir.ArrayType:
		a, _ := v.GetArray()
		res := FromSlice(make([]*Value, 0, a.Len()))
		for e := range a.Values() {
			res.Values = append(res.Values, FromDocument(e))
		}
		return res
	case ir.TableType:
		t, _ := v.GetTable()
		res := NewObject()
		for k, e := range t.All() {
			res.Set(k, FromDocument(e))
		}
		return res
	}
	return Null()
}
