package jsontree

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	UintType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType, UintType, FloatType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	}
	return "<unknown type>"
}

// Value is a JSON value. Numbers that fit in an int64 are IntType, larger
// non negative integers are UintType and the rest are FloatType.
type Value struct {
	Type    Type
	Bool    bool
	Int64   int64
	Uint64  uint64
	Float64 float64
	String  string
	Values  []*Value
	Fields  *orderedmap.OrderedMap[string, *Value]
}

func Null() *Value              { return &Value{Type: NullType} }
func FromBool(b bool) *Value     { return &Value{Type: BoolType, Bool: b} }
func FromInt(i int64) *Value     { return &Value{Type: IntType, Int64: i} }
func FromUint(u uint64) *Value   { return &Value{Type: UintType, Uint64: u} }
func FromFloat(f float64) *Value { return &Value{Type: FloatType, Float64: f} }
func FromString(s string) *Value { return &Value{Type: StringType, String: s} }

func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{Type: ArrayType, Values: vs}
}

func NewObject() *Value {
	return &Value{Type: ObjectType, Fields: orderedmap.New[string, *Value]()}
}

// Set stores v under key in an object, keeping the position of an
// existing key.
func (v *Value) Set(key string, x *Value) *Value {
	v.Fields.Set(key, x)
	return v
}

func (v *Value) Get(key string) (*Value, bool) {
	if v.Type != ObjectType {
		return nil, false
	}
	return v.Fields.Get(key)
}

func (v *Value) Clone() *Value {
	res := *v
	switch v.Type {
	case ArrayType:
		res.Values = make([]*Value, len(v.Values))
		for i, e := range v.Values {
			res.Values[i] = e.Clone()
		}
	case ObjectType:
		res.Fields = orderedmap.New[string, *Value](v.Fields.Len())
		for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
			res.Fields.Set(pair.Key, pair.Value.Clone())
		}
	}
	return &res
}

// Equal compares a and b structurally, including the order of object
// members. Numbers compare by type and value; NaN equals NaN.
func Equal(a, b *Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case UintType:
		return a.Uint64 == b.Uint64
	case FloatType:
		if math.IsNaN(a.Float64) {
			return math.IsNaN(b.Float64)
		}
		return a.Float64 == b.Float64
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if a.Fields.Len() != b.Fields.Len() {
			return false
		}
		pb := b.Fields.Oldest()
		for pa := a.Fields.Oldest(); pa != nil; pa = pa.Next() {
			if pa.Key != pb.Key || !Equal(pa.Value, pb.Value) {
				return false
			}
			pb = pb.Next()
		}
		return true
	}
	return false
}
