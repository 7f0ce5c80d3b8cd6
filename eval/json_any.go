package eval

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/signadot/tomldoc/ir"
)

// ToAny gives v as plain Go values: map[string]any, []any, int, float64,
// string and bool. Datetimes become strings.
func ToAny(v *ir.Value) any {
	switch v.Type() {
	case ir.TableType:
		t, _ := v.GetTable()
		res := make(map[string]any, t.Len())
		for k, e := range t.All() {
			res[k] = ToAny(e)
		}
		return res
	case ir.ArrayType:
		a, _ := v.GetArray()
		res := make([]any, 0, a.Len())
		for e := range a.Values() {
			res = append(res, ToAny(e))
		}
		return res
	case ir.StringType:
		s, _ := v.GetString()
		return s
	case ir.DatetimeType:
		s, _ := v.GetDatetime()
		return s
	case ir.IntType:
		i, _ := v.GetInt()
		return int(i)
	case ir.FloatType:
		f, _ := v.GetFloat()
		return f
	case ir.BoolType:
		b, _ := v.GetBool()
		return b
	default:
		panic("impossible production")
	}
}

// FromAny converts the result of an expression back to a document value.
// Map keys are sorted since Go maps have no order.
func FromAny(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case *ir.Value:
		return x.Clone(), nil
	case nil:
		return nil, fmt.Errorf("%w: nil has no document value", ErrEval)
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(min(uint64(x), math.MaxInt64))), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(min(x, math.MaxInt64))), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x)
	case []any:
		a := ir.NewArray()
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			a.Push(ev)
		}
		return ir.FromArray(a), nil
	case map[string]any:
		t := ir.NewTable()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if !t.Insert(k, ev) {
				return nil, fmt.Errorf("%w: bad key %q", ErrEval, k)
			}
		}
		return ir.FromTable(t), nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrEval, v)
}
