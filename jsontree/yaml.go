package jsontree

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
)

// FromYAML reads a YAML document into a JSON tree. Mapping order is kept.
// Timestamps become RFC 3339 strings and non string keys are printed.
func FromYAML(d []byte) (*Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return fromYAML(x), nil
}

func fromYAML(x any) *Value {
	switch y := x.(type) {
	case nil:
		return Null()
	case bool:
		return FromBool(y)
	case int:
		return FromInt(int64(y))
	case int64:
		return FromInt(y)
	case uint64:
		if y <= math.MaxInt64 {
			return FromInt(int64(y))
		}
		return FromUint(y)
	case float64:
		return FromFloat(y)
	case string:
		return FromString(validString(y))
	case []byte:
		return FromString(validString(string(y)))
	case time.Time:
		return FromString(y.Format(time.RFC3339Nano))
	case []any:
		res := FromSlice(make([]*Value, 0, len(y)))
		for _, e := range y {
			res.Values = append(res.Values, fromYAML(e))
		}
		return res
	case yaml.MapSlice:
		res := NewObject()
		for _, item := range y {
			res.Set(yamlKey(item.Key), fromYAML(item.Value))
		}
		return res
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			res.Set(validString(k), fromYAML(y[k]))
		}
		return res
	default:
		return FromString(validString(fmt.Sprint(y)))
	}
}

// ToYAML writes v as a YAML document, keeping object member order.
func ToYAML(v *Value) ([]byte, error) {
	d, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return d, nil
}

func toYAML(v *Value) any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int64
	case UintType:
		return v.Uint64
	case FloatType:
		return v.Float64
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = toYAML(e)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, 0, v.Fields.Len())
		for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
			res = append(res, yaml.MapItem{Key: pair.Key, Value: toYAML(pair.Value)})
		}
		return res
	default:
		return nil
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return validString(s)
	}
	return validString(fmt.Sprint(k))
}
