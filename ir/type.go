package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	IntType
	FloatType
	DatetimeType
	BoolType
	ArrayType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:   "String",
		IntType:      "Integer",
		FloatType:    "Float",
		DatetimeType: "Datetime",
		BoolType:     "Bool",
		ArrayType:    "Array",
		TableType:    "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":   StringType,
		"Integer":  IntType,
		"Float":    FloatType,
		"Datetime": DatetimeType,
		"Bool":     BoolType,
		"Array":    ArrayType,
		"Table":    TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntType,
		FloatType,
		DatetimeType,
		BoolType,
		ArrayType,
		TableType,
	}
}
