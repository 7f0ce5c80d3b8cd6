package ir

import (
	"unicode/utf8"
)

// Value holds exactly one of the seven TOML variants. The zero Value is the
// empty String.
type Value struct {
	typ Type
	str string
	i64 int64
	f64 float64
	b   bool
	arr *Array
	tbl *Table

	owned bool
}

func FromString(v string) (*Value, error) {
	res := &Value{}
	if err := res.SetString(v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromDatetime(v string) (*Value, error) {
	res := &Value{}
	if err := res.SetDatetime(v); err != nil {
		return nil, err
	}
	return res, nil
}

// MustFromString is FromString for strings known to be valid UTF-8.
func MustFromString(v string) *Value {
	res, err := FromString(v)
	if err != nil {
		panic(err)
	}
	return res
}

func MustFromDatetime(v string) *Value {
	res, err := FromDatetime(v)
	if err != nil {
		panic(err)
	}
	return res
}

func FromInt(v int64) *Value {
	return &Value{typ: IntType, i64: v}
}

func FromFloat(f float64) *Value {
	return &Value{typ: FloatType, f64: f}
}

func FromBool(v bool) *Value {
	return &Value{typ: BoolType, b: v}
}

// FromArray wraps a. If a already belongs to another value, a copy is
// wrapped instead.
func FromArray(a *Array) *Value {
	res := &Value{}
	res.SetArray(a)
	return res
}

func FromTable(t *Table) *Value {
	res := &Value{}
	res.SetTable(t)
	return res
}

func NewArrayValue() *Value {
	return FromArray(nil)
}

func NewTableValue() *Value {
	return FromTable(nil)
}

func (v *Value) Type() Type {
	return v.typ
}

func (v *Value) IsString() bool   { return v.typ == StringType }
func (v *Value) IsInt() bool      { return v.typ == IntType }
func (v *Value) IsFloat() bool    { return v.typ == FloatType }
func (v *Value) IsDatetime() bool { return v.typ == DatetimeType }
func (v *Value) IsBool() bool     { return v.typ == BoolType }
func (v *Value) IsArray() bool    { return v.typ == ArrayType }
func (v *Value) IsTable() bool    { return v.typ == TableType }

func (v *Value) GetString() (string, error) {
	if v.typ != StringType {
		return "", mismatch(StringType, v.typ)
	}
	return v.str, nil
}

func (v *Value) GetInt() (int64, error) {
	if v.typ != IntType {
		return 0, mismatch(IntType, v.typ)
	}
	return v.i64, nil
}

func (v *Value) GetFloat() (float64, error) {
	if v.typ != FloatType {
		return 0, mismatch(FloatType, v.typ)
	}
	return v.f64, nil
}

func (v *Value) GetDatetime() (string, error) {
	if v.typ != DatetimeType {
		return "", mismatch(DatetimeType, v.typ)
	}
	return v.str, nil
}

func (v *Value) GetBool() (bool, error) {
	if v.typ != BoolType {
		return false, mismatch(BoolType, v.typ)
	}
	return v.b, nil
}

// GetArray returns the live array held by v; changes made through it are
// changes to v.
func (v *Value) GetArray() (*Array, error) {
	if v.typ != ArrayType {
		return nil, mismatch(ArrayType, v.typ)
	}
	return v.arr, nil
}

// GetTable returns the live table held by v.
func (v *Value) GetTable() (*Table, error) {
	if v.typ != TableType {
		return nil, mismatch(TableType, v.typ)
	}
	return v.tbl, nil
}

// SetString replaces v with a String. Invalid UTF-8 is rejected with an
// error wrapping ErrEncoding and v is left as it was.
func (v *Value) SetString(s string) error {
	if !utf8.ValidString(s) {
		return encodingErr("string")
	}
	v.reset(StringType)
	v.str = s
	return nil
}

// SetDatetime replaces v with a Datetime spelled s. Only the encoding is
// checked; the text is kept as given.
func (v *Value) SetDatetime(s string) error {
	if !utf8.ValidString(s) {
		return encodingErr("datetime")
	}
	v.reset(DatetimeType)
	v.str = s
	return nil
}

func (v *Value) SetInt(i int64) {
	v.reset(IntType)
	v.i64 = i
}

func (v *Value) SetFloat(f float64) {
	v.reset(FloatType)
	v.f64 = f
}

func (v *Value) SetBool(b bool) {
	v.reset(BoolType)
	v.b = b
}

// SetArray replaces v with a. A nil a installs an empty array. If v lies
// within a, a copy of a is installed.
func (v *Value) SetArray(a *Array) {
	switch {
	case a == nil:
		a = NewArray()
	case a.owned || a.holds(v):
		a = a.Clone()
	}
	v.reset(ArrayType)
	a.owned = true
	v.arr = a
}

// SetTable replaces v with t. A nil t installs an empty table. If v lies
// within t, a copy of t is installed.
func (v *Value) SetTable(t *Table) {
	switch {
	case t == nil:
		t = NewTable()
	case t.owned || t.holds(v):
		t = t.Clone()
	}
	v.reset(TableType)
	t.owned = true
	v.tbl = t
}

func (v *Value) reset(t Type) {
	if v.arr != nil {
		v.arr.owned = false
	}
	if v.tbl != nil {
		v.tbl.owned = false
	}
	owned := v.owned
	*v = Value{typ: t, owned: owned}
}

// Clone returns a deep copy of v sharing nothing with it.
func (v *Value) Clone() *Value {
	res := &Value{typ: v.typ, str: v.str, i64: v.i64, f64: v.f64, b: v.b}
	if v.arr != nil {
		res.arr = v.arr.Clone()
		res.arr.owned = true
	}
	if v.tbl != nil {
		res.tbl = v.tbl.Clone()
		res.tbl.owned = true
	}
	return res
}

// CloneTo replaces dst with a deep copy of v and returns dst. v may be dst
// itself or lie anywhere within it.
func (v *Value) CloneTo(dst *Value) *Value {
	if dst == v {
		return dst
	}
	c := v.Clone()
	dst.reset(c.typ)
	c.owned = dst.owned
	*dst = *c
	return dst
}

// adopt returns the value container c may store: v itself if it is free
// and does not hold c, otherwise a copy.
func adopt(v *Value, c any) *Value {
	if v == nil {
		panic("ir: nil value")
	}
	if v.owned || v.holds(c) {
		v = v.Clone()
	}
	v.owned = true
	return v
}

// holds reports whether c, a *Table, *Array or *Value, is v or lies below
// it.
func (v *Value) holds(c any) bool {
	if v == c {
		return true
	}
	switch v.typ {
	case ArrayType:
		if v.arr == c {
			return true
		}
		return v.arr.holds(c)
	case TableType:
		if v.tbl == c {
			return true
		}
		return v.tbl.holds(c)
	}
	return false
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.typ {
		case ArrayType:
			for _, vv := range v.arr.vals {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		case TableType:
			for _, vv := range v.tbl.All() {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
