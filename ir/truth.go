package ir

func Truth(v *Value) bool {
	switch v.typ {
	case TableType:
		return v.tbl.Len() != 0
	case ArrayType:
		return v.arr.Len() != 0
	case StringType, DatetimeType:
		return v.str != ""
	case IntType:
		return v.i64 != 0
	case FloatType:
		return v.f64 != 0.0
	case BoolType:
		return v.b
	default:
		panic("type")
	}
}
