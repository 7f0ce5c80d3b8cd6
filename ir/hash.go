package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, consistent with Equal within
// one process.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(v.typ))

	var b [8]byte
	switch v.typ {
	case StringType, DatetimeType:
		h.WriteString(v.str)
	case BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.i64))
		h.Write(b[:])
	case FloatType:
		f := v.f64
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			// -0 == 0
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case ArrayType:
		for _, e := range v.arr.vals {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case TableType:
		for k, e := range v.tbl.All() {
			h.WriteString(k)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
