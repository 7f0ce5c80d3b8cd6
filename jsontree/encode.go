package jsontree

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/segmentio/encoding/json"
)

type EncodeOption func(*encState)

// EncodePretty indents nested values by indent, one member or element
// per line.
func EncodePretty(indent string) EncodeOption {
	return func(es *encState) { es.indent = indent }
}

type encState struct {
	indent  string
	scratch bytes.Buffer
	enc     *json.Encoder
}

// Encode writes v as JSON text. Floats that are not finite are written as
// null and integral floats keep a ".0" so they read back as floats.
func Encode(v *Value, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	es.enc = json.NewEncoder(&es.scratch)
	es.enc.SetEscapeHTML(false)
	d, err := es.appendValue(nil, v)
	if err != nil {
		return err
	}
	if es.indent != "" {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", es.indent); err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}
		d = buf.Bytes()
	}
	_, err = w.Write(d)
	return err
}

func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (es *encState) appendValue(d []byte, v *Value) ([]byte, error) {
	switch v.Type {
	case NullType:
		return append(d, "null"...), nil
	case BoolType:
		return strconv.AppendBool(d, v.Bool), nil
	case IntType:
		return strconv.AppendInt(d, v.Int64, 10), nil
	case UintType:
		return strconv.AppendUint(d, v.Uint64, 10), nil
	case FloatType:
		return es.appendFloat(d, v.Float64)
	case StringType:
		return es.appendString(d, v.String)
	case ArrayType:
		d = append(d, '[')
		for i, e := range v.Values {
			if i > 0 {
				d = append(d, ',')
			}
			var err error
			if d, err = es.appendValue(d, e); err != nil {
				return nil, err
			}
		}
		return append(d, ']'), nil
	case ObjectType:
		d = append(d, '{')
		for pair := v.Fields.Oldest(); pair != nil; pair = pair.Next() {
			if d[len(d)-1] != '{' {
				d = append(d, ',')
			}
			var err error
			if d, err = es.appendString(d, pair.Key); err != nil {
				return nil, err
			}
			d = append(d, ':')
			if d, err = es.appendValue(d, pair.Value); err != nil {
				return nil, err
			}
		}
		return append(d, '}'), nil
	}
	return nil, fmt.Errorf("%w: cannot encode %s", ErrJSON, v.Type)
}

func (es *encState) appendFloat(d []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(d, "null"...), nil
	}
	x, err := es.marshal(f)
	if err != nil {
		return nil, err
	}
	d = append(d, x...)
	if !bytes.ContainsAny(x, ".eE") {
		d = append(d, ".0"...)
	}
	return d, nil
}

func (es *encState) appendString(d []byte, s string) ([]byte, error) {
	x, err := es.marshal(s)
	if err != nil {
		return nil, err
	}
	return append(d, x...), nil
}

func (es *encState) marshal(x any) ([]byte, error) {
	es.scratch.Reset()
	if err := es.enc.Encode(x); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return bytes.TrimSuffix(es.scratch.Bytes(), []byte("\n")), nil
}
