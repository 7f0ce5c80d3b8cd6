package jsontree

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/segmentio/encoding/json"
)

// Parse reads a single JSON value.
func Parse(d []byte) (*Value, error) {
	if !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid JSON text", ErrJSON)
	}
	d = bytes.TrimSpace(d)
	raw, typ, _, err := jsonparser.Get(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return fromRaw(raw, typ)
}

func fromRaw(raw []byte, typ jsonparser.ValueType) (*Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return FromBool(b), nil
	case jsonparser.Number:
		return number(raw)
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return FromString(validString(s)), nil
	case jsonparser.Array:
		res := FromSlice(nil)
		var elErr error
		_, err := jsonparser.ArrayEach(raw, func(v []byte, t jsonparser.ValueType, _ int, err error) {
			if elErr != nil {
				return
			}
			if err != nil {
				elErr = err
				return
			}
			x, err := fromRaw(v, t)
			if err != nil {
				elErr = err
				return
			}
			res.Values = append(res.Values, x)
		})
		if err == nil {
			err = elErr
		}
		if err != nil {
			return nil, wrapJSON(err)
		}
		return res, nil
	case jsonparser.Object:
		res := NewObject()
		err := jsonparser.ObjectEach(raw, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			x, err := fromRaw(v, t)
			if err != nil {
				return err
			}
			res.Set(validString(string(k)), x)
			return nil
		})
		if err != nil {
			return nil, wrapJSON(err)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrJSON, typ)
}

// number keeps integers exact where int64 or uint64 can hold them.
func number(raw []byte) (*Value, error) {
	s := string(raw)
	if !bytes.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return FromUint(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %s: %w", ErrJSON, s, err)
	}
	return FromFloat(f), nil
}

func wrapJSON(err error) error {
	if errors.Is(err, ErrJSON) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrJSON, err)
}

func validString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string(bytes.ToValidUTF8([]byte(s), []byte("\uFFFD")))
}
