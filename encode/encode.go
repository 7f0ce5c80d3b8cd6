package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/token"
)

type EncState struct {
	indent    int
	literal   bool
	multiline bool

	// inline counts the open inline tables around the value being written.
	inline int

	Color func(ir.Type, ColorAttr, string) string
}

type entry struct {
	key string
	val *ir.Value
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v, which must be a Table, as a TOML document. Nothing is
// written when v is not a Table.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	t, err := v.GetTable()
	if err != nil {
		return fmt.Errorf("%w: root is a %s", ErrNotTable, v.Type())
	}
	return EncodeTable(t, w, opts...)
}

func EncodeTable(t *ir.Table, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	es.section(buf, nil, t, false)
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeValue writes v in the form it takes on the right of `=`.
func EncodeValue(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	es.value(buf, v, "")
	_, err := w.Write(buf.Bytes())
	return err
}

// headerable reports whether v may be written under a header of its own.
func headerable(v *ir.Value) bool {
	switch v.Type() {
	case ir.TableType:
		return true
	case ir.ArrayType:
		a, _ := v.GetArray()
		return a.AllTables()
	}
	return false
}

// section writes the entries of t. Everything up to the last entry that
// cannot take a header is written as `key = value`, so the key order
// survives a round trip; the remaining tables and arrays of tables follow
// as [path] and [[path]] sections.
func (es *EncState) section(buf *bytes.Buffer, path []string, t *ir.Table, aot bool) {
	var entries []entry
	split := 0
	for k, v := range t.All() {
		entries = append(entries, entry{key: k, val: v})
		if !headerable(v) {
			split = len(entries)
		}
	}
	own, rest := entries[:split], entries[split:]
	pre := es.prefix(len(path))
	if len(path) > 0 && (aot || len(own) > 0 || len(rest) == 0) {
		es.header(buf, path, aot)
	}
	for _, e := range own {
		buf.WriteString(pre)
		es.key(buf, e.key)
		buf.WriteString(es.color(ir.TableType, SepColor, " = "))
		es.value(buf, e.val, pre)
		buf.WriteByte('\n')
	}
	for _, e := range rest {
		sub := append(path[:len(path):len(path)], e.key)
		if e.val.IsTable() {
			tt, _ := e.val.GetTable()
			es.section(buf, sub, tt, false)
			continue
		}
		a, _ := e.val.GetArray()
		for elt := range a.Values() {
			tt, _ := elt.GetTable()
			es.section(buf, sub, tt, true)
		}
	}
}

func (es *EncState) header(buf *bytes.Buffer, path []string, aot bool) {
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	lb, rb, typ := "[", "]", ir.TableType
	if aot {
		lb, rb, typ = "[[", "]]", ir.ArrayType
	}
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = token.QuoteKey(k)
	}
	buf.WriteString(es.prefix(len(path)))
	buf.WriteString(es.color(typ, HeaderColor, lb+strings.Join(parts, ".")+rb))
	buf.WriteByte('\n')
}

func (es *EncState) prefix(depth int) string {
	if es.indent == 0 || depth < 2 {
		return ""
	}
	return strings.Repeat(" ", es.indent*(depth-1))
}

func (es *EncState) key(buf *bytes.Buffer, k string) {
	buf.WriteString(es.color(ir.TableType, FieldColor, token.QuoteKey(k)))
}

// value writes v inline. pre is the indentation of the line v starts on.
func (es *EncState) value(buf *bytes.Buffer, v *ir.Value, pre string) {
	switch v.Type() {
	case ir.StringType:
		s, _ := v.GetString()
		es.str(buf, s)
	case ir.IntType:
		i, _ := v.GetInt()
		buf.WriteString(es.color(ir.IntType, ValueColor, strconv.FormatInt(i, 10)))
	case ir.FloatType:
		f, _ := v.GetFloat()
		buf.WriteString(es.color(ir.FloatType, ValueColor, token.FormatFloat(f)))
	case ir.DatetimeType:
		d, _ := v.GetDatetime()
		buf.WriteString(es.color(ir.DatetimeType, ValueColor, d))
	case ir.BoolType:
		b, _ := v.GetBool()
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(b)))
	case ir.ArrayType:
		a, _ := v.GetArray()
		es.array(buf, a, pre)
	case ir.TableType:
		t, _ := v.GetTable()
		es.inlineTable(buf, t, pre)
	}
}

func (es *EncState) str(buf *bytes.Buffer, s string) {
	if es.literal {
		if q, ok := token.QuoteLiteral(s); ok {
			buf.WriteString(es.color(ir.StringType, LiteralColor, q))
			return
		}
	}
	buf.WriteString(es.color(ir.StringType, ValueColor, token.Quote(s)))
}

func (es *EncState) array(buf *bytes.Buffer, a *ir.Array, pre string) {
	lb := es.color(ir.ArrayType, SepColor, "[")
	rb := es.color(ir.ArrayType, SepColor, "]")
	comma := es.color(ir.ArrayType, SepColor, ",")
	if a.Len() == 0 {
		buf.WriteString(lb + rb)
		return
	}
	if es.multiline && es.inline == 0 {
		in := pre + "  "
		buf.WriteString(lb + "\n")
		for v := range a.Values() {
			buf.WriteString(in)
			es.value(buf, v, in)
			buf.WriteString(comma + "\n")
		}
		buf.WriteString(pre + rb)
		return
	}
	buf.WriteString(lb)
	for i, v := range a.All() {
		if i > 0 {
			buf.WriteString(comma + " ")
		}
		es.value(buf, v, pre)
	}
	buf.WriteString(rb)
}

func (es *EncState) inlineTable(buf *bytes.Buffer, t *ir.Table, pre string) {
	lb := es.color(ir.TableType, SepColor, "{")
	rb := es.color(ir.TableType, SepColor, "}")
	if t.Len() == 0 {
		buf.WriteString(lb + rb)
		return
	}
	es.inline++
	defer func() { es.inline-- }()
	buf.WriteString(lb + " ")
	i := 0
	for k, v := range t.All() {
		if i > 0 {
			buf.WriteString(es.color(ir.TableType, SepColor, ",") + " ")
		}
		i++
		es.key(buf, k)
		buf.WriteString(es.color(ir.TableType, SepColor, " = "))
		es.value(buf, v, pre)
	}
	buf.WriteString(" " + rb)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
