package parse

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/token"
)

// render gives a compact form of v for comparisons: ints bare, floats
// with an f: prefix, datetimes with d:, strings quoted.
func render(v *ir.Value) string {
	b := &strings.Builder{}
	renderTo(b, v)
	return b.String()
}

func renderTo(b *strings.Builder, v *ir.Value) {
	switch v.Type() {
	case ir.TableType:
		t, _ := v.GetTable()
		b.WriteByte('{')
		i := 0
		for k, e := range t.All() {
			if i > 0 {
				b.WriteByte(',')
			}
			i++
			b.WriteString(k)
			b.WriteByte(':')
			renderTo(b, e)
		}
		b.WriteByte('}')
	case ir.ArrayType:
		a, _ := v.GetArray()
		b.WriteByte('[')
		for i, e := range a.All() {
			if i > 0 {
				b.WriteByte(',')
			}
			renderTo(b, e)
		}
		b.WriteByte(']')
	case ir.StringType:
		s, _ := v.GetString()
		b.WriteString(strconv.Quote(s))
	case ir.IntType:
		i, _ := v.GetInt()
		b.WriteString(strconv.FormatInt(i, 10))
	case ir.FloatType:
		f, _ := v.GetFloat()
		b.WriteString("f:" + strconv.FormatFloat(f, 'g', -1, 64))
	case ir.DatetimeType:
		d, _ := v.GetDatetime()
		b.WriteString("d:" + d)
	case ir.BoolType:
		x, _ := v.GetBool()
		b.WriteString(strconv.FormatBool(x))
	}
}

type parseTest struct {
	in   string
	want string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``, want: `{}`},
		{in: "# only a comment\n\n", want: `{}`},
		{in: `a = 1`, want: `{a:1}`},
		{
			in:   "a = 1\nb = \"x\"\n[c]\nd = true\n",
			want: `{a:1,b:"x",c:{d:true}}`,
		},
		{in: "\ufeffa = 1\n", want: `{a:1}`},
		{in: "a = 1\r\nb = 2\r\n", want: `{a:1,b:2}`},
		{in: `"quoted key" = 'lit'`, want: `{quoted key:"lit"}`},
		{in: `a . b . c = 1`, want: `{a:{b:{c:1}}}`},
		{in: "a.b = 1\na.c = 2", want: `{a:{b:1,c:2}}`},
		{in: `"a.b" = 1`, want: `{a.b:1}`},
		{in: `1234 = 5`, want: `{1234:5}`},
		{in: `3.14 = 1`, want: `{3:{14:1}}`},
		{in: `x = [1, "two", 3.0, [true]]`, want: `{x:[1,"two",f:3,[true]]}`},
		{in: "x = [\n  1, # one\n  2,\n]", want: `{x:[1,2]}`},
		{in: `x = []`, want: `{x:[]}`},
		{in: `t = { a = 1, b.c = "d" }`, want: `{t:{a:1,b:{c:"d"}}}`},
		{in: `t = {}`, want: `{t:{}}`},
		{in: "[a.b.c]\nx = 1\n[a]\ny = 2", want: `{a:{b:{c:{x:1}},y:2}}`},
		{
			in:   "[[p]]\nn = 1\n[[p]]\nn = 2\n[p.sub]\nq = 3",
			want: `{p:[{n:1},{n:2,sub:{q:3}}]}`,
		},
		{
			in:   "[[fruits]]\nname = \"apple\"\n[[fruits.varieties]]\nname = \"red\"\n[[fruits.varieties]]\nname = \"granny\"",
			want: `{fruits:[{name:"apple",varieties:[{name:"red"},{name:"granny"}]}]}`,
		},
		{
			in:   "[fruit]\napple.color = \"red\"\napple.taste.sweet = true\n[fruit.apple.texture]\nsmooth = true",
			want: `{fruit:{apple:{color:"red",taste:{sweet:true},texture:{smooth:true}}}}`,
		},
		{in: `d = 1979-05-27T07:32:00Z`, want: `{d:d:1979-05-27T07:32:00Z}`},
		{in: `d = 1979-05-27 07:32:00`, want: `{d:d:1979-05-27 07:32:00}`},
		{in: "d = 1979-05-27 # day", want: `{d:d:1979-05-27}`},
		{in: `t = 00:32:00.999`, want: `{t:d:00:32:00.999}`},
		{in: `f = [inf, -inf, 1e3]`, want: `{f:[f:+Inf,f:-Inf,f:1000]}`},
		{in: `i = [0x10, 0o10, 0b10, -1_000]`, want: `{i:[16,8,2,-1000]}`},
		{in: "s = \"\"\"\nab\\\n   cd\"\"\"", want: `{s:"abcd"}`},
		{in: "s = '''\n  raw \\n'''", want: `{s:"  raw \\n"}`},
		{in: "a = 1 # trailing\t", want: `{a:1}`},
		{in: "[ spaced . header ]\nk=1", want: `{spaced:{header:{k:1}}}`},
		{in: `a = { b = [ 1,2 ] }`, want: `{a:{b:[1,2]}}`},
		{in: "a = [{x = 1}, {x = 2}]", want: `{a:[{x:1},{x:2}]}`},
		{in: "[a]\n[b]\n[a.c]", want: `{a:{c:{}},b:{}}`},
		{in: "\"\" = 1", want: `{:1}`},
		{in: `s = """a""""`, want: `{s:"a\""}`},
		{in: `s = """a"""""`, want: `{s:"a\"\""}`},
		{in: `s = '''a''''`, want: `{s:"a'"}`},
		{in: `s = '''a'''''`, want: `{s:"a''"}`},
	}
	for _, pt := range pts {
		v, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got := render(v); got != pt.want {
			t.Errorf("%q:\n got %s\nwant %s", pt.in, got, pt.want)
		}
	}
}

type parseErrTest struct {
	in string
	e  error
}

func TestParseErr(t *testing.T) {
	pts := []parseErrTest{
		{in: `a = `, e: ErrParse},
		{in: "a = 1\na = 2", e: ErrDuplicateKey},
		{in: "a.b = 1\na.b = 2", e: ErrDuplicateKey},
		{in: "a = 1\na.b = 2", e: ErrNotExtensible},
		{in: "[a]\n[a]", e: ErrRedefined},
		{in: "[a]\nb = 1\n[a.b]", e: ErrRedefined},
		{in: "a.b = 1\n[a]", e: ErrRedefined},
		{in: "[a.b]\n[a]\nb.c = 1", e: ErrNotExtensible},
		{in: "a = {}\n[a]", e: ErrRedefined},
		{in: "a = {b = 1}\na.c = 2", e: ErrNotExtensible},
		{in: "a = {b = {}}\n[a.b.c]", e: ErrNotExtensible},
		{in: "a = [1]\n[[a]]", e: ErrRedefined},
		{in: "a = [{}]\n[a.b]", e: ErrNotExtensible},
		{in: "[[a]]\n[a]", e: ErrRedefined},
		{in: "[a]\n[[a]]", e: ErrRedefined},
		{in: `t = {a = 1,}`, e: ErrParse},
		{in: "t = {a = 1,\nb = 2}", e: ErrParse},
		{in: `t = {a = 1, a = 2}`, e: ErrDuplicateKey},
		{in: `x = [1 2]`, e: ErrParse},
		{in: `x = [,]`, e: ErrParse},
		{in: "a = 1 b = 2", e: ErrParse},
		{in: "a = \"\xff\"", e: token.ErrBadUTF8},
		{in: "# \x01 bad", e: token.ErrUnicodeControl},
		{in: "a = 1\rb = 2", e: token.ErrNewline},
		{in: `a = "\q"`, e: token.ErrBadEscape},
		{in: `a = 012`, e: token.ErrNumberLeadingZero},
		{in: `a = 1979-02-30`, e: token.ErrDatetime},
		{in: `a = 9223372036854775808`, e: token.ErrNumber},
		{in: `= 1`, e: ErrParse},
		{in: `[a`, e: ErrParse},
		{in: `[[a]`, e: ErrParse},
		{in: `[ [a]]`, e: ErrParse},
		{in: `[a] x = 1`, e: ErrParse},
		{in: `a = """x`, e: token.ErrUnterminated},
		{in: `"""k""" = 1`, e: ErrParse},
		{in: `a = TRUE`, e: token.ErrNumber},
		{in: `s = """a""""""`, e: ErrParse},
	}
	for _, pt := range pts {
		v, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: no error, got %s", pt.in, render(v))
			continue
		}
		if v != nil {
			t.Errorf("%q: got a partial document", pt.in)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not match ErrParse", pt.in, err)
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v want %v", pt.in, err, pt.e)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: got %T", pt.in, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("a = 1\nb = 2\nb = 3\n"), ParseFilename("x.toml"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %T %v", err, err)
	}
	if pe.Line() != 3 || pe.Col() != 1 {
		t.Errorf("got %d:%d", pe.Line(), pe.Col())
	}
	if !strings.HasPrefix(err.Error(), "x.toml:3:1: ") {
		t.Errorf("message %q", err.Error())
	}
}

func TestParseEmptyValueMessage(t *testing.T) {
	_, err := Parse([]byte("a = "))
	if err == nil {
		t.Fatal("no error")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("message %q", err.Error())
	}
}

func TestParseKeyOrder(t *testing.T) {
	v, err := Parse([]byte("a = 1\nc = 2\nb = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	tbl, _ := v.GetTable()
	if got := strings.Join(tbl.Keys(), ","); got != "a,c,b" {
		t.Errorf("got %s", got)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Value]*token.Pos{}
	v, err := Parse([]byte("a = 1\n[t]\nb = \"x\"\n"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	tbl, _ := v.GetTable()
	b, _ := tbl.Get("t")
	bt, _ := b.GetTable()
	bv, _ := bt.Get("b")
	p, ok := pos[bv]
	if !ok {
		t.Fatal("no position for b")
	}
	if l, c := p.LineCol(); l != 3 || c != 5 {
		t.Errorf("b at %d:%d", l, c)
	}
	if p := pos[b]; p == nil || p.Line() != 2 {
		t.Errorf("t at %v", p)
	}
}

func TestParseValue(t *testing.T) {
	cases := map[string]string{
		`42`:                `42`,
		`"s"`:               `"s"`,
		` [1, [2]] `:        `[1,[2]]`,
		`{a = 1}`:           `{a:1}`,
		"[\n1,\n2\n]\n":     `[1,2]`,
		`2024-01-01T00:00Z`: ``,
	}
	for in, want := range cases {
		v, err := ParseValue([]byte(in))
		if want == "" {
			if err == nil {
				t.Errorf("%q: expected error", in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got := render(v); got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseValue([]byte("1 2")); !errors.Is(err, ErrTrailing) {
		t.Errorf("got %v", err)
	}
}
