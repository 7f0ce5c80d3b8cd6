package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/tomldoc/debug"
	"github.com/signadot/tomldoc/ir"
	"github.com/signadot/tomldoc/token"
)

// tableState records how a table came into being, which decides what may
// later add to it.
type tableState uint8

const (
	tImplicit tableState = 1 << iota // intermediate of a [header] path
	tHeader                          // named by [header] or [[header]]
	tDotted                          // created by a dotted key
	tInline                          // inside a closed inline table
)

type parser struct {
	s     *token.Scanner
	opts  *parseOpts
	root  *ir.Table
	cur   *ir.Table
	state map[*ir.Table]tableState
	aot   map[*ir.Array]bool
}

func newParser(d []byte, opts []ParseOption) *parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return &parser{
		s:     token.NewScanner(d),
		opts:  pOpts,
		state: map[*ir.Table]tableState{},
		aot:   map[*ir.Array]bool{},
	}
}

// Parse parses a TOML document. The result is always a Table value. On
// error no value is returned and the error is a *ParseError.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	p := newParser(d, opts)
	res, err := p.document()
	if err != nil {
		return nil, asParseError(err, p.opts.filename)
	}
	if debug.Parse() {
		debug.Logf("parsed %d top level keys\n%v\n", p.root.Len(), res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseValue parses the text of a single value, as found on the right of
// `=`.
func ParseValue(d []byte, opts ...ParseOption) (*ir.Value, error) {
	p := newParser(d, opts)
	res, err := p.single()
	if err != nil {
		return nil, asParseError(err, p.opts.filename)
	}
	return res, nil
}

func (p *parser) single() (*ir.Value, error) {
	s := p.s
	if err := s.CheckUTF8(); err != nil {
		return nil, err
	}
	s.SkipWS()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := s.SkipBlank(); err != nil {
		return nil, err
	}
	if !s.EOF() {
		return nil, p.errorf(s.Pos(), "%w after value", ErrTrailing)
	}
	return v, nil
}

func (p *parser) document() (*ir.Value, error) {
	s := p.s
	if err := s.CheckUTF8(); err != nil {
		return nil, err
	}
	s.SkipBOM()
	res := ir.NewTableValue()
	p.root, _ = res.GetTable()
	p.cur = p.root
	p.state[p.root] = tHeader
	p.track(res, s.Pos())
	for {
		if err := s.SkipBlank(); err != nil {
			return nil, err
		}
		if s.EOF() {
			return res, nil
		}
		if s.Peek() == '[' {
			if err := p.header(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.keyval(p.cur); err != nil {
			return nil, err
		}
		if err := s.EndOfLine(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) keys() ([]*token.Token, error) {
	s := p.s
	var res []*token.Token
	for {
		tok, err := s.Key()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
		s.SkipWS()
		if !s.Accept('.') {
			return res, nil
		}
		s.SkipWS()
	}
}

func (p *parser) header() error {
	s := p.s
	pos := s.Pos()
	s.Advance(1)
	isArr := s.Accept('[')
	s.SkipWS()
	keys, err := p.keys()
	if err != nil {
		return err
	}
	if err := s.Expect(']', "']'"); err != nil {
		return err
	}
	if isArr {
		if err := s.Expect(']', "']]'"); err != nil {
			return err
		}
	}
	if err := s.EndOfLine(); err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("header %s array=%t\n", keyString(keys), isArr)
	}

	t := p.root
	for _, k := range keys[:len(keys)-1] {
		v, ok := t.Get(k.Val)
		if !ok {
			nv := ir.NewTableValue()
			t.Insert(k.Val, nv)
			p.track(nv, k.Pos)
			t, _ = nv.GetTable()
			p.state[t] = tImplicit
			continue
		}
		switch v.Type() {
		case ir.TableType:
			t, _ = v.GetTable()
			if p.state[t]&tInline != 0 {
				return p.errorf(k.Pos, "%w inline table %q", ErrNotExtensible, k.Val)
			}
		case ir.ArrayType:
			a, _ := v.GetArray()
			if !p.aot[a] {
				return p.errorf(k.Pos, "%w static array %q", ErrNotExtensible, k.Val)
			}
			last, _ := a.Get(a.Len() - 1)
			t, _ = last.GetTable()
		default:
			return p.errorf(k.Pos, "%w: %q is a %s", ErrNotExtensible, k.Val, v.Type())
		}
	}

	k := keys[len(keys)-1]
	v, ok := t.Get(k.Val)
	if isArr {
		if !ok {
			v = ir.NewArrayValue()
			t.Insert(k.Val, v)
			p.track(v, k.Pos)
			a, _ := v.GetArray()
			p.aot[a] = true
		}
		a, err := v.GetArray()
		if err != nil || !p.aot[a] {
			return p.errorf(k.Pos, "%w: %q is not an array of tables", ErrRedefined, keyString(keys))
		}
		elt := ir.NewTableValue()
		a.Push(elt)
		p.track(elt, pos)
		p.cur, _ = elt.GetTable()
		p.state[p.cur] = tHeader
		return nil
	}
	if !ok {
		nv := ir.NewTableValue()
		t.Insert(k.Val, nv)
		p.track(nv, pos)
		p.cur, _ = nv.GetTable()
		p.state[p.cur] = tHeader
		return nil
	}
	tt, err := v.GetTable()
	if err != nil {
		return p.errorf(k.Pos, "%w: %q is a %s", ErrRedefined, keyString(keys), v.Type())
	}
	if p.state[tt] != tImplicit {
		return p.errorf(k.Pos, "%w: %q", ErrRedefined, keyString(keys))
	}
	p.state[tt] = tHeader
	p.cur = tt
	return nil
}

// keyval reads `key = value` into t. The end of line is left to the
// caller.
func (p *parser) keyval(t *ir.Table) error {
	s := p.s
	keys, err := p.keys()
	if err != nil {
		return err
	}
	if err := s.Expect('=', "'='"); err != nil {
		return err
	}
	s.SkipWS()
	for _, k := range keys[:len(keys)-1] {
		v, ok := t.Get(k.Val)
		if !ok {
			nv := ir.NewTableValue()
			t.Insert(k.Val, nv)
			p.track(nv, k.Pos)
			t, _ = nv.GetTable()
			p.state[t] = tDotted
			continue
		}
		tt, err := v.GetTable()
		if err != nil {
			return p.errorf(k.Pos, "%w: %q is a %s", ErrNotExtensible, k.Val, v.Type())
		}
		if st := p.state[tt]; st&tDotted == 0 || st&tInline != 0 {
			return p.errorf(k.Pos, "%w table %q with dotted keys", ErrNotExtensible, k.Val)
		}
		t = tt
	}
	k := keys[len(keys)-1]
	if _, ok := t.Get(k.Val); ok {
		return p.errorf(k.Pos, "%w %q", ErrDuplicateKey, keyString(keys))
	}
	v, err := p.value()
	if err != nil {
		return err
	}
	t.Insert(k.Val, v)
	return nil
}

func (p *parser) value() (*ir.Value, error) {
	s := p.s
	pos := s.Pos()
	var (
		v   *ir.Value
		err error
	)
	switch s.Peek() {
	case '[':
		v, err = p.array()
	case '{':
		v, err = p.inlineTable()
	default:
		v, err = p.scalar()
	}
	if err != nil {
		return nil, err
	}
	p.track(v, pos)
	return v, nil
}

func (p *parser) scalar() (*ir.Value, error) {
	tok, err := p.s.Scalar()
	if err != nil {
		return nil, err
	}
	if tok.IsString() {
		return ir.FromString(tok.Val)
	}
	switch tok.Type {
	case token.TInteger:
		i, err := token.ParseInteger(tok.Val)
		if err != nil {
			return nil, token.NewTokenizeErr(err, tok.Pos)
		}
		return ir.FromInt(i), nil
	case token.TFloat:
		f, err := token.ParseFloat(tok.Val)
		if err != nil {
			return nil, token.NewTokenizeErr(err, tok.Pos)
		}
		return ir.FromFloat(f), nil
	case token.TDatetime:
		return ir.FromDatetime(tok.Val)
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	}
	return nil, token.UnexpectedErr(tok.Type.String(), tok.Pos)
}

func (p *parser) array() (*ir.Value, error) {
	s := p.s
	s.Advance(1)
	a := ir.NewArray()
	for {
		if err := s.SkipBlank(); err != nil {
			return nil, err
		}
		if s.Accept(']') {
			break
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		a.Push(v)
		if err := s.SkipBlank(); err != nil {
			return nil, err
		}
		if s.Accept(',') {
			continue
		}
		if err := s.Expect(']', "',' or ']'"); err != nil {
			return nil, err
		}
		break
	}
	return ir.FromArray(a), nil
}

// inlineTable reads `{ k = v, ... }`. It must fit on one line and the
// table it yields can not be extended afterwards.
func (p *parser) inlineTable() (*ir.Value, error) {
	s := p.s
	s.Advance(1)
	res := ir.NewTableValue()
	t, _ := res.GetTable()
	s.SkipWS()
	if !s.Accept('}') {
		for {
			if err := p.keyval(t); err != nil {
				return nil, err
			}
			s.SkipWS()
			if s.Accept(',') {
				s.SkipWS()
				if s.Peek() == '}' {
					return nil, token.UnexpectedErr("trailing ',' in inline table", s.Pos())
				}
				continue
			}
			if err := s.Expect('}', "',' or '}'"); err != nil {
				return nil, err
			}
			break
		}
	}
	p.freeze(res)
	return res, nil
}

func (p *parser) freeze(v *ir.Value) {
	v.Visit(func(x *ir.Value, isPost bool) (bool, error) {
		if !isPost && x.IsTable() {
			t, _ := x.GetTable()
			p.state[t] |= tInline
		}
		return true, nil
	})
}

func (p *parser) track(v *ir.Value, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[v] = pos
	}
}

func (p *parser) errorf(pos *token.Pos, format string, args ...any) error {
	return &ParseError{Err: fmt.Errorf(format, args...), Pos: pos}
}

func keyString(keys []*token.Token) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = token.QuoteKey(k.Val)
	}
	return strings.Join(parts, ".")
}
