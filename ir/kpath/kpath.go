package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tomldoc/token"
)

var ErrPath = errors.New("bad path")

// KPath is a path into a document. Each segment selects a table key or an
// array index, or every key or index of the container at that point:
//   - "a.b" → key b of the table at key a
//   - "a.*" → every entry of the table at key a
//   - "a[0]" → first element of the array at key a
//   - "a[*]" → every element of the array at key a
//   - `a."b.c"` → key "b.c", quoted as a TOML key
type KPath struct {
	Field    *string // table key
	FieldAll bool    // .* wildcard
	Index    *int    // array index
	IndexAll bool    // [*] wildcard
	Next     *KPath  // nil for the last segment
}

// Field returns a single segment path selecting key name.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Idx returns a single segment path selecting index i.
func Idx(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the textual form read back by Parse.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil || x.FieldAll {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// SegmentString returns the form of p's first segment alone.
func (p *KPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.FieldAll:
		return "*"
	case p.Field != nil:
		return token.QuoteKey(*p.Field)
	case p.IndexAll:
		return "[*]"
	case p.Index != nil:
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Segments returns the segments of p as single segment paths.
func (p *KPath) Segments() []*KPath {
	var res []*KPath
	for x := p; x != nil; x = x.Next {
		seg := *x
		seg.Next = nil
		res = append(res, &seg)
	}
	return res
}

// Append returns a copy of p followed by q.
func (p *KPath) Append(q *KPath) *KPath {
	segs := append(p.Segments(), q.Segments()...)
	if len(segs) == 0 {
		return nil
	}
	for i := 0; i < len(segs)-1; i++ {
		segs[i].Next = segs[i+1]
	}
	return segs[0]
}

// Parent returns p without its last segment, nil for a single segment.
func (p *KPath) Parent() *KPath {
	segs := p.Segments()
	if len(segs) < 2 {
		return nil
	}
	segs = segs[:len(segs)-1]
	for i := 0; i < len(segs)-1; i++ {
		segs[i].Next = segs[i+1]
	}
	return segs[0]
}

// Last returns the last segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// HasWildcard reports whether any segment matches more than one entry.
func (p *KPath) HasWildcard() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

// Parse parses a path. Keys follow TOML key syntax: bare keys as is,
// anything else as a basic or literal string.
//
// Examples:
//   - "servers.alpha.ip"
//   - "products[1].name"
//   - `"a.b".c[*]`
//   - "" → nil, the root
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	d := []byte(kpath)
	var head, tail *KPath
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	i := 0
	for i < len(d) {
		switch {
		case d[i] == '[':
			j := bytes.IndexByte(d[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unclosed '[' in %q", ErrPath, kpath)
			}
			seg, err := parseIndex(string(d[i+1 : i+j]))
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, kpath)
			}
			add(seg)
			i += j + 1
			continue
		case d[i] == '.':
			if head == nil {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrPath, kpath)
			}
			i++
		case head != nil:
			return nil, fmt.Errorf("%w: expected '.' or '[' at offset %d in %q", ErrPath, i, kpath)
		}
		if i < len(d) && d[i] == '*' {
			add(&KPath{FieldAll: true})
			i++
			continue
		}
		s := token.NewScanner(d[i:])
		tok, err := s.Key()
		if err != nil {
			return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, kpath)
		}
		add(Field(tok.Val))
		i += s.Offset()
	}
	return head, nil
}

// MustParse is Parse for paths known to be valid.
func MustParse(kpath string) *KPath {
	p, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return p
}

func parseIndex(is string) (*KPath, error) {
	is = strings.TrimSpace(is)
	if is == "*" {
		return &KPath{IndexAll: true}, nil
	}
	i, err := strconv.Atoi(is)
	if err != nil || i < 0 {
		return nil, fmt.Errorf("%w: bad index %q", ErrPath, is)
	}
	return Idx(i), nil
}

func (p *KPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *KPath) UnmarshalText(d []byte) error {
	q, err := Parse(string(d))
	if err != nil {
		return err
	}
	if q == nil {
		*p = KPath{}
		return nil
	}
	*p = *q
	return nil
}
