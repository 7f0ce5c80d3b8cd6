package token

import (
	"strings"
	"unicode/utf8"
)

// basicString reads a "..." string at the cursor.
func (s *Scanner) basicString() (*Token, error) {
	start := s.i
	s.i++
	b := &strings.Builder{}
	for {
		if s.EOF() {
			return nil, NewTokenizeErr(ErrUnterminated, s.PosAt(start))
		}
		c := s.d[s.i]
		switch c {
		case '"':
			s.i++
			return s.strTok(TString, start, b.String()), nil
		case '\\':
			if err := s.escape(b); err != nil {
				return nil, err
			}
			continue
		case '\n', '\r':
			return nil, NewTokenizeErr(ErrUnterminated, s.PosAt(start))
		}
		if err := s.copyRune(b); err != nil {
			return nil, err
		}
	}
}

// literalString reads a '...' string at the cursor.
func (s *Scanner) literalString() (*Token, error) {
	start := s.i
	s.i++
	b := &strings.Builder{}
	for {
		if s.EOF() {
			return nil, NewTokenizeErr(ErrUnterminated, s.PosAt(start))
		}
		switch s.d[s.i] {
		case '\'':
			s.i++
			return s.strTok(TLiteral, start, b.String()), nil
		case '\n', '\r':
			return nil, NewTokenizeErr(ErrUnterminated, s.PosAt(start))
		}
		if err := s.copyRune(b); err != nil {
			return nil, err
		}
	}
}

// mlString reads a """...""" or '''...''' string at the cursor. A newline
// right after the opening delimiter is dropped and CRLF is read as LF.
func (s *Scanner) mlString(q byte) (*Token, error) {
	start := s.i
	s.i += 3
	if _, err := s.Newline(); err != nil {
		return nil, err
	}
	b := &strings.Builder{}
	for {
		if s.EOF() {
			return nil, NewTokenizeErr(ErrUnterminated, s.PosAt(start))
		}
		c := s.d[s.i]
		switch {
		case c == q:
			k := 0
			for s.i+k < len(s.d) && s.d[s.i+k] == q {
				k++
			}
			if k < 3 {
				b.WriteString(strings.Repeat(string(q), k))
				s.i += k
				continue
			}
			if k > 5 {
				return nil, UnexpectedErr("quote", s.PosAt(s.i+5))
			}
			b.WriteString(strings.Repeat(string(q), k-3))
			s.i += k
			typ := TMString
			if q == '\'' {
				typ = TMLit
			}
			return s.strTok(typ, start, b.String()), nil
		case c == '\\' && q == '"':
			if s.lineEndingBackslash() {
				continue
			}
			if err := s.escape(b); err != nil {
				return nil, err
			}
			continue
		case c == '\n' || c == '\r':
			if _, err := s.Newline(); err != nil {
				return nil, err
			}
			b.WriteByte('\n')
			continue
		}
		if err := s.copyRune(b); err != nil {
			return nil, err
		}
	}
}

// lineEndingBackslash consumes a `\` followed by optional blanks and a
// newline, together with all whitespace and newlines after it.
func (s *Scanner) lineEndingBackslash() bool {
	j := s.i + 1
	for j < len(s.d) && (s.d[j] == ' ' || s.d[j] == '\t') {
		j++
	}
	switch {
	case j < len(s.d) && s.d[j] == '\n':
	case j+1 < len(s.d) && s.d[j] == '\r' && s.d[j+1] == '\n':
	default:
		return false
	}
skip:
	for j < len(s.d) {
		switch {
		case s.d[j] == ' ' || s.d[j] == '\t' || s.d[j] == '\n':
			j++
		case s.d[j] == '\r' && j+1 < len(s.d) && s.d[j+1] == '\n':
			j += 2
		default:
			break skip
		}
	}
	s.i = j
	return true
}

func (s *Scanner) escape(b *strings.Builder) error {
	at := s.i
	if s.i+1 >= len(s.d) {
		return NewTokenizeErr(ErrUnterminated, s.PosAt(at))
	}
	c := s.d[s.i+1]
	s.i += 2
	switch c {
	case 'b':
		b.WriteByte('\b')
	case 't':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case 'u', 'U':
		n := 4
		if c == 'U' {
			n = 8
		}
		if s.i+n > len(s.d) {
			return NewTokenizeErr(ErrBadUnicode, s.PosAt(at))
		}
		var r rune
		for _, h := range s.d[s.i : s.i+n] {
			if !isDigit(h, 16) {
				return NewTokenizeErr(ErrBadUnicode, s.PosAt(at))
			}
			r = r<<4 | rune(hexVal(h))
		}
		if !utf8.ValidRune(r) {
			return NewTokenizeErr(ErrBadUnicode, s.PosAt(at))
		}
		s.i += n
		b.WriteRune(r)
	default:
		return NewTokenizeErr(ErrBadEscape, s.PosAt(at))
	}
	return nil
}

// copyRune moves one rune of string content to b.
func (s *Scanner) copyRune(b *strings.Builder) error {
	r, sz := utf8.DecodeRune(s.d[s.i:])
	if r == utf8.RuneError && sz <= 1 {
		return NewTokenizeErr(ErrBadUTF8, s.Pos())
	}
	if IsControl(r) {
		return NewTokenizeErr(ErrUnicodeControl, s.Pos())
	}
	b.WriteRune(r)
	s.i += sz
	return nil
}

func (s *Scanner) strTok(t TokenType, start int, val string) *Token {
	return &Token{
		Type:  t,
		Pos:   s.PosAt(start),
		Bytes: s.d[start:s.i],
		Val:   val,
	}
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}
