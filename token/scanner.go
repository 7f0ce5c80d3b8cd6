package token

import (
	"unicode/utf8"
)

// Scanner is a cursor over a TOML document.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, doc: NewPosDoc(d)}
}

// CheckUTF8 reports the first invalid UTF-8 sequence in the document.
func (s *Scanner) CheckUTF8() error {
	d := s.d
	for i := 0; i < len(d); {
		if d[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return NewTokenizeErr(ErrBadUTF8, s.PosAt(i))
		}
		i += sz
	}
	return nil
}

// SkipBOM moves past a leading byte order mark.
func (s *Scanner) SkipBOM() {
	if s.i == 0 && len(s.d) >= 3 && s.d[0] == 0xEF && s.d[1] == 0xBB && s.d[2] == 0xBF {
		s.i = 3
	}
}

func (s *Scanner) Doc() *PosDoc     { return s.doc }
func (s *Scanner) Offset() int      { return s.i }
func (s *Scanner) Pos() *Pos        { return s.doc.Pos(s.i) }
func (s *Scanner) PosAt(i int) *Pos { return s.doc.Pos(i) }
func (s *Scanner) EOF() bool        { return s.i >= len(s.d) }

// Peek returns the byte at the cursor or 0 at the end.
func (s *Scanner) Peek() byte {
	return s.PeekAt(0)
}

func (s *Scanner) PeekAt(k int) byte {
	if s.i+k >= len(s.d) {
		return 0
	}
	return s.d[s.i+k]
}

func (s *Scanner) Advance(n int) {
	s.i = min(s.i+n, len(s.d))
}

// Accept consumes c if it is at the cursor.
func (s *Scanner) Accept(c byte) bool {
	if s.Peek() == c && !s.EOF() {
		s.i++
		return true
	}
	return false
}

func (s *Scanner) Expect(c byte, what string) error {
	if !s.Accept(c) {
		return ExpectedErr(what, s.Pos())
	}
	return nil
}

// SkipWS skips spaces and tabs.
func (s *Scanner) SkipWS() {
	for s.i < len(s.d) && (s.d[s.i] == ' ' || s.d[s.i] == '\t') {
		s.i++
	}
}

// Newline consumes LF or CRLF. A CR not followed by LF is an error.
func (s *Scanner) Newline() (bool, error) {
	switch s.Peek() {
	case '\n':
		s.i++
		return true, nil
	case '\r':
		if s.PeekAt(1) == '\n' {
			s.i += 2
			return true, nil
		}
		return false, NewTokenizeErr(ErrNewline, s.Pos())
	}
	return false, nil
}

// Comment consumes a comment up to, not including, the end of the line.
func (s *Scanner) Comment() (bool, error) {
	if s.Peek() != '#' || s.EOF() {
		return false, nil
	}
	s.i++
	for !s.EOF() {
		c := s.d[s.i]
		if c == '\n' || (c == '\r' && s.PeekAt(1) == '\n') {
			return true, nil
		}
		r, sz := utf8.DecodeRune(s.d[s.i:])
		if IsControl(r) {
			return false, NewTokenizeErr(ErrUnicodeControl, s.Pos())
		}
		s.i += sz
	}
	return true, nil
}

// EndOfLine consumes trailing blanks, an optional comment and the newline
// ending a statement. The end of the document also ends a line.
func (s *Scanner) EndOfLine() error {
	s.SkipWS()
	if _, err := s.Comment(); err != nil {
		return err
	}
	if s.EOF() {
		return nil
	}
	nl, err := s.Newline()
	if err != nil {
		return err
	}
	if !nl {
		return ExpectedErr("newline", s.Pos())
	}
	return nil
}

// SkipBlank skips whitespace, comments and newlines.
func (s *Scanner) SkipBlank() error {
	for {
		s.SkipWS()
		if _, err := s.Comment(); err != nil {
			return err
		}
		nl, err := s.Newline()
		if err != nil {
			return err
		}
		if !nl {
			return nil
		}
	}
}

// Key reads one simple key: bare, basic or literal. Dots are left to the
// caller.
func (s *Scanner) Key() (*Token, error) {
	start := s.i
	switch s.Peek() {
	case '"':
		if s.PeekAt(1) == '"' && s.PeekAt(2) == '"' {
			return nil, UnexpectedErr("multi-line string key", s.Pos())
		}
		return s.basicString()
	case '\'':
		if s.PeekAt(1) == '\'' && s.PeekAt(2) == '\'' {
			return nil, UnexpectedErr("multi-line string key", s.Pos())
		}
		return s.literalString()
	}
	for s.i < len(s.d) && IsBareKeyChar(s.d[s.i]) {
		s.i++
	}
	if s.i == start {
		if s.EOF() {
			return nil, ExpectedErr("key", s.Pos())
		}
		return nil, UnexpectedErr(describe(s.d[s.i:]), s.Pos())
	}
	return &Token{
		Type:  TBareKey,
		Pos:   s.PosAt(start),
		Bytes: s.d[start:s.i],
		Val:   string(s.d[start:s.i]),
	}, nil
}

// Scalar reads a value that is not an array or inline table.
func (s *Scanner) Scalar() (*Token, error) {
	start := s.i
	switch s.Peek() {
	case '"':
		if s.PeekAt(1) == '"' && s.PeekAt(2) == '"' {
			return s.mlString('"')
		}
		return s.basicString()
	case '\'':
		if s.PeekAt(1) == '\'' && s.PeekAt(2) == '\'' {
			return s.mlString('\'')
		}
		return s.literalString()
	}
	if s.EOF() {
		return nil, ExpectedErr("value", s.Pos())
	}
	if IsDatetimeStart(s.d[s.i:]) {
		n, err := ScanDatetime(s.d[s.i:])
		if err != nil {
			return nil, NewTokenizeErr(err, s.PosAt(s.i+n))
		}
		s.i += n
		return s.lexTok(TDatetime, start), nil
	}
	for s.i < len(s.d) && isValueChar(s.d[s.i]) {
		s.i++
	}
	if s.i == start {
		return nil, UnexpectedErr(describe(s.d[s.i:]), s.Pos())
	}
	lex := s.d[start:s.i]
	if t, ok := keyword(lex); ok {
		return s.lexTok(t, start), nil
	}
	if IsFloatText(string(lex)) {
		if _, err := ParseFloat(string(lex)); err != nil {
			return nil, NewTokenizeErr(err, s.PosAt(start))
		}
		return s.lexTok(TFloat, start), nil
	}
	if _, err := ParseInteger(string(lex)); err != nil {
		return nil, NewTokenizeErr(err, s.PosAt(start))
	}
	return s.lexTok(TInteger, start), nil
}

func (s *Scanner) lexTok(t TokenType, start int) *Token {
	return &Token{
		Type:  t,
		Pos:   s.PosAt(start),
		Bytes: s.d[start:s.i],
		Val:   string(s.d[start:s.i]),
	}
}

func describe(d []byte) string {
	if len(d) == 0 {
		return "end of input"
	}
	switch d[0] {
	case '\n', '\r':
		return "newline"
	}
	r, _ := utf8.DecodeRune(d)
	return "'" + string(r) + "'"
}
