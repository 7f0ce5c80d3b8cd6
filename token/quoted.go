package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IsBareKeyChar reports whether c may appear in an unquoted key.
func IsBareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', asciiDigit(c):
		return true
	case c == '_', c == '-':
		return true
	}
	return false
}

func IsBareKey(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !IsBareKeyChar(v[i]) {
			return false
		}
	}
	return true
}

// QuoteKey returns v as written on the left of `=` or in a header.
func QuoteKey(v string) string {
	if IsBareKey(v) {
		return v
	}
	return Quote(v)
}

// IsControl reports whether r is a control character TOML does not allow
// raw in strings and comments. Tab is allowed.
func IsControl(r rune) bool {
	return (r < 0x20 && r != '\t') || r == 0x7f
}

// Quote returns v as a TOML basic string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if IsControl(r) {
				d = fmt.Appendf(d, "\\u%04X", r)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteLiteral returns v as a TOML literal string and true, or "" and
// false when v cannot be written without escapes.
func QuoteLiteral(v string) (string, bool) {
	if strings.ContainsRune(v, '\'') {
		return "", false
	}
	for _, r := range v {
		if IsControl(r) {
			return "", false
		}
	}
	return "'" + v + "'", true
}

// Unquote decodes a single line basic or literal string, the forms keys
// take in headers and paths.
func Unquote(v string) (string, error) {
	s := NewScanner([]byte(v))
	var (
		tok *Token
		err error
	)
	switch s.Peek() {
	case '"':
		tok, err = s.basicString()
	case '\'':
		tok, err = s.literalString()
	default:
		return "", fmt.Errorf("%w: not a quoted string", ErrUnterminated)
	}
	if err != nil {
		return "", err
	}
	if !s.EOF() {
		return "", UnexpectedErr("trailing text", s.Pos())
	}
	return tok.Val, nil
}
