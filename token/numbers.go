package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInteger parses a TOML integer: decimal with an optional sign, or
// unsigned 0x, 0o and 0b forms. Underscores must sit between digits.
func ParseInteger(s string) (int64, error) {
	if s == "" {
		return 0, ErrNumber
	}
	body := s
	sign := ""
	switch body[0] {
	case '+', '-':
		sign = body[:1]
		body = body[1:]
	}
	base := 10
	if len(body) > 2 && body[0] == '0' {
		switch body[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			if sign != "" {
				return 0, fmt.Errorf("%w: sign on prefixed integer %q", ErrNumber, s)
			}
			body = body[2:]
		}
	}
	digits, err := stripUnderscores(body, base)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	if base == 10 && len(digits) > 1 && digits[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrNumberLeadingZero, s)
	}
	if sign == "-" {
		digits = "-" + digits
	}
	i, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrNumber, s)
	}
	return i, nil
}

// ParseFloat parses a TOML float: a decimal integer part followed by a
// fraction, an exponent or both, or one of inf and nan with an optional
// sign.
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return 0, ErrNumber
	}
	body := s
	neg := false
	switch body[0] {
	case '+', '-':
		neg = body[0] == '-'
		body = body[1:]
	}
	switch body {
	case "inf":
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case "nan":
		return math.NaN(), nil
	}
	intPart, rest := body, ""
	if i := strings.IndexAny(body, ".eE"); i >= 0 {
		intPart, rest = body[:i], body[i:]
	}
	if rest == "" {
		return 0, fmt.Errorf("%w: %q has no fraction or exponent", ErrNumber, s)
	}
	id, err := stripUnderscores(intPart, 10)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	if len(id) > 1 && id[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrNumberLeadingZero, s)
	}
	b := &strings.Builder{}
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(id)
	if rest[0] == '.' {
		frac := rest[1:]
		exp := ""
		if j := strings.IndexAny(frac, "eE"); j >= 0 {
			frac, exp = frac[:j], frac[j:]
		}
		fd, err := stripUnderscores(frac, 10)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", err, s)
		}
		b.WriteByte('.')
		b.WriteString(fd)
		rest = exp
	}
	if rest != "" {
		exp := rest[1:]
		esign := ""
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			esign, exp = exp[:1], exp[1:]
		}
		ed, err := stripUnderscores(exp, 10)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", err, s)
		}
		b.WriteByte('e')
		b.WriteString(esign)
		b.WriteString(ed)
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrNumber, s)
	}
	return f, nil
}

// FormatFloat writes f so that ParseFloat reads back the same value.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// IsFloatText reports whether a number lexeme has the shape of a float
// rather than an integer.
func IsFloatText(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(body, "0x") {
		return false
	}
	switch body {
	case "inf", "nan":
		return true
	}
	return strings.ContainsAny(body, ".eE")
}

func stripUnderscores(s string, base int) (string, error) {
	if s == "" {
		return "", ErrNumber
	}
	b := make([]byte, 0, len(s))
	prevDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if !prevDigit || i == len(s)-1 {
				return "", fmt.Errorf("%w: misplaced underscore", ErrNumber)
			}
			prevDigit = false
			continue
		}
		if !isDigit(c, base) {
			return "", fmt.Errorf("%w: bad digit %q", ErrNumber, c)
		}
		prevDigit = true
		b = append(b, c)
	}
	return string(b), nil
}

func isDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return asciiDigit(c)
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}
