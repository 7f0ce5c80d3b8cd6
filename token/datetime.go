package token

import (
	"fmt"
)

// IsDatetimeStart reports whether d begins like a date (`dddd-`) or a
// local time (`dd:`).
func IsDatetimeStart(d []byte) bool {
	if len(d) >= 5 && asciiDigits(d[:4]) == 4 && d[4] == '-' {
		return true
	}
	return len(d) >= 3 && asciiDigits(d[:2]) == 2 && d[2] == ':'
}

// ScanDatetime returns the length of the datetime at the start of d,
// checking field ranges. The four accepted shapes are offset datetime,
// local datetime, local date and local time.
func ScanDatetime(d []byte) (int, error) {
	if len(d) >= 3 && asciiDigits(d[:2]) == 2 && d[2] == ':' {
		return scanTime(d)
	}
	n, err := scanDate(d)
	if err != nil {
		return n, err
	}
	if n == len(d) {
		return n, nil
	}
	switch d[n] {
	case 'T', 't':
	case ' ':
		// a space separates date and time only when a time follows
		rest := d[n+1:]
		if !(len(rest) >= 3 && asciiDigits(rest[:2]) == 2 && rest[2] == ':') {
			return n, nil
		}
	default:
		return n, nil
	}
	n++
	m, err := scanTime(d[n:])
	if err != nil {
		return n + m, err
	}
	n += m
	m, err = scanOffset(d[n:])
	return n + m, err
}

func scanDate(d []byte) (int, error) {
	if len(d) < 10 || asciiDigits(d[:4]) != 4 || d[4] != '-' ||
		asciiDigits(d[5:7]) != 2 || d[7] != '-' || asciiDigits(d[8:10]) != 2 {
		return 0, fmt.Errorf("%w: malformed date", ErrDatetime)
	}
	year := atoi(d[:4])
	month := atoi(d[5:7])
	day := atoi(d[8:10])
	if month < 1 || month > 12 {
		return 5, fmt.Errorf("%w: month %d", ErrDatetime, month)
	}
	if day < 1 || day > daysIn(year, month) {
		return 8, fmt.Errorf("%w: day %d", ErrDatetime, day)
	}
	return 10, nil
}

func scanTime(d []byte) (int, error) {
	if len(d) < 8 || asciiDigits(d[:2]) != 2 || d[2] != ':' ||
		asciiDigits(d[3:5]) != 2 || d[5] != ':' || asciiDigits(d[6:8]) != 2 {
		return 0, fmt.Errorf("%w: malformed time", ErrDatetime)
	}
	if h := atoi(d[:2]); h > 23 {
		return 0, fmt.Errorf("%w: hour %d", ErrDatetime, h)
	}
	if m := atoi(d[3:5]); m > 59 {
		return 3, fmt.Errorf("%w: minute %d", ErrDatetime, m)
	}
	if s := atoi(d[6:8]); s > 60 {
		return 6, fmt.Errorf("%w: second %d", ErrDatetime, s)
	}
	n := 8
	if n < len(d) && d[n] == '.' {
		k := asciiDigits(d[n+1:])
		if k == 0 {
			return n, fmt.Errorf("%w: empty fraction", ErrDatetime)
		}
		n += 1 + k
	}
	return n, nil
}

func scanOffset(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'Z', 'z':
		return 1, nil
	case '+', '-':
	default:
		return 0, nil
	}
	if len(d) < 6 || asciiDigits(d[1:3]) != 2 || d[3] != ':' || asciiDigits(d[4:6]) != 2 {
		return 0, fmt.Errorf("%w: malformed offset", ErrDatetime)
	}
	if h := atoi(d[1:3]); h > 23 {
		return 1, fmt.Errorf("%w: offset hour %d", ErrDatetime, h)
	}
	if m := atoi(d[4:6]); m > 59 {
		return 4, fmt.Errorf("%w: offset minute %d", ErrDatetime, m)
	}
	return 6, nil
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

func atoi(d []byte) int {
	n := 0
	for _, c := range d {
		n = n*10 + int(c-'0')
	}
	return n
}
