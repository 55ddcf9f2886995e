// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts locale-formatted sheet cells into numbers and
// clean text. Yen amounts such as "1,234円", full-width digits and spaces, and
// decorations like "+5.2%" or "±0" all reduce to plain decimals.
//
// Nothing in this package returns an error: a cell that does not hold a number
// is reported as absent.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// numberRe matches the first signed decimal in a cell ("1 USD = 147.10 JPY"
// yields 1).
var numberRe = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// decorations are removed before the numeric match.
var decorations = strings.NewReplacer(
	",", "",
	"円", "",
	"¥", "",
	"%", "",
	"+", "",
	"±", "",
)

// IsPlaceholder reports whether a trimmed cell is one of the sheet's
// "no value" markers.
func IsPlaceholder(s string) bool {
	return s == "" || s == "—" || s == "-"
}

// ToNumber extracts the number held by raw. The second result is false for
// placeholders, cells without digits, and values that do not fit a finite
// float64.
func ToNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if IsPlaceholder(s) {
		return 0, false
	}
	// Narrow folds U+3000 to an ordinary space and full-width digits to ASCII.
	s = width.Narrow.String(s)
	s = strings.TrimSpace(decorations.Replace(s))

	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Number is ToNumber in pointer form; nil means absent.
func Number(raw string) *float64 {
	v, ok := ToNumber(raw)
	if !ok {
		return nil
	}
	return &v
}

// CleanText trims surrounding whitespace.
func CleanText(raw string) string {
	return strings.TrimSpace(raw)
}

// Floor2 truncates x downward at two decimals. It never rounds up:
// Floor2(2.999) is 2.99.
func Floor2(x float64) float64 {
	return math.Floor(x*100) / 100
}

// Fmt1 renders x with exactly one decimal digit, or "" when absent.
func Fmt1(x *float64) string {
	if x == nil {
		return ""
	}
	return strconv.FormatFloat(*x, 'f', 1, 64)
}

// Fmt2 renders x with exactly two decimal digits, or "" when absent.
func Fmt2(x *float64) string {
	if x == nil {
		return ""
	}
	return strconv.FormatFloat(*x, 'f', 2, 64)
}

// FloorFmt2 floors x at two decimals and renders it like Fmt2.
func FloorFmt2(x *float64) string {
	if x == nil {
		return ""
	}
	v := Floor2(*x)
	return Fmt2(&v)
}

// FormatPlain renders x as the shortest decimal that round-trips, always
// carrying a decimal point: 1000 becomes "1000.0" and 1.5 stays "1.5".
func FormatPlain(x *float64) string {
	if x == nil {
		return ""
	}
	s := strconv.FormatFloat(*x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Truncate drops the fractional part of x toward zero. Absent values and
// values outside the int64 range stay absent.
func Truncate(x *float64) *int64 {
	if x == nil {
		return nil
	}
	t := math.Trunc(*x)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return nil
	}
	n := int64(t)
	return &n
}
