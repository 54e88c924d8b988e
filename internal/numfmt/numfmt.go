// Package numfmt converts parameter values to and from their locale-independent
// text form. It is shared by every codec so that numbers render identically in
// all encodings.
package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Style selects the floating-point text representation.
type Style int

const (
	// Canonical renders whole values as "N." and everything else in
	// scientific form with sixteen fractional mantissa digits.
	Canonical Style = iota
	// Compact renders the shortest text that round-trips at the field's bit width.
	Compact
)

const (
	nanText    = ".Nan"
	infText    = ".Inf"
	negInfText = "-.Inf"
)

// SyntaxError reports text that is not a number of the requested kind.
type SyntaxError struct {
	Text string
}

func (e *SyntaxError) Error() string { return "numfmt: invalid number " + strconv.Quote(e.Text) }

// RangeError reports a number that does not fit the requested bit width.
type RangeError struct {
	Text string
	Bits int
}

func (e *RangeError) Error() string {
	return "numfmt: " + strconv.Quote(e.Text) + " out of range for " + strconv.Itoa(e.Bits) + "-bit value"
}

// FormatInt renders v as plain decimal digits.
func FormatInt(v int64) string { return strconv.FormatInt(v, 10) }

// FormatBool renders b as the integer 1 or 0.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatFloat renders v using the given style. bits is the declared width of
// the owning field (32 or 64) and only affects the Compact style.
// explicitZero renders whole numbers as "N.0" instead of "N." for grammars
// where a bare trailing point is not a valid number.
func FormatFloat(v float64, bits int, style Style, explicitZero bool) string {
	switch {
	case math.IsNaN(v):
		return nanText
	case math.IsInf(v, 1):
		return infText
	case math.IsInf(v, -1):
		return negInfText
	}
	if style == Compact {
		return compact(v, bits, explicitZero)
	}
	if r := math.RoundToEven(v); r == v && r >= math.MinInt32 && r <= math.MaxInt32 {
		if r == 0 && math.Signbit(r) {
			return wholeSuffix("-0", explicitZero)
		}
		return wholeSuffix(strconv.FormatInt(int64(r), 10), explicitZero)
	}
	return strconv.FormatFloat(v, 'e', 16, 64)
}

func compact(v float64, bits int, explicitZero bool) string {
	if bits != 32 {
		bits = 64
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return wholeSuffix(s, explicitZero)
}

func wholeSuffix(s string, explicitZero bool) string {
	if explicitZero {
		return s + ".0"
	}
	return s + "."
}

// Normalize rounds v to the precision of a field of the given bit width.
func Normalize(v float64, bits int) float64 {
	if bits == 32 && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return float64(float32(v))
	}
	return v
}

// ParseInt parses decimal integer text that must fit in bits.
func ParseInt(s string, bits int) (int64, error) {
	t := strings.TrimSpace(s)
	if !isInteger(t) {
		return 0, &SyntaxError{Text: s}
	}
	v, err := strconv.ParseInt(t, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Text: s, Bits: bits}
		}
		return 0, &SyntaxError{Text: s}
	}
	return v, nil
}

// ParseBool parses integer text; any non-zero value is true.
func ParseBool(s string) (bool, error) {
	v, err := ParseInt(s, 64)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ParseFloat parses decimal floating-point text in any of the accepted forms
// ("1.", ".26", "3.0e-3", "2.5000000000000000e-01", ".Nan", ".Inf", "-.Inf").
// For bits == 32 the result is rounded to single precision.
func ParseFloat(s string, bits int) (float64, error) {
	t := strings.TrimSpace(s)
	switch t {
	case nanText, ".nan", ".NaN", ".NAN":
		return math.NaN(), nil
	case infText, "+.Inf", ".inf", "+.inf", ".INF":
		return math.Inf(1), nil
	case negInfText, "-.inf", "-.INF":
		return math.Inf(-1), nil
	}
	if !isDecimal(t) {
		return 0, &SyntaxError{Text: s}
	}
	if bits != 32 {
		bits = 64
	}
	v, err := strconv.ParseFloat(t, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Text: s, Bits: bits}
		}
		return 0, &SyntaxError{Text: s}
	}
	return v, nil
}

func isInteger(s string) bool {
	i := skipSign(s, 0)
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimal accepts [sign] digits [. digits] [e [sign] digits] with at least
// one mantissa digit.
func isDecimal(s string) bool {
	i := skipSign(s, 0)
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i = skipSign(s, i+1)
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func skipSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
