package frac

import (
	"fmt"
	"strconv"
	"strings"
)

// decimalBase scales the fractional digits of a decimal literal.
const decimalBase = 10

// Parse converts a textual numeric literal into a Fraction.
//
// Three literal forms are recognized:
//   - signed integer        "-?\d+"          → n/1
//   - signed integer ratio  "-?\d+/-?\d+"    → normalized at construction
//   - signed decimal        "-?\d+\.\d+"     → digits-without-point over
//     10^(number of fractional digits)
//
// Any other input fails with ErrBadLiteral (wrapped with the offending
// text). A ratio with a zero denominator fails with ErrDivisionByZero.
func Parse(s string) (Fraction, error) {
	// Ratio form: split on the first '/'; both halves must be signed ints.
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, ok := parseSignedInt(s[:i])
		if !ok {
			return Fraction{}, fmt.Errorf("parse %q: %w", s, ErrBadLiteral)
		}
		den, ok := parseSignedInt(s[i+1:])
		if !ok {
			return Fraction{}, fmt.Errorf("parse %q: %w", s, ErrBadLiteral)
		}

		return New(num, den)
	}

	// Decimal form: signed digits, exactly one '.', unsigned digits.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart := s[:i], s[i+1:]
		if !isDigits(strings.TrimPrefix(intPart, "-")) || !isDigits(fracPart) {
			return Fraction{}, fmt.Errorf("parse %q: %w", s, ErrBadLiteral)
		}
		// Concatenating the halves drops the point: "-2.50" → -250/100.
		num, ok := parseSignedInt(intPart + fracPart)
		if !ok {
			return Fraction{}, fmt.Errorf("parse %q: %w", s, ErrBadLiteral)
		}
		den := int64(1)
		for range fracPart {
			den *= decimalBase
		}

		return New(num, den)
	}

	// Integer form.
	num, ok := parseSignedInt(s)
	if !ok {
		return Fraction{}, fmt.Errorf("parse %q: %w", s, ErrBadLiteral)
	}

	return New(num, 1)
}

// MarshalText implements encoding.TextMarshaler via String.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// parseSignedInt accepts exactly "-?\d+" and returns its int64 value.
// A leading '+', stray characters or an empty string all reject, keeping
// Parse strictly aligned with the documented literal grammar.
func parseSignedInt(s string) (int64, bool) {
	digits := strings.TrimPrefix(s, "-")
	if !isDigits(digits) {
		return 0, false
	}
	v, err := strconv.ParseInt(s, decimalBase, 64)

	return v, err == nil
}

// isDigits reports whether s is one or more ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
