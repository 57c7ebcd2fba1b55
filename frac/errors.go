// Package frac: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package frac

import "errors"

var (
	// ErrDivisionByZero is returned when a Fraction is constructed with a
	// zero denominator or divided by a zero-valued Fraction.
	ErrDivisionByZero = errors.New("frac: division by zero")

	// ErrBadLiteral is returned by Parse when the input text matches none
	// of the recognized numeric literal forms (integer, ratio, decimal).
	ErrBadLiteral = errors.New("frac: unrecognized numeric literal")
)
