package frac

import "strconv"

// Fraction is an exact rational number: a signed numerator over a
// strictly positive denominator, held in lowest terms.
//
// Invariants (enforced at construction, never re-checked later):
//   - den > 0 for every constructed value; the sign lives in num
//   - gcd(|num|, den) == 1; the rational 0 is stored as (0, 1)
//
// Fraction is a value type: methods never mutate the receiver or their
// arguments. The zero value Fraction{} is the rational 0.
type Fraction struct {
	num int64 // signed numerator
	den int64 // positive denominator; 0 only inside the zero value
}

// New constructs the fraction num/den, normalized to lowest terms with a
// positive denominator (both signs flip when den < 0).
// Returns ErrDivisionByZero when den == 0.
// Complexity: O(log min(|num|, den)) for the gcd.
func New(num, den int64) (Fraction, error) {
	// Validate the single invariant that can fail.
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return reduce(num, den), nil
}

// FromInt returns the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// reduce normalizes num/den (den != 0) into canonical form:
// positive denominator, lowest terms, zero stored as (0, 1).
func reduce(num, den int64) Fraction {
	// Carry the sign entirely in the numerator.
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Fraction{num: 0, den: 1}
	}
	g := GCF(num, den)

	return Fraction{num: num / g, den: den / g}
}

// parts reads the receiver as a (numerator, denominator) pair, mapping
// the zero value Fraction{} onto the canonical (0, 1).
func (f Fraction) parts() (int64, int64) {
	if f.den == 0 {
		return 0, 1
	}

	return f.num, f.den
}

// Num returns the signed numerator in lowest terms.
func (f Fraction) Num() int64 {
	n, _ := f.parts()

	return n
}

// Den returns the positive denominator in lowest terms.
func (f Fraction) Den() int64 {
	_, d := f.parts()

	return d
}

// GCF returns the positive greatest common factor of a and b using the
// Euclidean algorithm, after swapping so that a ≥ b. Signs are ignored.
// By convention GCF(a, 0) = |a| and GCF(0, 0) = 0.
func GCF(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a < b {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the positive least common multiple a·b/GCF(a, b),
// or 0 when either argument is 0.
// Dividing before multiplying keeps intermediate values small.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCF(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// addSub computes f + sign*o for sign ∈ {+1, -1} over the least common
// multiple of the two denominators, then normalizes the result.
// Shared by Add and Sub to keep the scaling logic in one place.
func (f Fraction) addSub(o Fraction, sign int64) Fraction {
	fn, fd := f.parts()
	on, od := o.parts()

	// Scale both numerators onto the common denominator.
	l := LCM(fd, od)

	return reduce(fn*(l/fd)+sign*on*(l/od), l)
}

// Add returns f + o as a new normalized Fraction.
func (f Fraction) Add(o Fraction) Fraction { return f.addSub(o, +1) }

// Sub returns f - o as a new normalized Fraction.
func (f Fraction) Sub(o Fraction) Fraction { return f.addSub(o, -1) }

// Mul returns f × o as a new normalized Fraction.
func (f Fraction) Mul(o Fraction) Fraction {
	fn, fd := f.parts()
	on, od := o.parts()

	return reduce(fn*on, fd*od)
}

// Div returns f ÷ o, computed as multiplication by the reciprocal of o.
// Returns ErrDivisionByZero when o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	on, od := o.parts()
	if on == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	fn, fd := f.parts()

	return reduce(fn*od, fd*on), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	n, d := f.parts()

	return Fraction{num: -n, den: d}
}

// Inv returns the reciprocal 1/f, or ErrDivisionByZero when f is zero.
func (f Fraction) Inv() (Fraction, error) {
	n, d := f.parts()
	if n == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return reduce(d, n), nil
}

// Cmp orders f against o exactly, by cross-multiplication: with both
// denominators positive, f < o iff f.num·o.den < o.num·f.den.
// Returns -1, 0 or +1. No floating-point conversion is involved.
func (f Fraction) Cmp(o Fraction) int {
	fn, fd := f.parts()
	on, od := o.parts()
	lhs, rhs := fn*od, on*fd
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1 according to the sign of f.
// The denominator is always positive, so the numerator decides.
func (f Fraction) Sign() int {
	n, _ := f.parts()
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and o denote the same rational value.
func (f Fraction) Equal(o Fraction) bool { return f.Cmp(o) == 0 }

// IsZero reports whether f is the rational 0.
func (f Fraction) IsZero() bool { return f.Sign() == 0 }

// Float64 returns the floating approximation num/den. Use it for display
// and interop only: ordering decisions belong to Cmp, which is exact.
func (f Fraction) Float64() float64 {
	n, d := f.parts()

	return float64(n) / float64(d)
}

// String renders f in its shortest literal form: "num" when the
// denominator is 1, "num/den" otherwise. The output is Parse-compatible.
func (f Fraction) String() string {
	n, d := f.parts()
	if d == 1 {
		return strconv.FormatInt(n, 10)
	}

	return strconv.FormatInt(n, 10) + "/" + strconv.FormatInt(d, 10)
}
