// Package frac provides an exact rational number type for algorithms
// that must never accumulate floating-point rounding error.
//
// 🚀 What is frac?
//
//	A small value-type library around Fraction — a signed numerator over
//	a strictly positive denominator, always held in lowest terms.  Every
//	arithmetic operation produces a new, independently normalized value;
//	no operation mutates an operand.
//
// ✨ Key guarantees:
//   - normalize-then-freeze: a live Fraction is always in lowest terms
//     with denominator > 0 (the pair (0,1) represents zero)
//   - exact ordering: Cmp compares by cross-multiplication, never by
//     converting to float64
//   - literal parsing: "42", "-3/4" and "2.50" all round-trip through
//     Parse and String
//
// ⚙️ Usage:
//
//	a, err := frac.New(1, 3)      // 1/3
//	b, _ := frac.Parse("0.5")     // 1/2
//	sum := a.Add(b)               // 5/6, exact
//	fmt.Println(sum)              // "5/6"
//
// The zero value of Fraction is the rational 0 and is ready to use.
//
// Precision: arithmetic is plain int64; overflow protection is out of
// scope, as is arbitrary precision — use math/big if you need either.
package frac
