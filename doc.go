// Package ratlp solves linear programs by the tableau simplex method
// over exact rational arithmetic — pivoting never accumulates
// floating-point rounding error.
//
// 🚀 What is ratlp?
//
//	Two cooperating cores plus their collaborators:
//		• frac    — exact rational values: construction, normalization,
//		  arithmetic, parsing, formatting
//		• simplex — the tableau engine: builders, pivot selection,
//		  Gauss-Jordan elimination, optimality test, decision extraction,
//		  snapshot serialization and the Solve driver
//		• logger  — shared zerolog-based logging for solver progress
//
// ✨ Why choose ratlp?
//
//   - Exact by construction – every cell stays a normalized fraction;
//     ordering decisions use cross-multiplication, never float64
//   - Deterministic – fixed scan orders and documented tie-breaks make
//     every solve reproducible, cell for cell
//   - Observable – plug a Sink to watch the tableau after every pivot,
//     or serialize snapshots as CBOR
//
// Quick example:
//
//	t, _ := simplex.Parse(`
//	    1   1  1  0  12
//	    2   1  0  1  16
//	  -40 -30  0  0   0`)
//	d, _ := simplex.Solve(t, nil)
//	fmt.Println(d["x1"], d["x2"], d["P"]) // 4 8 400
//
// Out of scope: cycling detection, two-phase/Big-M initialization,
// integer programming, and any rendering front-end.
package ratlp
