// Package simplex solves linear programs by the tableau (primal) simplex
// method over exact rational arithmetic (frac.Fraction), so pivoting
// never accumulates rounding error.
//
// 🚀 What is simplex?
//
//	A tableau-pivoting engine plus its collaborators:
//	  • Tableau — labeled grid of exact rationals: decision and slack
//	    coefficient columns, the objective-value column "P", the "RHS"
//	    column, and a basic-variable label per row
//	  • Parse / Build — tableau builders (textual matrix or programmatic
//	    objective + constraints)
//	  • PivotColumn / PivotRow / Pivot — Dantzig's rule, the minimum
//	    ratio test and Gauss-Jordan elimination
//	  • IsOptimal / Decision — optimality test and solution extraction
//	  • Solve — the termination protocol: snapshot, pivot until optimal,
//	    return the decision mapping
//
// ✨ Why exact?
//
//   - every cell is a frac.Fraction in lowest terms; pivot selection
//     compares by exact cross-multiplication, never by float64
//   - deterministic scan orders: the pivot column scan runs right-to-left
//     keeping the most negative reduced cost (leftmost wins exact ties),
//     the ratio scan runs last-to-first keeping the minimum ratio
//     (largest row index wins exact ties)
//
// ⚙️ Usage:
//
//	t, err := simplex.Parse(`
//	    1   1  1  0  12
//	    2   1  0  1  16
//	  -40 -30  0  0   0`)
//	if err != nil { ... }
//	d, err := simplex.Solve(t, nil)
//	if err != nil { ... }
//	fmt.Println(d["x1"], d["x2"], d["P"]) // 4 8 400
//
// Degenerate tableaus may cycle: the engine intentionally performs no
// cycle detection (set Options.MaxPivots to bound a solve). Problems
// without an initial feasible basis (two-phase, Big-M) are out of scope.
package simplex
