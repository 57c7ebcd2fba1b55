package simplex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratlp/frac"
	"github.com/katalvlaran/ratlp/simplex"
)

// fracComparer lets go-cmp diff Decision maps by rational value.
var fracComparer = cmp.Comparer(func(a, b frac.Fraction) bool {
	return a.Equal(b)
})

// TestSolve_EndToEnd runs the reference problem to optimality:
// two pivots, x1 = 4, x2 = 8, objective value 400.
func TestSolve_EndToEnd(t *testing.T) {
	tab := mustParse(t, refProblem)

	var snapshots []*simplex.Tableau
	opts := simplex.DefaultOptions()
	opts.Sink = simplex.SinkFunc(func(s *simplex.Tableau) {
		snapshots = append(snapshots, s)
	})

	got, err := simplex.Solve(tab, &opts)
	require.NoError(t, err)

	want := simplex.Decision{
		"x1": frac.FromInt(4),
		"x2": frac.FromInt(8),
		"s1": frac.FromInt(0),
		"s2": frac.FromInt(0),
		"P":  frac.FromInt(400),
	}
	assert.Empty(t, cmp.Diff(want, got, fracComparer))

	// Initial tableau + one snapshot per pivot.
	assert.Len(t, snapshots, 3, "the reference problem solves in two pivots")
	assert.True(t, tab.IsOptimal(), "the solved tableau is left in place")
}

// TestSolve_SnapshotsAreClones: the sink sees frozen copies, not views
// of the mutating tableau.
func TestSolve_SnapshotsAreClones(t *testing.T) {
	tab := mustParse(t, refProblem)

	var snapshots []*simplex.Tableau
	opts := simplex.Options{Sink: simplex.SinkFunc(func(s *simplex.Tableau) {
		snapshots = append(snapshots, s)
	})}

	_, err := simplex.Solve(tab, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)

	// The first snapshot still shows the pre-pivot objective row.
	v, err := snapshots[0].At(2, 0)
	require.NoError(t, err)
	assert.True(t, v.Equal(frac.FromInt(-40)))
	assert.Equal(t, []string{"s1", "s2", "P"}, snapshots[0].Basis())
}

// TestSolve_AlreadyOptimal extracts without pivoting.
func TestSolve_AlreadyOptimal(t *testing.T) {
	tab := mustParse(t, `
		1  1  1  0  12
		2  1  0  1  16
		5  3  0  0   0`)

	var count int
	opts := simplex.Options{Sink: simplex.SinkFunc(func(*simplex.Tableau) { count++ })}

	d, err := simplex.Solve(tab, &opts)
	require.NoError(t, err)
	assert.True(t, d["s1"].Equal(frac.FromInt(12)))
	assert.Equal(t, 1, count, "only the initial snapshot is emitted")
}

// TestSolve_Unbounded surfaces ErrNoPivotRow instead of a decision.
func TestSolve_Unbounded(t *testing.T) {
	tab := mustParse(t, `
		-1  1  1  0  4
		-2  1  0  1  2
		-3 -1  0  0  0`)

	_, err := simplex.Solve(tab, nil)
	assert.ErrorIs(t, err, simplex.ErrNoPivotRow)
}

// TestSolve_PivotBudget aborts once MaxPivots is exhausted.
func TestSolve_PivotBudget(t *testing.T) {
	tab := mustParse(t, refProblem)
	opts := simplex.Options{MaxPivots: 1}

	_, err := simplex.Solve(tab, &opts)
	assert.ErrorIs(t, err, simplex.ErrPivotBudget)
}

// TestSolve_NilTableau rejects a nil input up front.
func TestSolve_NilTableau(t *testing.T) {
	_, err := simplex.Solve(nil, nil)
	assert.ErrorIs(t, err, simplex.ErrNilTableau)
}
