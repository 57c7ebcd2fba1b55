package simplex_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratlp/simplex"
)

// TestWriteToReadFrom_RoundTrip serializes a mid-solve tableau and
// restores it cell for cell.
func TestWriteToReadFrom_RoundTrip(t *testing.T) {
	tab := mustParse(t, refProblem)
	_, err := tab.Pivot() // a non-trivial state with fractional cells
	require.NoError(t, err)

	var buf bytes.Buffer
	written, err := tab.WriteTo(&buf)
	require.NoError(t, err)
	assert.Positive(t, written)
	assert.Equal(t, written, int64(buf.Len()))

	var back simplex.Tableau
	read, err := back.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, written, read)

	assert.Equal(t, tab.String(), back.String())
	assert.Equal(t, tab.Basis(), back.Basis())
}

// TestWriteTo_NilTableau rejects serialization of a nil receiver.
func TestWriteTo_NilTableau(t *testing.T) {
	var tab *simplex.Tableau
	_, err := tab.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, simplex.ErrNilTableau)
}

// TestReadFrom_Garbage fails on a non-CBOR payload.
func TestReadFrom_Garbage(t *testing.T) {
	var tab simplex.Tableau
	_, err := tab.ReadFrom(strings.NewReader("definitely not cbor"))
	assert.Error(t, err)
}
