// Package simplex: tableau snapshot (de)serialization.
// The codec is CBOR, schema-less, with cells carried in their exact
// literal form so the wire format is independent of the in-memory
// Fraction representation.

package simplex

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/ratlp/frac"
)

// wireTableau is the serialized shape of a Tableau.
type wireTableau struct {
	Cols  []string `cbor:"cols"`
	Basis []string `cbor:"basis"`
	Cells []string `cbor:"cells"` // row-major frac literals, len == rows*cols
}

// WriteTo serializes the tableau to w as canonical CBOR and returns the
// number of bytes written. It implements io.WriterTo, so a pivot trace
// can be persisted or shipped to an out-of-process renderer.
func (t *Tableau) WriteTo(w io.Writer) (int64, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	wire := wireTableau{
		Cols:  t.Columns(),
		Basis: t.Basis(),
		Cells: make([]string, len(t.cells)),
	}
	for i, c := range t.cells {
		wire.Cells[i] = c.String()
	}

	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if err = em.NewEncoder(cw).Encode(wire); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// ReadFrom deserializes a tableau previously written with WriteTo,
// replacing the receiver's contents, and returns the number of bytes
// read. It implements io.ReaderFrom.
//
// Errors:
//   - ErrInvalidDimension — the decoded labels and cells disagree on
//     shape, or the shape is below the 2-constraint minimum.
//   - frac.ErrBadLiteral  — a cell is not a valid Fraction literal.
func (t *Tableau) ReadFrom(r io.Reader) (int64, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	cr := &countingReader{r: r}
	var wire wireTableau
	if err := cbor.NewDecoder(cr).Decode(&wire); err != nil {
		return cr.n, err
	}

	rows, cols := len(wire.Basis), len(wire.Cols)
	if rows < minConstraintRows+1 || cols < minRowWidth+1 || len(wire.Cells) != rows*cols {
		return cr.n, fmt.Errorf("decoded %d rows × %d cols with %d cells: %w",
			rows, cols, len(wire.Cells), ErrInvalidDimension)
	}

	cells := make([]frac.Fraction, len(wire.Cells))
	for i, lit := range wire.Cells {
		v, err := frac.Parse(lit)
		if err != nil {
			return cr.n, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = v
	}

	t.cols = wire.Cols
	t.basis = wire.Basis
	t.cells = cells

	return cr.n, nil
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// countingReader tracks bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
