package frac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratlp/frac"
)

// TestParse_ValidForms covers the three recognized literal shapes.
func TestParse_ValidForms(t *testing.T) {
	cases := []struct {
		in    string
		wantN int64
		wantD int64
	}{
		{"42", 42, 1},
		{"-7", -7, 1},
		{"0", 0, 1},
		{"3/4", 3, 4},
		{"-3/4", -3, 4},
		{"6/-8", -3, 4}, // negative denominator normalizes
		{"4/2", 2, 1},
		{"2.50", 5, 2},
		{"-0.5", -1, 2},
		{"0.25", 1, 4},
		{"10.0", 10, 1},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			f, err := frac.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, f.Num())
			assert.Equal(t, tc.wantD, f.Den())
		})
	}
}

// TestParse_BadLiteral rejects everything outside the literal grammar.
func TestParse_BadLiteral(t *testing.T) {
	for _, in := range []string{
		"", "abc", "1..2", "1//2", "+3", ".5", "1.", "-", "--2",
		"1.2.3", "2.-5", "1/ 2", "0x10", "1e3",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := frac.Parse(in)
			assert.ErrorIs(t, err, frac.ErrBadLiteral)
		})
	}
}

// TestParse_ZeroDenominator distinguishes the well-formed-but-undefined
// ratio from a malformed literal.
func TestParse_ZeroDenominator(t *testing.T) {
	_, err := frac.Parse("1/0")
	assert.ErrorIs(t, err, frac.ErrDivisionByZero)
	assert.NotErrorIs(t, err, frac.ErrBadLiteral)
}

// TestParse_StringRoundTrip pins Parse(String(f)) == f on mixed values.
func TestParse_StringRoundTrip(t *testing.T) {
	for _, f := range []frac.Fraction{
		frac.FromInt(0),
		frac.FromInt(-12),
		mustNew(t, 7, 3),
		mustNew(t, -9, 24),
	} {
		back, err := frac.Parse(f.String())
		require.NoError(t, err)
		assert.True(t, back.Equal(f), "round-trip of %s", f)
	}
}

// TestTextMarshaling verifies the TextMarshaler/TextUnmarshaler pair.
func TestTextMarshaling(t *testing.T) {
	f := mustNew(t, -5, 8)
	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-5/8", string(text))

	var back frac.Fraction
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Equal(f))

	assert.Error(t, back.UnmarshalText([]byte("not a number")))
}
