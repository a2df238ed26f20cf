// Package testutil holds fixtures shared by the formula tests.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzigangirova/deltae-go"
)

// DiffFunc is a colour difference with its weights already bound.
type DiffFunc func(a, b deltae.Colour) float64

// Case is one row of a reference table.
type Case struct {
	Want      float64
	Reference deltae.Lab
	Colour    deltae.Lab
}

// Colours returns n pseudo-random L*a*b* colours from a fixed seed, with
// L* in [0, 100], a* in [-100, 100] and b* in [-110, 100].
func Colours(n int) []deltae.Lab {
	rng := rand.New(rand.NewPCG(0, 0))
	labs := make([]deltae.Lab, n)
	for i := range labs {
		labs[i] = deltae.Lab{
			L: rng.Float64() * 100,
			A: rng.Float64()*200 - 100,
			B: rng.Float64()*210 - 110,
		}
	}
	return labs
}

// Round4 rounds v to four decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// CheckZero asserts that diff(c, c) is exactly zero.
func CheckZero(t *testing.T, diff DiffFunc) {
	t.Helper()
	for _, c := range Colours(1000) {
		require.Equal(t, 0.0, diff(c, c), "colour %+v", c)
	}
}

// CheckSymmetric asserts that diff(a, b) == diff(b, a) exactly.
func CheckSymmetric(t *testing.T, diff DiffFunc) {
	t.Helper()
	colours := Colours(1000)
	for i := 1; i < len(colours); i++ {
		a, b := colours[i-1], colours[i]
		require.Equal(t, diff(a, b), diff(b, a), "pair %+v %+v", a, b)
	}
}

// CheckAsymmetric asserts that swapping the arguments changes the result for
// at least one pair.
func CheckAsymmetric(t *testing.T, diff DiffFunc) {
	t.Helper()
	colours := Colours(100)
	for i := 1; i < len(colours); i++ {
		a, b := colours[i-1], colours[i]
		if diff(a, b) != diff(b, a) {
			return
		}
	}
	t.Error("expected diff(a, b) != diff(b, a) for some pair")
}

// CheckTable asserts every row after rounding to four decimal places.
func CheckTable(t *testing.T, cases []Case, diff DiffFunc) {
	t.Helper()
	for i, tc := range cases {
		got := diff(tc.Reference, tc.Colour)
		assert.InDelta(t, tc.Want, Round4(got), 0.001, "row %d: %+v vs %+v (got %v)", i, tc.Reference, tc.Colour, got)
	}
}
