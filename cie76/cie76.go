// Package cie76 implements the CIE76 colour difference (ΔE*76), the Euclidean
// distance between two colours in L*a*b* space.
//
// ΔE*76 is a metric: it is symmetric, zero only for identical coordinates and
// never negative.
package cie76

import (
	"math"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// Diff returns the CIE76 colour difference between c1 and c2.
func Diff(c1, c2 deltae.Colour) float64 {
	l1, a1, b1 := c1.Lab()
	l2, a2, b2 := c2.Lab()
	return math.Sqrt(lmath.Sqr(l1-l2) + lmath.Sqr(a1-a2) + lmath.Sqr(b1-b2))
}
