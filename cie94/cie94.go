// Package cie94 implements the CIE94 colour difference (ΔE*94).
//
// ΔE*94 is a quasimetric: the chroma of the reference colour weights the
// chroma and hue terms, so in general Diff(a, b, p) != Diff(b, a, p).
package cie94

import (
	"math"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// Params are the k_L, K_1 and K_2 weights of the formula. C and H scale the
// chroma and hue terms respectively.
//
// A zero L makes every difference with a lightness component infinite.
type Params struct {
	L float64
	C float64
	H float64
}

// Graphic returns the weights for graphic arts.
func Graphic() Params {
	return Params{L: 1.0, C: 0.045, H: 0.015}
}

// Textiles returns the weights for textiles.
func Textiles() Params {
	return Params{L: 2.0, C: 0.048, H: 0.014}
}

// DefaultParams returns the graphic arts weights.
func DefaultParams() Params {
	return Graphic()
}

// Diff returns the CIE94 difference of colour from reference.
//
// The hue difference is derived as sqrt(Δa² + Δb² − ΔC²); rounding can make
// the radicand slightly negative for achromatic pairs, in which case the hue
// difference is taken as zero rather than NaN.
func Diff(reference, colour deltae.Colour, p Params) float64 {
	l1, a1, b1 := reference.Lab()
	l2, a2, b2 := colour.Lab()

	dL := l1 - l2
	da := a1 - a2
	db := b1 - b2
	c1 := lmath.Hypot(a1, b1)
	c2 := lmath.Hypot(a2, b2)
	dC := c1 - c2

	var dH float64
	if dhsq := lmath.HypotSquared(da, db) - lmath.Sqr(dC); dhsq > 0 {
		dH = math.Sqrt(dhsq)
	}

	l := dL / p.L
	c := dC / (1.0 + p.C*c1)
	h := dH / (1.0 + p.H*c1)
	return math.Sqrt(l*l + c*c + h*h)
}
