// Package cmc implements the CMC l:c colour difference.
//
// CMC l:c is a quasimetric: the tolerance ellipsoid is centred on the
// reference colour, so in general Diff(a, b, p) != Diff(b, a, p). Use cie00
// when a proper metric is needed.
package cmc

import (
	"math"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// Params are the lightness (l) and chroma (c) weights of CMC l:c.
type Params struct {
	L float64
	C float64
}

// LC11 returns the 1:1 weights used for perceptibility.
func LC11() Params {
	return Params{L: 1.0, C: 1.0}
}

// LC21 returns the 2:1 weights used for acceptability.
func LC21() Params {
	return Params{L: 2.0, C: 1.0}
}

// DefaultParams returns LC11.
func DefaultParams() Params {
	return LC11()
}

const (
	// S_L below L* = 16.
	darkSl = 1639.0 / 3206.0

	// Hue band, on the atan2 range (-π, π], in which T uses the 168° term:
	// 164° - 360° = -196° and 345° - 360° = -15°.
	hueBandStart = -math.Pi * 49.0 / 45.0
	hueBandEnd   = -lmath.Tau / 24.0

	deg168 = lmath.Tau * 7.0 / 15.0
	deg35  = math.Pi * 7.0 / 36.0
)

// Diff returns the CMC l:c difference of colour from reference.
//
// As with CIE94 the hue difference is sqrt(Δa² + Δb² − ΔC²) with a negative
// radicand taken as zero.
func Diff(reference, colour deltae.Colour, p Params) float64 {
	L1, a1, b1 := reference.Lab()
	L2, a2, b2 := colour.Lab()

	dL := L1 - L2
	da := a1 - a2
	db := b1 - b2
	C1 := lmath.Hypot(a1, b1)
	C2 := lmath.Hypot(a2, b2)
	dC := C1 - C2

	var dH float64
	if dhsq := lmath.HypotSquared(da, db) - lmath.Sqr(dC); dhsq > 0 {
		dH = math.Sqrt(dhsq)
	}

	Sl := darkSl
	if L1 >= 16 {
		Sl = (0.040975 * L1) / (1.0 + 0.01765*L1)
	}
	Sc := (0.0638*C1)/(1.0+0.0131*C1) + 0.638

	c4 := lmath.Sqr(lmath.Sqr(C1))
	f := math.Sqrt(c4 / (c4 + 1900.0))
	Sh := Sc * (f*hueFactor(a1, b1) + 1.0 - f)

	l := dL / (p.L * Sl)
	c := dC / (p.C * Sc)
	h := dH / Sh
	return math.Sqrt(l*l + c*c + h*h)
}

// hueFactor is the empirical T term for the reference hue.
func hueFactor(a, b float64) float64 {
	h := math.Atan2(b, a)
	if hueBandStart <= h && h <= hueBandEnd {
		return 0.56 + math.Abs(0.2*math.Cos(h+deg168))
	}
	return 0.36 + math.Abs(0.4*math.Cos(h+deg35))
}
