// Package cie00 implements the CIEDE2000 colour difference (ΔE00).
//
// Unlike CIE94 and CMC, CIEDE2000 is symmetric: Diff(a, b) == Diff(b, a)
// exactly, since the a* correction depends on both chromas and every angle
// term is direction aware.
//
// Reference: G. Sharma, W. Wu, E. N. Dalal, "The CIEDE2000 Color-Difference
// Formula: Implementation Notes, Supplementary Test Data, and Mathematical
// Observations", Color Research & Application 30(1), 2005.
package cie00

import (
	"math"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// Params are the k_L, k_C and k_H weights. The larger a weight, the smaller
// the effect of the corresponding component on the distance. Setting any of
// them to zero makes the distance infinite.
type Params struct {
	L float64
	C float64
	H float64
}

// DefaultParams returns the standard weights, all equal to one.
func DefaultParams() Params {
	return Params{L: 1.0, C: 1.0, H: 1.0}
}

// Yang2012 returns the weights proposed in Yang Yang, Jun Ming, Nenghai Yu,
// "Color Image Quality Assessment Based on CIEDE2000", Advances in
// Multimedia, vol. 2012, article 273723. https://doi.org/10.1155/2012/273723
func Yang2012() Params {
	return Params{L: 0.65, C: 1.0, H: 4.0}
}

// Angles used by the hue weighting function T, in radians.
const (
	deg30 = lmath.Tau / 12.0
	deg6  = lmath.Tau / 60.0
	deg63 = lmath.Tau * 0.175
)

// Diff returns the CIEDE2000 colour difference between c1 and c2 with the
// default weights.
func Diff(c1, c2 deltae.Colour) float64 {
	return DiffWithParams(c1, c2, DefaultParams())
}

// DiffWithParams returns the CIEDE2000 colour difference between c1 and c2
// using the weights in p.
func DiffWithParams(c1, c2 deltae.Colour, p Params) float64 {
	L1, a1, b1 := c1.Lab()
	L2, a2, b2 := c2.Lab()

	meanL := (L1 + L2) * 0.5
	deltaL := L2 - L1

	C1 := lmath.Hypot(a1, b1)
	C2 := lmath.Hypot(a2, b2)

	// a* correction: a' = (1 + G) a with G = 0.5 (1 - sqrt(C̄^7 / (C̄^7 + 25^7))).
	g := math.Pow((C1+C2)*0.5, 7)
	g = 1.5 - math.Sqrt(g/(g+lmath.TwentyFiveToSeventh))*0.5
	a1Prime := a1 * g
	a2Prime := a2 * g

	C1Prime := lmath.Hypot(a1Prime, b1)
	C2Prime := lmath.Hypot(a2Prime, b2)
	meanCPrime := (C1Prime + C2Prime) * 0.5
	deltaCPrime := C2Prime - C1Prime

	tmp := lmath.Sqr(meanL - 50.0)
	Sl := 1.0 + (0.015*tmp)/math.Sqrt(20.0+tmp)
	Sc := 1.0 + 0.045*meanCPrime

	r1 := lmath.SignedHueAngle(b1, a1Prime)
	r2 := lmath.SignedHueAngle(b2, a2Prime)
	h1Prime := lmath.NormaliseAngle(r1)
	h2Prime := lmath.NormaliseAngle(r2)
	deltahPrime := deltaHuePrime(C1, C2, h1Prime, h2Prime)
	deltaH := 2.0 * math.Sqrt(C1Prime*C2Prime) * math.Sin(deltahPrime*0.5)

	meanHPrime := (h1Prime + h2Prime) * 0.5
	if huesWrap(r1, r2) {
		meanHPrime += math.Pi
	}

	Sh := 1.0 + 0.015*meanCPrime*hueWeight(meanHPrime)

	lightness := deltaL / (p.L * Sl)
	chroma := deltaCPrime / (p.C * Sc)
	hue := deltaH / (p.H * Sh)
	Rt := rotation(meanCPrime, meanHPrime)

	return math.Sqrt(lightness*lightness + chroma*chroma + hue*hue + Rt*chroma*hue)
}

// deltaHuePrime returns Δh', the signed shortest rotation from h1 to h2.
func deltaHuePrime(C1, C2, h1, h2 float64) float64 {
	if C1 == 0 || C2 == 0 {
		return 0
	}
	d := h2 - h1
	switch {
	case math.Abs(d) <= math.Pi:
		return d
	case h2 <= h1:
		return d + lmath.Tau
	default:
		return d - lmath.Tau
	}
}

// huesWrap reports whether two hues, given as atan2 values in (-π, π], are
// more than π apart once normalised to [0, 2π). An exactly antipodal pair
// does not wrap.
//
// Normalising first can round |h1 - h2| one ulp past π, so the test is made
// on the raw angles: hues on the same side of the a* axis are never more than
// π apart, and hues on opposite sides are when their raw difference is below
// π.
func huesWrap(r1, r2 float64) bool {
	if (r1 < 0) == (r2 < 0) {
		return false
	}
	return math.Abs(r2-r1) < math.Pi
}

// hueWeight is the T function of the hue term's scaling factor S_H.
func hueWeight(h float64) float64 {
	return 1.0 -
		0.17*math.Cos(h-deg30) +
		0.24*math.Cos(2.0*h) +
		0.32*math.Cos(3.0*h+deg6) -
		0.20*math.Cos(4.0*h-deg63)
}

// rotation returns R_T = -2 sqrt(C̄'^7 / (C̄'^7 + 25^7)) sin(60° exp(-((H̄' - 275°) / 25°)^2)).
// In radians (H̄' - 275°) / 25° = H̄' · 14.4/2π - 11.
func rotation(meanCPrime, meanHPrime float64) float64 {
	c7 := math.Pow(meanCPrime, 7)
	h := meanHPrime*(14.4/lmath.Tau) - 11.0
	return -2.0 * math.Sqrt(c7/(c7+lmath.TwentyFiveToSeventh)) *
		math.Sin(math.Exp(-h*h)*(lmath.Tau/6.0))
}
