// Package lmath holds the small numeric primitives shared by the colour
// difference formulas.
package lmath

import "math"

const (
	Tau = 2 * math.Pi

	// TwentyFiveToSeventh is 25^7, the chroma pivot of CIEDE2000.
	TwentyFiveToSeventh = 6103515625.0
)

// Sqr returns v*v.
func Sqr(v float64) float64 {
	return v * v
}

// Hypot returns the Euclidean norm of (x, y) as sqrt(x*x + y*y), without the
// overflow scaling math.Hypot applies.
func Hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// HypotSquared returns x*x + y*y.
func HypotSquared(x, y float64) float64 {
	return x*x + y*y
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return (deg * math.Pi) / 180.0
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// SignedHueAngle returns atan2(b, a) in (-π, π]. The hue of the achromatic
// point (0, 0) is 0.
func SignedHueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return math.Atan2(b, a)
}

// NormaliseAngle maps an angle in (-π, π] onto [0, 2π).
func NormaliseAngle(rad float64) float64 {
	if rad < 0 {
		rad += Tau
	}
	if rad >= Tau {
		rad -= Tau
	}
	return rad
}

// HueAngle returns atan2(b, a) normalised to [0, 2π). The hue of the
// achromatic point (0, 0) is 0.
func HueAngle(b, a float64) float64 {
	return NormaliseAngle(SignedHueAngle(b, a))
}

// HueDegrees is HueAngle expressed in degrees, in [0, 360).
func HueDegrees(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := Degrees(math.Atan2(b, a))
	for h >= 360.0 {
		h -= 360.0
	}
	for h < 0 {
		h += 360.0
	}
	return h
}
