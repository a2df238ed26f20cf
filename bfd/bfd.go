// Package bfd implements the BFD(1:1) colour difference of Luo and Rigg.
package bfd

import (
	"math"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// lightness maps L* onto the BFD lightness scale via the luminance factor Y.
func lightness(L float64) float64 {
	var y float64
	if L > 7.996969 {
		f := (L + 16) / 116
		y = f * f * f * 100
	} else {
		y = 100 * (L / 903.3)
	}
	return 54.6*math.Log10(y+1.5) - 9.6
}

// cosDeg returns cos of an angle given in degrees.
func cosDeg(deg float64) float64 {
	return math.Cos(lmath.Radians(deg))
}

// chromaDispersion is D_C for the mean chroma.
func chromaDispersion(C float64) float64 {
	return 0.035*C/(1+0.00365*C) + 0.521
}

// hueDispersion is D_H for the mean chroma C and mean hue h in degrees.
func hueDispersion(C, h float64) float64 {
	c4 := lmath.Sqr(lmath.Sqr(C))
	g := math.Sqrt(c4 / (c4 + 14000))
	t := 0.627 + 0.055*cosDeg(h-254) -
		0.040*cosDeg(2*h-136) +
		0.070*cosDeg(3*h-31) +
		0.049*cosDeg(4*h+114) -
		0.015*cosDeg(5*h-103)
	return chromaDispersion(C) * (g*t + 1 - g)
}

// rotation is R_T = R_H R_C.
func rotation(C, h float64) float64 {
	rh := -0.260*cosDeg(h-308) -
		0.379*cosDeg(2*h-160) -
		0.636*cosDeg(3*h+254) +
		0.226*cosDeg(4*h+140) -
		0.194*cosDeg(5*h+280)
	c6 := lmath.Sqr(lmath.Sqr(C)) * lmath.Sqr(C)
	return rh * math.Sqrt(c6/(c6+70000000))
}

// Diff returns the BFD(1:1) difference between c1 and c2.
//
// The rotation term weights the signed chroma difference by the unsigned hue
// difference, so Diff is not symmetric in general.
func Diff(c1, c2 deltae.Colour) float64 {
	lch1 := deltae.ToLCh(c1)
	lch2 := deltae.ToLCh(c2)
	_, a1, b1 := c1.Lab()
	_, a2, b2 := c2.Lab()

	deltaL := lightness(lch2.L) - lightness(lch1.L)
	deltaC := lch2.C - lch1.C
	meanC := (lch1.C + lch2.C) / 2
	meanh := (lch1.H + lch2.H) / 2

	// ΔH² = ΔE² - ΔL² - ΔC², zero when rounding makes it negative.
	var deltaH float64
	if dhsq := lmath.HypotSquared(a1-a2, b1-b2) - lmath.Sqr(deltaC); dhsq > 0 {
		deltaH = math.Sqrt(dhsq)
	}

	c := deltaC / chromaDispersion(meanC)
	h := deltaH / hueDispersion(meanC, meanh)
	return math.Sqrt(deltaL*deltaL + c*c + h*h + rotation(meanC, meanh)*c*h)
}
