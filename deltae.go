// Package deltae provides the colour inputs shared by the colour difference
// formulas in the cie76, cie94, cie00, cmc and bfd sub-packages.
//
// Every formula accepts any value implementing Colour, so the same sample can
// be given as a raw L*a*b* triple, a fixed array, an LCh value or an sRGB
// pixel:
//
//	c1 := deltae.Lab{L: 38.972, A: 58.991, B: 37.138}
//	c2 := deltae.Array{54.528, 42.416, 54.497}
//	d := cie00.Diff(c1, c2) // ≈ 20.553642
package deltae

import (
	"math"

	"github.com/yzigangirova/deltae-go/internal/lmath"
)

// Colour is anything that can report its CIE L*a*b* coordinates.
type Colour interface {
	// Lab returns the L*, a* and b* coordinates of the colour.
	Lab() (l, a, b float64)
}

// Lab is a CIE L*a*b* colour. No range is enforced on any coordinate.
type Lab struct {
	L, A, B float64
}

func (c Lab) Lab() (l, a, b float64) {
	return c.L, c.A, c.B
}

// Array is an L*a*b* colour stored as {L*, a*, b*}.
type Array [3]float64

func (c Array) Lab() (l, a, b float64) {
	return c[0], c[1], c[2]
}

// LCh is the cylindrical form of L*a*b*: lightness, chroma and hue angle in
// degrees.
type LCh struct {
	L, C, H float64
}

func (c LCh) Lab() (l, a, b float64) {
	h := lmath.Radians(c.H)
	return c.L, c.C * math.Cos(h), c.C * math.Sin(h)
}

// ToLab returns the L*a*b* coordinates of c as a Lab value.
func ToLab(c Colour) Lab {
	l, a, b := c.Lab()
	return Lab{L: l, A: a, B: b}
}

// ToLCh converts c to LCh. The hue is in [0, 360) and is 0 for achromatic
// colours.
func ToLCh(c Colour) LCh {
	l, a, b := c.Lab()
	return LCh{
		L: l,
		C: lmath.Hypot(a, b),
		H: lmath.HueDegrees(b, a),
	}
}
