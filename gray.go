package deltae

import "math"

/*
   For a grey sRGB pixel r = g = b, so Y equals the linearised channel and
   X/Xn, Z/Zn only differ from Y by the white point. a* and b* are taken as
   zero and L* is computed from the one channel:

       Y  = v / 12.92                          v <= 0.04045
          = ((v + 0.055) / 1.055)^2.4          otherwise

       L* = κ Y                                Y <= ε,  κ = (29/3)^3
          = 116 Y^(1/3) - 16                   otherwise

   With v = grey/255 the sRGB break point falls between grey 10 and 11 and the
   ε = (6/29)^3 break point between grey 23 and 24, so the four cases collapse
   into three.
*/

const (
	grayKappa = 24389.0 / 27.0 // (29/3)^3

	// κ / (12.92 * 255)
	grayKappaOverLinear = 243890.0 / 889542.0

	grayOffset = 0.055 * 255.0
	grayScale  = 1.055 * 255.0
)

// labFromGray returns L* of the sRGB colour (grey, grey, grey).
func labFromGray(grey uint8) float64 {
	v := float64(grey)
	if grey <= 10 {
		// Linear gamma, linear lightness.
		return v * grayKappaOverLinear
	}
	ys := (v + grayOffset) / grayScale
	if grey <= 23 {
		// Power-law gamma, linear lightness.
		return grayKappa * math.Pow(ys, 2.4)
	}
	// Power-law gamma, cube-root lightness: (ys^2.4)^(1/3) = ys^0.8.
	return 116.0*math.Pow(ys, 0.8) - 16.0
}
