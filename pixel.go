package deltae

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel adapters. sRGB values are converted with go-colorful (D65 white
// point), whose L* is in [0, 1] and a*, b* roughly in [-1, 1]; they are
// rescaled here to the conventional [0, 100] range.

const colorfulScale = 100.0

// ErrInvalidHex is returned by ParseHex for strings not in #RRGGBB or #RGB
// form.
var ErrInvalidHex = errors.New("expected colour in #RRGGBB format")

// RGB is an 8-bit-per-channel sRGB colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Lab() (l, a, b float64) {
	return labFromSRGB(c.R, c.G, c.B)
}

// Hex returns c formatted as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BGR is an sRGB colour stored in reversed channel order.
type BGR struct {
	B, G, R uint8
}

func (c BGR) Lab() (l, a, b float64) {
	return labFromSRGB(c.R, c.G, c.B)
}

// Gray is an 8-bit sRGB grey level. Its L*a*b* coordinates are computed
// directly from the single channel, which is faster than converting the
// equivalent RGB{v, v, v}; a* and b* are exactly zero.
type Gray uint8

func (c Gray) Lab() (l, a, b float64) {
	return labFromGray(uint8(c)), 0, 0
}

// Colorful adapts a go-colorful colour, interpreted as sRGB.
type Colorful colorful.Color

func (c Colorful) Lab() (l, a, b float64) {
	l, a, b = colorful.Color(c).Lab()
	return l * colorfulScale, a * colorfulScale, b * colorfulScale
}

func labFromSRGB(r, g, b uint8) (float64, float64, float64) {
	return Colorful{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Lab()
}

// FromColor adapts any image/color value. Opaque 8-bit grey and RGBA values
// map to Gray and RGB; everything else goes through go-colorful, which
// un-premultiplies alpha. The second result is false for fully transparent
// colours, whose hue is undefined.
func FromColor(c color.Color) (Colour, bool) {
	switch v := c.(type) {
	case color.Gray:
		return Gray(v.Y), true
	case color.RGBA:
		if v.A == 0xff {
			return RGB{R: v.R, G: v.G, B: v.B}, true
		}
	case color.NRGBA:
		if v.A == 0xff {
			return RGB{R: v.R, G: v.G, B: v.B}, true
		}
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return nil, false
	}
	return Colorful(cf), true
}

// ParseHex parses a colour written as #RRGGBB or #RGB.
func ParseHex(s string) (RGB, error) {
	if (len(s) != 7 && len(s) != 4) || s[0] != '#' {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
		}
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
