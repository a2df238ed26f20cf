package cmc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/testutil"
)

var sharmaWant = [34]float64{
	67.4802, 1.7387, 2.4966, 3.3049, 0.8574, 0.8833, 0.9782, 3.5048, 2.8793, 6.5784,
	6.5784, 6.5784, 6.5784, 6.6749, 6.6749, 4.6685, 42.1088, 39.4589, 38.3601, 33.9366,
	1.1440, 1.0060, 1.1130, 1.0534, 1.4282, 1.2548, 1.7684, 2.0626, 3.0870, 1.7489,
	1.9010, 1.7026, 1.8024, 2.4484,
}

func TestDiffSharmaTable(t *testing.T) {
	testutil.CheckTable(t, testutil.SharmaCases(sharmaWant), func(a, b deltae.Colour) float64 {
		return Diff(a, b, LC11())
	})
}

func TestDiffZero(t *testing.T) {
	for _, p := range []Params{LC11(), LC21(), {L: 1, C: 2}} {
		testutil.CheckZero(t, func(a, b deltae.Colour) float64 { return Diff(a, b, p) })
	}
}

func TestDiffAsymmetric(t *testing.T) {
	testutil.CheckAsymmetric(t, func(a, b deltae.Colour) float64 { return Diff(a, b, LC11()) })
}

func TestDiffExample(t *testing.T) {
	reference := deltae.Lab{L: 38.972, A: 58.991, B: 37.138}
	colour := deltae.Lab{L: 54.528, A: 42.416, B: 54.497}
	assert.InDelta(t, 22.751015, Diff(reference, colour, LC11()), 0.001)
	assert.InDelta(t, 17.743946, Diff(reference, colour, LC21()), 0.001)
	assert.InDelta(t, 25.375071, Diff(colour, reference, LC11()), 0.001)
}

func TestDiffRGB(t *testing.T) {
	reference := deltae.RGB{R: 234, G: 76, B: 76}
	colour := deltae.RGB{R: 76, G: 187, B: 234}
	assert.InDelta(t, 64.49067, Diff(reference, colour, LC11()), 0.01)
	assert.InDelta(t, 63.303917, Diff(reference, colour, LC21()), 0.01)
}

func TestHueFactor(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want float64
	}{
		{"red", 0, 0.36 + math.Abs(0.4*math.Cos(deg35))},
		{"blue", 270, 0.56 + math.Abs(0.2*math.Cos(math.Pi*1.5+deg168))},
		{"just past band end", 346, 0.36 + math.Abs(0.4*math.Cos(-math.Pi*14/180+deg35))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, a, b := deltae.LCh{L: 50, C: 10, H: tc.hue}.Lab()
			assert.InDelta(t, tc.want, hueFactor(a, b), 1e-9)
		})
	}
}

func TestDarkLightness(t *testing.T) {
	reference := deltae.Lab{L: 10}
	colour := deltae.Lab{L: 11}
	assert.InDelta(t, 1/darkSl, Diff(reference, colour, LC11()), 1e-12)
}
