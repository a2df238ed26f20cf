package lmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHueAngle(t *testing.T) {
	tests := []struct {
		b, a float64
		want float64
	}{
		{0, 0, 0},
		{0, 1, 0},
		{1, 0, math.Pi / 2},
		{0, -1, math.Pi},
		{-1, 0, 3 * math.Pi / 2},
		{-1e-300, 1, 0},
	}
	for _, tc := range tests {
		got := HueAngle(tc.b, tc.a)
		assert.InDelta(t, tc.want, got, 1e-15, "HueAngle(%v, %v)", tc.b, tc.a)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, Tau)
	}
}

func TestSignedHueAngle(t *testing.T) {
	assert.Equal(t, 0.0, SignedHueAngle(0, 0))
	assert.Equal(t, math.Pi, SignedHueAngle(0, -1))
	assert.InDelta(t, -math.Pi/2, SignedHueAngle(-1, 0), 1e-15)

	// Mirror images through the origin stay exactly π apart.
	r1 := SignedHueAngle(-0.001, 2.49)
	r2 := SignedHueAngle(0.001, -2.49)
	assert.Equal(t, math.Pi, r2-r1)
}

func TestNormaliseAngle(t *testing.T) {
	assert.Equal(t, 0.0, NormaliseAngle(0))
	assert.Equal(t, math.Pi, NormaliseAngle(math.Pi))
	assert.InDelta(t, 3*math.Pi/2, NormaliseAngle(-math.Pi/2), 1e-15)
	assert.Less(t, NormaliseAngle(-1e-300), Tau)
}

func TestHueDegrees(t *testing.T) {
	assert.Equal(t, 0.0, HueDegrees(0, 0))
	assert.InDelta(t, 90.0, HueDegrees(1, 0), 1e-12)
	assert.InDelta(t, 302.005383, HueDegrees(-40, 25), 1e-6)
	assert.InDelta(t, 180.0, HueDegrees(0, -1), 1e-12)
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-15)
	assert.InDelta(t, 180.0, Degrees(math.Pi), 1e-12)
	assert.Equal(t, math.Pow(25, 7), TwentyFiveToSeventh)
}

func TestHypot(t *testing.T) {
	assert.Equal(t, 5.0, Hypot(3, 4))
	assert.Equal(t, 25.0, HypotSquared(3, -4))
	assert.Equal(t, 9.0, Sqr(-3))
}
