package deltae

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabRepresentations(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
	}{
		{"lab", Lab{L: 50, A: 2.6772, B: -79.7751}},
		{"array", Array{50, 2.6772, -79.7751}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, a, b := tc.colour.Lab()
			assert.Equal(t, 50.0, l)
			assert.Equal(t, 2.6772, a)
			assert.Equal(t, -79.7751, b)
			assert.Equal(t, Lab{L: 50, A: 2.6772, B: -79.7751}, ToLab(tc.colour))
		})
	}
}

func TestLChRoundTrip(t *testing.T) {
	lab := Lab{L: 50, A: 25, B: -40}
	lch := ToLCh(lab)
	assert.Equal(t, 50.0, lch.L)
	assert.InDelta(t, 47.169906, lch.C, 1e-6)
	assert.InDelta(t, 302.005383, lch.H, 1e-6)

	back := ToLab(lch)
	assert.InDelta(t, lab.L, back.L, 1e-9)
	assert.InDelta(t, lab.A, back.A, 1e-9)
	assert.InDelta(t, lab.B, back.B, 1e-9)
}

func TestLChAchromatic(t *testing.T) {
	assert.Equal(t, LCh{L: 42}, ToLCh(Lab{L: 42}))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", Version())
}
