package testutil

import "github.com/yzigangirova/deltae-go"

// SharmaPairs are the 34 colour pairs of Table 1 of Sharma, Wu and Dalal,
// "The CIEDE2000 Color-Difference Formula: Implementation Notes,
// Supplementary Test Data, and Mathematical Observations" (2005).
var SharmaPairs = [34][2]deltae.Lab{
	{{L: 100.0, A: 0.0050, B: -0.0100}, {L: 0.0000, A: 0.0000, B: 0.0000}},
	{{L: 50.0000, A: 2.6772, B: -79.7751}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: 3.1571, B: -77.2803}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: 2.8361, B: -74.0200}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: -1.3802, B: -84.2814}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: -1.1848, B: -84.8006}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: -0.9009, B: -85.5211}, {L: 50.0000, A: 0.0000, B: -82.7485}},
	{{L: 50.0000, A: 0.0000, B: 0.0000}, {L: 50.0000, A: -1.0000, B: 2.0000}},
	{{L: 50.0000, A: -1.0000, B: 2.0000}, {L: 50.0000, A: 0.0000, B: 0.0000}},
	{{L: 50.0000, A: 2.4900, B: -0.0010}, {L: 50.0000, A: -2.4900, B: 0.0009}},
	{{L: 50.0000, A: 2.4900, B: -0.0010}, {L: 50.0000, A: -2.4900, B: 0.0010}},
	{{L: 50.0000, A: 2.4900, B: -0.0010}, {L: 50.0000, A: -2.4900, B: 0.0011}},
	{{L: 50.0000, A: 2.4900, B: -0.0010}, {L: 50.0000, A: -2.4900, B: 0.0012}},
	{{L: 50.0000, A: -0.0010, B: 2.4900}, {L: 50.0000, A: 0.0009, B: -2.4900}},
	{{L: 50.0000, A: -0.0010, B: 2.4900}, {L: 50.0000, A: 0.0011, B: -2.4900}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 50.0000, A: 0.0000, B: -2.5000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 73.0000, A: 25.0000, B: -18.0000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 61.0000, A: -5.0000, B: 29.0000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 56.0000, A: -27.0000, B: -3.0000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 58.0000, A: 24.0000, B: 15.0000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 50.0000, A: 3.1736, B: 0.5854}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 50.0000, A: 3.2972, B: 0.0000}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 50.0000, A: 1.8634, B: 0.5757}},
	{{L: 50.0000, A: 2.5000, B: 0.0000}, {L: 50.0000, A: 3.2592, B: 0.3350}},
	{{L: 60.2574, A: -34.0099, B: 36.2677}, {L: 60.4626, A: -34.1751, B: 39.4387}},
	{{L: 63.0109, A: -31.0961, B: -5.8663}, {L: 62.8187, A: -29.7946, B: -4.0864}},
	{{L: 61.2901, A: 3.7196, B: -5.3901}, {L: 61.4292, A: 2.2480, B: -4.9620}},
	{{L: 35.0831, A: -44.1164, B: 3.7933}, {L: 35.0232, A: -40.0716, B: 1.5901}},
	{{L: 22.7233, A: 20.0904, B: -46.6940}, {L: 23.0331, A: 14.9730, B: -42.5619}},
	{{L: 36.4612, A: 47.8580, B: 18.3852}, {L: 36.2715, A: 50.5065, B: 21.2231}},
	{{L: 90.8027, A: -2.0831, B: 1.4410}, {L: 91.1528, A: -1.6435, B: 0.0447}},
	{{L: 90.9257, A: -0.5406, B: -0.9208}, {L: 88.6381, A: -0.8985, B: -0.7239}},
	{{L: 6.7747, A: -0.2908, B: -2.4247}, {L: 5.8714, A: -0.0985, B: -2.2286}},
	{{L: 2.0776, A: 0.0795, B: -1.1350}, {L: 0.9033, A: -0.0636, B: -0.5514}},
}

// SharmaCases pairs each of SharmaPairs with the expected difference.
func SharmaCases(want [34]float64) []Case {
	cases := make([]Case, len(SharmaPairs))
	for i, p := range SharmaPairs {
		cases[i] = Case{Want: want[i], Reference: p[0], Colour: p[1]}
	}
	return cases
}
