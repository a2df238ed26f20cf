package main

import (
	"fmt"
	"io"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/bfd"
	"github.com/yzigangirova/deltae-go/cie00"
	"github.com/yzigangirova/deltae-go/cie76"
	"github.com/yzigangirova/deltae-go/cie94"
	"github.com/yzigangirova/deltae-go/cmc"
	"github.com/yzigangirova/deltae-go/internal/config"
)

// metric is one printed line of the report.
type metric struct {
	label string
	note  string
	diff  func(a, b deltae.Colour) float64
}

var metrics = map[string]metric{
	config.MetricCIE76: {
		label: "ΔE_76 ",
		note:  "Euclidean distance",
		diff:  cie76.Diff,
	},
	config.MetricCIE94Graphic: {
		label: "ΔE_94g",
		note:  "parameters for graphic arts",
		diff: func(a, b deltae.Colour) float64 {
			return cie94.Diff(a, b, cie94.Graphic())
		},
	},
	config.MetricCIE94Textiles: {
		label: "ΔE_94t",
		note:  "parameters for textiles",
		diff: func(a, b deltae.Colour) float64 {
			return cie94.Diff(a, b, cie94.Textiles())
		},
	},
	config.MetricCIE00: {
		label: "ΔE_00 ",
		note:  "default parameters",
		diff:  cie00.Diff,
	},
	config.MetricCIE00Yang: {
		label: "ΔE_00y",
		note:  "parameters by Yang et al",
		diff: func(a, b deltae.Colour) float64 {
			return cie00.DiffWithParams(a, b, cie00.Yang2012())
		},
	},
	config.MetricCMC11: {
		label: "ΔE_1:1",
		note:  "CMC 1:1",
		diff: func(a, b deltae.Colour) float64 {
			return cmc.Diff(a, b, cmc.LC11())
		},
	},
	config.MetricCMC21: {
		label: "ΔE_2:1",
		note:  "CMC 2:1",
		diff: func(a, b deltae.Colour) float64 {
			return cmc.Diff(a, b, cmc.LC21())
		},
	},
	config.MetricBFD: {
		label: "ΔE_BFD",
		note:  "BFD 1:1",
		diff:  bfd.Diff,
	},
}

func printLine(w io.Writer, label string, value float64, note string) error {
	_, err := fmt.Fprintf(w, "%s = %11.7f  (%s)\n", label, value, note)
	return err
}

// report writes the selected metrics for the pair, followed by one line per
// custom weight block in cfg.
func report(w io.Writer, a, b deltae.Colour, cfg *config.Config) error {
	for _, name := range cfg.Metrics {
		m, ok := metrics[name]
		if !ok {
			return fmt.Errorf("unknown metric %q", name)
		}
		if err := printLine(w, m.label, m.diff(a, b), m.note); err != nil {
			return err
		}
	}
	if p := cfg.CIE94; p != nil {
		note := fmt.Sprintf("CIE94 l=%g c=%g h=%g", p.L, p.C, p.H)
		if err := printLine(w, "ΔE_94 ", cie94.Diff(a, b, *p), note); err != nil {
			return err
		}
	}
	if p := cfg.CIE00; p != nil {
		note := fmt.Sprintf("CIEDE2000 l=%g c=%g h=%g", p.L, p.C, p.H)
		if err := printLine(w, "ΔE_00 ", cie00.DiffWithParams(a, b, *p), note); err != nil {
			return err
		}
	}
	if p := cfg.CMC; p != nil {
		label := fmt.Sprintf("ΔE_%g:%g", p.L, p.C)
		if err := printLine(w, label, cmc.Diff(a, b, *p), "CMC custom"); err != nil {
			return err
		}
	}
	return nil
}
