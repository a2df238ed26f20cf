package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yzigangirova/deltae-go/cie00"
	"github.com/yzigangirova/deltae-go/cie94"
	"github.com/yzigangirova/deltae-go/cmc"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		input       string
		want        *Config
		wantErr     bool
	}{
		{
			description: "empty",
			input:       "",
			wantErr:     true,
		},
		{
			description: "missing version",
			input:       "metrics: [cie76]",
			wantErr:     true,
		},
		{
			description: "unknown version",
			input:       "version: v2",
			wantErr:     true,
		},
		{
			description: "version only",
			input:       "version: v1",
			want:        Default(),
		},
		{
			description: "unknown metric",
			input: `version: v1
metrics: [cie76, cie2000]`,
			wantErr: true,
		},
		{
			description: "yaml with weights",
			input: `version: v1
metrics:
  - cie00
  - cmc21
cie94:
  l: 1
  c: 0.05
  h: 0.02
cie00:
  l: 2
  c: 1
  h: 1
cmc:
  l: 1.5
  c: 1`,
			want: &Config{
				Version: Version,
				Metrics: []string{MetricCIE00, MetricCMC21},
				CIE94:   &cie94.Params{L: 1, C: 0.05, H: 0.02},
				CIE00:   &cie00.Params{L: 2, C: 1, H: 1},
				CMC:     &cmc.Params{L: 1.5, C: 1},
			},
		},
		{
			description: "json",
			input:       `{"version": "v1", "metrics": ["bfd"], "cmc": {"l": 2, "c": 1}}`,
			want: &Config{
				Version: Version,
				Metrics: []string{MetricBFD},
				CMC:     &cmc.Params{L: 2, C: 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			config, err := Parse(strings.NewReader(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, config)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deltae.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v1\nmetrics: [cie94t]\n"), 0o600))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{MetricCIE94Textiles}, config.Metrics)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("1, 0.045,0.015", 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.045, 0.015}, w)

	_, err = ParseWeights("1,1", 3)
	require.Error(t, err)

	_, err = ParseWeights("1,x", 2)
	require.Error(t, err)
}

func TestSetWeights(t *testing.T) {
	config := Default()
	require.NoError(t, config.SetCIE94("2,0.048,0.014"))
	require.NoError(t, config.SetCIE00("0.65,1,4"))
	require.NoError(t, config.SetCMC("2,1"))

	require.Equal(t, &cie94.Params{L: 2, C: 0.048, H: 0.014}, config.CIE94)
	require.Equal(t, &cie00.Params{L: 0.65, C: 1, H: 4}, config.CIE00)
	require.Equal(t, &cmc.Params{L: 2, C: 1}, config.CMC)

	require.Error(t, config.SetCMC("1,1,1"))
}

func TestValidate(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())

	config.Metrics = append(config.Metrics, "cie2000")
	require.Error(t, config.Validate())
}
