// Package config holds the versioned configuration of the deltae command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/yzigangirova/deltae-go/cie00"
	"github.com/yzigangirova/deltae-go/cie94"
	"github.com/yzigangirova/deltae-go/cmc"
)

// Version indicates the version of the Config struct.
const Version = "v1"

// Metric names, in the order the command prints them.
const (
	MetricCIE76         = "cie76"
	MetricCIE94Graphic  = "cie94g"
	MetricCIE94Textiles = "cie94t"
	MetricCIE00         = "cie00"
	MetricCIE00Yang     = "cie00y"
	MetricCMC11         = "cmc11"
	MetricCMC21         = "cmc21"
	MetricBFD           = "bfd"
)

// Metrics lists every known metric name.
var Metrics = []string{
	MetricCIE76,
	MetricCIE94Graphic,
	MetricCIE94Textiles,
	MetricCIE00,
	MetricCIE00Yang,
	MetricCMC11,
	MetricCMC21,
	MetricBFD,
}

var errMissingVersion = errors.New("missing version field")

// Config selects the metrics to report and optional custom weights for the
// parameterised formulas. A nil weight block means no custom line is printed
// for that formula.
type Config struct {
	Version string        `json:"version"`
	Metrics []string      `json:"metrics,omitempty"`
	CIE94   *cie94.Params `json:"cie94,omitempty"`
	CIE00   *cie00.Params `json:"cie00,omitempty"`
	CMC     *cmc.Params   `json:"cmc,omitempty"`
}

// Default returns a Config reporting every metric with no custom weights.
func Default() *Config {
	return &Config{
		Version: Version,
		Metrics: slices.Clone(Metrics),
	}
}

// Load parses the config file at path.
func Load(path string) (*Config, error) {
	reader, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer reader.Close()

	config, err := Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return config, nil
}

// Parse reads a config as either YAML or JSON.
func Parse(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}
	if config.Version == "" {
		return nil, errMissingVersion
	}
	if config.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", config.Version)
	}
	if len(config.Metrics) == 0 {
		config.Metrics = slices.Clone(Metrics)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that every selected metric is known.
func (c *Config) Validate() error {
	for _, m := range c.Metrics {
		if !slices.Contains(Metrics, m) {
			return fmt.Errorf("unknown metric %q (known: %s)", m, strings.Join(Metrics, ", "))
		}
	}
	return nil
}

// ParseWeights parses n comma-separated weights such as "1,0.045,0.015".
func ParseWeights(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: expected %d comma-separated weights, got %d", s, n, len(fields))
	}
	weights := make([]float64, n)
	for i, f := range fields {
		w, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		weights[i] = w
	}
	return weights, nil
}

// SetCIE94 sets custom CIE94 weights from a "l,c,h" string.
func (c *Config) SetCIE94(s string) error {
	w, err := ParseWeights(s, 3)
	if err != nil {
		return err
	}
	c.CIE94 = &cie94.Params{L: w[0], C: w[1], H: w[2]}
	return nil
}

// SetCIE00 sets custom CIEDE2000 weights from a "l,c,h" string.
func (c *Config) SetCIE00(s string) error {
	w, err := ParseWeights(s, 3)
	if err != nil {
		return err
	}
	c.CIE00 = &cie00.Params{L: w[0], C: w[1], H: w[2]}
	return nil
}

// SetCMC sets custom CMC weights from an "l,c" string.
func (c *Config) SetCMC(s string) error {
	w, err := ParseWeights(s, 2)
	if err != nil {
		return err
	}
	c.CMC = &cmc.Params{L: w[0], C: w[1]}
	return nil
}
