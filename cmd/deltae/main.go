// Command deltae prints the colour differences between two sRGB colours.
//
//	deltae '#ea4c4c' '#4cbbea'
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/yzigangirova/deltae-go"
	"github.com/yzigangirova/deltae-go/internal/config"
)

var errArgCount = errors.New("expected two arguments")

// options holds the values of the command line flags.
type options struct {
	configFile string
	metrics    cli.StringSlice
	cie94      string
	cie00      string
	cmc        string
	verbosity  int
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	opts := &options{}

	c := cli.NewApp()
	c.Name = "deltae"
	c.Usage = "print CIE76, CIE94, CIEDE2000, CMC l:c and BFD colour differences"
	c.ArgsUsage = "#RRGGBB #RRGGBB"
	c.Version = deltae.Version()
	c.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config-file",
			Usage:       "the path to a YAML or JSON config file as an alternative to command line options or environment variables",
			Destination: &opts.configFile,
			EnvVars:     []string{"DELTAE_CONFIG_FILE"},
		},
		&cli.StringSliceFlag{
			Name:        "metrics",
			Usage:       "the metrics to print (cie76, cie94g, cie94t, cie00, cie00y, cmc11, cmc21, bfd)",
			Destination: &opts.metrics,
			EnvVars:     []string{"DELTAE_METRICS"},
		},
		&cli.StringFlag{
			Name:        "cie94-weights",
			Usage:       "custom CIE94 weights as l,c,h",
			Destination: &opts.cie94,
			EnvVars:     []string{"DELTAE_CIE94_WEIGHTS"},
		},
		&cli.StringFlag{
			Name:        "cie00-weights",
			Usage:       "custom CIEDE2000 weights as l,c,h",
			Destination: &opts.cie00,
			EnvVars:     []string{"DELTAE_CIE00_WEIGHTS"},
		},
		&cli.StringFlag{
			Name:        "cmc-weights",
			Usage:       "custom CMC weights as l,c",
			Destination: &opts.cmc,
			EnvVars:     []string{"DELTAE_CMC_WEIGHTS"},
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Usage:       "klog verbosity level",
			Destination: &opts.verbosity,
			EnvVars:     []string{"DELTAE_VERBOSITY"},
		},
	}
	c.Action = func(ctx *cli.Context) error {
		return run(ctx, opts)
	}
	return c
}

func initLogging(verbosity int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	return fs.Set("v", strconv.Itoa(verbosity))
}

// loadConfig builds the config in order of precedence from (1) command line,
// (2) environment variable, (3) config file.
func loadConfig(ctx *cli.Context, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("unable to load config: %w", err)
		}
	}

	if ctx.IsSet("metrics") {
		cfg.Metrics = opts.metrics.Value()
	}
	if ctx.IsSet("cie94-weights") {
		if err := cfg.SetCIE94(opts.cie94); err != nil {
			return nil, fmt.Errorf("invalid --cie94-weights: %w", err)
		}
	}
	if ctx.IsSet("cie00-weights") {
		if err := cfg.SetCIE00(opts.cie00); err != nil {
			return nil, fmt.Errorf("invalid --cie00-weights: %w", err)
		}
	}
	if ctx.IsSet("cmc-weights") {
		if err := cfg.SetCMC(opts.cmc); err != nil {
			return nil, fmt.Errorf("invalid --cmc-weights: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseArgs(ctx *cli.Context) (deltae.RGB, deltae.RGB, error) {
	if ctx.Args().Len() != 2 {
		return deltae.RGB{}, deltae.RGB{}, errArgCount
	}
	a, err := deltae.ParseHex(ctx.Args().Get(0))
	if err != nil {
		return deltae.RGB{}, deltae.RGB{}, err
	}
	b, err := deltae.ParseHex(ctx.Args().Get(1))
	if err != nil {
		return deltae.RGB{}, deltae.RGB{}, err
	}
	return a, b, nil
}

func run(ctx *cli.Context, opts *options) error {
	if err := initLogging(opts.verbosity); err != nil {
		return fmt.Errorf("unable to set verbosity: %w", err)
	}

	a, b, err := parseArgs(ctx)
	if err != nil {
		return fmt.Errorf("%w\nusage: %s %s", err, ctx.App.Name, ctx.App.ArgsUsage)
	}

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Comparing colours", "reference", a.Hex(), "colour", b.Hex(), "metrics", cfg.Metrics)
	klog.V(2).InfoS("L*a*b* coordinates", "reference", deltae.ToLab(a), "colour", deltae.ToLab(b))

	return report(ctx.App.Writer, a, b, cfg)
}
