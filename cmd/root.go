// Package cmd wires the smoothing pipeline to the command line.
package cmd

import (
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-smooth/smooth/loess"
	"github.com/go-smooth/smooth/metrics"
	"github.com/go-smooth/smooth/pkg/errors"
	"github.com/go-smooth/smooth/pkg/log"
)

// All linker flags will be set by release infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd reads a two-column CSV of (x, y) observations, fits a local
// polynomial smoother and writes the smoothed curve as CSV.
var rootCmd = &cobra.Command{
	Use:           "smooth",
	Short:         "Smooth noisy (x, y) observations with local weighted polynomial regression.",
	Long:          `Smooth estimates the slowly-varying trend behind noisy pointwise observations using loess-style local weighted polynomial regression.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSmooth()
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("input", "-", "input CSV of x,y observations ('-' for stdin)")
	flags.String("output", "-", "output CSV of x,smoothed ('-' for stdout)")
	flags.Int("degree", 2, "local polynomial degree (0, 1 or 2)")
	flags.Float64("span", 0.75, "proportional span in (0, 1]")
	flags.Float64("bandwidth", 0, "fixed bandwidth; overrides --span when positive")
	flags.String("kernel", "", "kernel weight function (box, triweight, gaussian)")
	flags.Int("grid", 0, "evaluate on an even grid of this many points instead of the observed x values")
	flags.Bool("skip-errors", false, "emit failed query points as gaps instead of aborting")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration from flags, environment and logging.
func setup(_ *cobra.Command) error {
	viper.SetEnvPrefix("SMOOTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	log.SetupLogger(viper.GetString("log-level"))
	log.RedirectWarnings(zerolog.New(os.Stderr).With().Timestamp().Logger())
	return nil
}

// runSmooth executes the whole pipeline: read, fit, predict, write.
func runSmooth() error {
	start := time.Now()

	x, y, err := readObservations(viper.GetString("input"))
	if err != nil {
		slog.Error("failed to read observations", log.ErrAttr(err))
		return err
	}

	opts := []loess.Option{loess.WithDegree(viper.GetInt("degree"))}
	if h := viper.GetFloat64("bandwidth"); h > 0 {
		opts = append(opts, loess.WithBandwidth(h))
	} else {
		opts = append(opts, loess.WithSpan(viper.GetFloat64("span")))
	}
	if name := viper.GetString("kernel"); name != "" {
		kernel, err := loess.KernelByName(name)
		if err != nil {
			return err
		}
		opts = append(opts, loess.WithKernel(kernel))
	}

	lp := loess.New(opts...)
	if err := lp.Fit(x, y); err != nil {
		slog.Error("fit failed", log.ErrAttr(err))
		return err
	}

	queries := x
	if n := viper.GetInt("grid"); n > 1 {
		queries = evenGrid(x, n)
	}

	var curve []float64
	gaps := 0
	if viper.GetBool("skip-errors") {
		curve, err = lp.PredictWithGaps(queries)
		if err != nil {
			for _, v := range curve {
				if math.IsNaN(v) {
					gaps++
				}
			}
			slog.Warn("some query points failed and were emitted as gaps",
				slog.Int(log.GapsKey, gaps), log.ErrAttr(err))
		}
	} else {
		curve, err = lp.Predict(queries)
		if err != nil {
			slog.Error("prediction failed", log.ErrAttr(err))
			return err
		}
	}

	if err := writeCurve(viper.GetString("output"), queries, curve); err != nil {
		slog.Error("failed to write curve", log.ErrAttr(err))
		return err
	}

	attrs := []any{
		slog.String(log.ModelNameKey, "LocalPolynomial"),
		slog.String(log.OperationKey, log.OperationPredict),
		slog.Int(log.PointsKey, len(x)),
		slog.Int(log.QueriesKey, len(queries)),
		slog.Int(log.DegreeKey, viper.GetInt("degree")),
		slog.Int64(log.DurationMsKey, time.Since(start).Milliseconds()),
	}
	// The in-sample R² is only meaningful when smoothing onto the observed x
	// values without gaps.
	if len(queries) == len(x) && gaps == 0 && viper.GetInt("grid") <= 1 {
		if r2, scoreErr := metrics.R2Score(y, curve); scoreErr == nil {
			attrs = append(attrs, slog.Float64(log.R2ScoreKey, r2))
		}
	}
	slog.Info("smoothing complete", attrs...)
	return nil
}

// evenGrid spans n evenly spaced query points over the observed x range.
func evenGrid(x []float64, n int) []float64 {
	lo, hi := x[0], x[0]
	for _, v := range x {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		err = errors.Wrap(err, "smooth")
	}
	return err
}
