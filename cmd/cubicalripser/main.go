// Command cubicalripser computes the cubical persistence diagram of a
// 2-, 3- or 4-dimensional image stored in DIPHA or Perseus format.
//
// Usage:
//
//	cubicalripser [flags] <image>
//
// The diagram goes to -output (".csv", ".dipha", optionally ".zst" or
// ".lz4"), or to stdout as CSV when -output is empty.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cubicalripser/cubical"
	"github.com/katalvlaran/cubicalripser/diagram"
	"github.com/katalvlaran/cubicalripser/gridio"
)

// DefaultThreshold is the "never born" value used when -threshold is unset.
const DefaultThreshold = 99999

// errMismatch reports that -verify found the strategies disagreeing.
var errMismatch = errors.New("link_find and compute_pairs disagree")

type config struct {
	input     string
	format    gridio.Format
	threshold float64
	method    cubical.Method
	output    string
	verify    bool
	summary   bool
	logLevel  slog.Level
	logJSON   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("cubicalripser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		format    = fs.String("format", "auto", "input format: auto, dipha or perseus")
		threshold = fs.Float64("threshold", DefaultThreshold, "values at or above this never enter the filtration")
		method    = fs.String("method", "link_find", "reduction strategy: link_find or compute_pairs")
		output    = fs.String("output", "", "diagram file (.csv, .dipha, optional .zst/.lz4); stdout CSV if empty")
		verify    = fs.Bool("verify", false, "run both strategies and fail if their diagrams differ")
		summary   = fs.Bool("summary", false, "print a per-dimension summary to stderr")
		logLevel  = fs.String("log-level", "warn", "log level: debug, info, warn or error")
		logJSON   = fs.Bool("log-json", false, "log JSON records instead of text")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: cubicalripser [flags] <image>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}

	cfg := config{
		input:     fs.Arg(0),
		threshold: *threshold,
		output:    *output,
		verify:    *verify,
		summary:   *summary,
		logJSON:   *logJSON,
	}
	var err error
	if cfg.format, err = gridio.ParseFormat(*format); err != nil {
		return config{}, err
	}
	if cfg.method, err = cubical.ParseMethod(*method); err != nil {
		return config{}, err
	}
	if err = cfg.logLevel.UnmarshalText([]byte(strings.ToLower(*logLevel))); err != nil {
		return config{}, fmt.Errorf("log level %q: %w", *logLevel, err)
	}

	return cfg, nil
}

func newLogger(cfg config, stderr io.Writer) *cubical.Logger {
	if cfg.logJSON {
		return cubical.NewJSONLogger(stderr, cfg.logLevel)
	}

	return cubical.NewTextLogger(stderr, cfg.logLevel)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(cfg, stderr).WithRun(uuid.NewString())

	start := time.Now()
	im, err := gridio.Open(cfg.input, cfg.format, cfg.threshold)
	if err != nil {
		return err
	}
	lo, hi := im.Range()
	log.Info("image loaded", "path", cfg.input, "extents", im.Extents, "min", lo, "max", hi, "elapsed", time.Since(start))

	g, err := im.Grid(cfg.threshold)
	if err != nil {
		return err
	}

	pairs, err := compute(g, cfg, log)
	if err != nil {
		return err
	}

	if cfg.summary {
		for _, s := range diagram.Summarize(pairs) {
			fmt.Fprintf(stderr, "dim %2d: %6d pairs  total %-10g max %-10g mean %g\n", s.Dim, s.Count, s.Total, s.Max, s.Mean)
		}
	}

	if cfg.output == "" {
		return diagram.WriteCSV(stdout, pairs)
	}
	if err := diagram.Save(cfg.output, pairs); err != nil {
		return err
	}
	log.Info("diagram written", "path", cfg.output, "pairs", len(pairs))

	return nil
}

// compute runs the selected strategy; with -verify both strategies run
// concurrently and their diagrams must match.
func compute(g *cubical.Grid, cfg config, log *cubical.Logger) ([]cubical.Pair, error) {
	if !cfg.verify {
		return cubical.Compute(g, cubical.WithMethod(cfg.method), cubical.WithLogger(log))
	}

	methods := []cubical.Method{cubical.LinkFind, cubical.ComputePairs}
	results := make([][]cubical.Pair, len(methods))
	var eg errgroup.Group
	for i, m := range methods {
		eg.Go(func() error {
			pairs, err := cubical.Compute(g, cubical.WithMethod(m), cubical.WithLogger(log))
			results[i] = pairs
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if !diagram.Equal(results[0], results[1]) {
		return nil, fmt.Errorf("%d vs %d pairs: %w", len(results[0]), len(results[1]), errMismatch)
	}
	log.Info("strategies agree", "pairs", len(results[0]))

	if cfg.method == cubical.ComputePairs {
		return results[1], nil
	}

	return results[0], nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "cubicalripser:", err)
		os.Exit(1)
	}
}
