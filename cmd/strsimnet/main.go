// Command strsimnet builds a string similarity network from a list of
// strings and writes it as GML, node-link JSON, CSR JSON or clusters.
//
// Usage:
//
//	strsimnet -a levenshtein -m 1 -M 2 [-f gml] <strings-file|->
//
// Defaults come from internal/config (TOML file, .env, STRSIMNET_*
// variables); flags override them. Logs go to stderr, the network to stdout.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/strsimnet/input"
	"github.com/katalvlaran/strsimnet/internal/config"
	"github.com/katalvlaran/strsimnet/internal/logger"
	"github.com/katalvlaran/strsimnet/internal/logger/console"
	"github.com/katalvlaran/strsimnet/internal/progress"
	"github.com/katalvlaran/strsimnet/metric"
	"github.com/katalvlaran/strsimnet/network"
	"github.com/katalvlaran/strsimnet/sparse"
)

const logPrefix = "strsimnet"

var errUsage = errors.New("usage: strsimnet [flags] <strings-file|->")

func main() {
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{Prefix: logPrefix}))

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("strsimnet failed", "err", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs, debug := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Level:  cfg.LogLevel,
		Output: stderr,
		Prefix: logPrefix,
	}))

	var readOpts []input.Option
	if cfg.Normalize {
		readOpts = append(readOpts, input.WithNormalizeNFC())
	}
	strs, err := input.ReadFile(fs.Arg(0), readOpts...)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	if err := generate(cfg, strs, out); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func newFlagSet(cfg *config.Config, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("strsimnet", flag.ContinueOnError)
	fs.SetOutput(stderr)

	algHelp := "string similarity algorithm: " + strings.Join(metric.Names(), ", ")
	fs.StringVar(&cfg.Algorithm, "a", cfg.Algorithm, algHelp)
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, algHelp)
	fs.StringVar(&cfg.Min, "m", cfg.Min, "strings must be >= this distance to be linked")
	fs.StringVar(&cfg.Min, "min", cfg.Min, "strings must be >= this distance to be linked")
	fs.StringVar(&cfg.Max, "M", cfg.Max, "strings must be <= this distance to be linked")
	fs.StringVar(&cfg.Max, "max", cfg.Max, "strings must be <= this distance to be linked")
	formatHelp := "output format: " + strings.Join(config.Formats, ", ")
	fs.StringVar(&cfg.Format, "f", cfg.Format, formatHelp)
	fs.StringVar(&cfg.Format, "format", cfg.Format, formatHelp)
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel rows (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.Normalize, "normalize", cfg.Normalize, "apply Unicode NFC to every input line")
	fs.BoolVar(&cfg.Accelerate, "fst", cfg.Accelerate,
		fmt.Sprintf("use the automaton index for levenshtein with max <= %d", sparse.FavorableAutomatonDistance))
	debug := fs.Bool("debug", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage.Error())
		fs.PrintDefaults()
	}

	return fs, debug
}

// generate builds the matrix for the configured algorithm and writes it.
func generate(cfg config.Config, strs []string, w io.Writer) error {
	alg, err := metric.Lookup(cfg.Algorithm)
	if err != nil {
		return err
	}

	opts := []sparse.Option{
		sparse.WithProgress(progress.New("rows finished", 10).Hook),
	}
	if cfg.Workers > 0 {
		opts = append(opts, sparse.WithWorkers(cfg.Workers))
	}

	logger.Info("building network",
		"algorithm", alg.Name,
		"strings", len(strs),
		"pairs", sparse.PairCount(len(strs)),
		"min", cfg.Min,
		"max", cfg.Max)
	start := time.Now()

	switch alg.Family {
	case metric.FamilyInteger:
		lo, hi, err := metric.ParseIntBounds(cfg.Min, cfg.Max)
		if err != nil {
			return err
		}
		coo, err := buildInteger(cfg, alg, strs, lo, hi, opts)
		if err != nil {
			return err
		}
		logger.Info("matrix built", "links", coo.Len(), "elapsed", time.Since(start).Round(time.Millisecond))

		return emit(coo, strs, cfg.Format, w)
	default:
		lo, hi, err := metric.ParseUnitBounds(cfg.Min, cfg.Max)
		if err != nil {
			return err
		}
		coo, err := sparse.Build(strs, lo, hi, sparse.Oracle[float64](alg.Unit), opts...)
		if err != nil {
			return err
		}
		logger.Info("matrix built", "links", coo.Len(), "elapsed", time.Since(start).Round(time.Millisecond))

		return emit(coo, strs, cfg.Format, w)
	}
}

func buildInteger(cfg config.Config, alg metric.Algorithm, strs []string, lo, hi int, opts []sparse.Option) (*sparse.Coo[int], error) {
	if cfg.Accelerate {
		switch {
		case alg.Name != metric.NameLevenshtein:
			logger.Warn("automaton index supports levenshtein only, using pairwise build", "algorithm", alg.Name)
		case hi > sparse.FavorableAutomatonDistance:
			logger.Warn("max distance too large for the automaton index, using pairwise build",
				"max", hi, "limit", sparse.FavorableAutomatonDistance)
		default:
			logger.Debug("using automaton index")
			return sparse.BuildLevenshtein(strs, lo, hi, opts...)
		}
	}

	return sparse.Build(strs, lo, hi, sparse.Oracle[int](alg.Int), opts...)
}

// emit consumes coo and writes it in format.
func emit[D sparse.Distance](coo *sparse.Coo[D], strs []string, format string, w io.Writer) error {
	if format == config.FormatCSR {
		m, err := coo.ToCSR(len(strs))
		if err != nil {
			return err
		}

		return m.WriteJSON(w)
	}

	g, err := network.FromCoo(coo, strs)
	if err != nil {
		return err
	}
	switch format {
	case config.FormatGML:
		return g.WriteGMLPretty(w)
	case config.FormatGMLCompact:
		return g.WriteGMLCompact(w)
	case config.FormatJSON:
		return g.WriteNodeLinkJSON(w)
	case config.FormatClusters:
		return g.WriteClustersJSON(w)
	default:
		return fmt.Errorf("format %q: %w", format, config.ErrInvalid)
	}
}
