// Command bench measures pool throughput and borrow latency under a
// concurrent random-walk quote workload.
//
//	bench -duration 30s -workers 8 -cap 256 -batch 32
//	bench -config bench.yaml -json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cliOptions struct {
	json    bool
	verbose bool
}

// parseArgs builds the run config. Values come from defaults, then the
// -config file, then any flag given explicitly.
func parseArgs(args []string, stderr io.Writer) (Config, cliOptions, error) {
	cfg := defaultConfig()
	var opts cliOptions

	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("config", "", "YAML config file")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "pool name")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "benchmark duration")
	fs.IntVar(&cfg.Capacity, "cap", cfg.Capacity, "pool capacity")
	fs.IntVar(&cfg.Prefill, "prefill", cfg.Prefill, "objects created up front")
	fs.IntVar(&cfg.Batch, "batch", cfg.Batch, "quotes written per borrow")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "rand seed")
	fs.StringVar(&cfg.Lower, "l", cfg.Lower, "lower bound")
	fs.StringVar(&cfg.Upper, "u", cfg.Upper, "upper bound")
	fs.StringVar(&cfg.Spread, "m", cfg.Spread, "min spread")
	fs.BoolVar(&cfg.Reclaim, "reclaim", cfg.Reclaim, "reclaim unreleased objects")
	fs.BoolVar(&cfg.NoGC, "nogc", cfg.NoGC, "disable the garbage collector")
	fs.BoolVar(&cfg.Lock, "lock", cfg.Lock, "lock each worker to an OS thread")
	fs.DurationVar(&cfg.Report, "p", cfg.Report, "progress interval, 0 to disable")
	fs.BoolVar(&opts.json, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}

	if *path != "" {
		set := make(map[string]string)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

		if err := loadConfig(*path, &cfg); err != nil {
			return cfg, opts, err
		}
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return cfg, opts, err
			}
		}
	}

	return cfg, opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	cfg, opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := run(ctx, cfg, log)
	if err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}

	if opts.json {
		if err := report.writeJSON(os.Stdout); err != nil {
			log.Fatal("write report", zap.Error(err))
		}
		return
	}
	report.log(log)
}
