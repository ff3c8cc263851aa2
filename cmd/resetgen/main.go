// Command resetgen writes Reset methods.
//
// With -tuples N it renders the Tuple1..TupleN aggregates of the reset
// package. Otherwise it walks -dir and writes a reset.gen.go file next to every
// struct annotated with
//
//	// generate:reset
//
// Generated methods keep allocations: slices are truncated, maps cleared,
// and fields of named types are reset through their own Reset method.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	tuples := flag.Int("tuples", 0, "generate Tuple1..TupleN aggregates")
	pkg := flag.String("pkg", "reset", "package name of the tuple file")
	out := flag.String("o", "tuple_gen.go", "output file for -tuples")
	dir := flag.String("dir", ".", "root directory scanned for annotated structs")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*tuples, *pkg, *out, *dir, log); err != nil {
		log.Fatal("resetgen failed", zap.Error(err))
	}
}

func run(tuples int, pkg, out, dir string, log *zap.Logger) error {
	if tuples == 0 {
		return generateDir(dir, log)
	}

	src, err := generateTuples(pkg, tuples)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("generated tuples", zap.String("file", out), zap.Int("arity", tuples))

	return nil
}
