package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	decimal "github.com/geseq/udecimal"
	"gopkg.in/yaml.v3"
)

// Config drives a benchmark run. It can be loaded from YAML and overridden by
// flags.
type Config struct {
	Name     string        `yaml:"name"`
	Workers  int           `yaml:"workers"`
	Duration time.Duration `yaml:"duration"`
	Capacity int           `yaml:"capacity"`
	Prefill  int           `yaml:"prefill"`
	Batch    int           `yaml:"batch"`
	Seed     int64         `yaml:"seed"`
	Lower    string        `yaml:"lower"`
	Upper    string        `yaml:"upper"`
	Spread   string        `yaml:"spread"`
	Reclaim  bool          `yaml:"reclaim"`
	NoGC     bool          `yaml:"no_gc"`
	Lock     bool          `yaml:"lock_threads"`
	Report   time.Duration `yaml:"report_every"`
}

func defaultConfig() Config {
	return Config{
		Name:     "bench",
		Workers:  runtime.GOMAXPROCS(0),
		Duration: 10 * time.Second,
		Capacity: 1024,
		Batch:    16,
		Seed:     time.Now().UnixNano(),
		Lower:    "50.0",
		Upper:    "100.0",
		Spread:   "0.25",
		Report:   10 * time.Second,
	}
}

func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// bounds is the parsed price range of the random walk.
type bounds struct {
	lower, upper, spread decimal.Decimal
}

// parseDecimal reports malformed input as an error instead of panicking.
func parseDecimal(s string) (d decimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid decimal %q: %v", s, r)
		}
	}()
	return decimal.MustParse(s), nil
}

func (c Config) validate() (bounds, error) {
	var b bounds
	switch {
	case c.Workers <= 0:
		return b, errors.New("workers must be positive")
	case c.Capacity <= 0:
		return b, errors.New("capacity must be positive")
	case c.Batch <= 0:
		return b, errors.New("batch must be positive")
	case c.Duration <= 0:
		return b, errors.New("duration must be positive")
	}

	var err error
	if b.lower, err = parseDecimal(c.Lower); err != nil {
		return b, fmt.Errorf("lower bound: %w", err)
	}
	if b.upper, err = parseDecimal(c.Upper); err != nil {
		return b, fmt.Errorf("upper bound: %w", err)
	}
	if b.spread, err = parseDecimal(c.Spread); err != nil {
		return b, fmt.Errorf("spread: %w", err)
	}
	if !b.lower.LessThan(b.upper) {
		return b, fmt.Errorf("lower bound %s must be below upper bound %s", c.Lower, c.Upper)
	}

	return b, nil
}
