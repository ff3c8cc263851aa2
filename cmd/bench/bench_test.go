package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, opts, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)

	def := defaultConfig()
	assert.Equal(t, def.Capacity, cfg.Capacity)
	assert.Equal(t, def.Batch, cfg.Batch)
	assert.Equal(t, def.Lower, cfg.Lower)
	assert.False(t, opts.json)
}

func TestParseArgsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: quotes
workers: 3
duration: 2s
capacity: 64
batch: 8
lower: "10"
upper: "20"
reclaim: true
report_every: 0s
`), 0o644))

	cfg, opts, err := parseArgs([]string{"-config", path, "-cap", "128", "-json"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "quotes", cfg.Name)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, 128, cfg.Capacity, "explicit flags win over the file")
	assert.Equal(t, 8, cfg.Batch)
	assert.Equal(t, "10", cfg.Lower)
	assert.True(t, cfg.Reclaim)
	assert.Zero(t, cfg.Report)
	assert.True(t, opts.json)
}

func TestParseArgsErrors(t *testing.T) {
	_, _, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.Error(t, err)

	_, _, err = parseArgs([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := defaultConfig()

	b, err := base.validate()
	require.NoError(t, err)
	assert.True(t, b.lower.LessThan(b.upper))

	for name, mutate := range map[string]func(*Config){
		"workers":  func(c *Config) { c.Workers = 0 },
		"capacity": func(c *Config) { c.Capacity = -1 },
		"batch":    func(c *Config) { c.Batch = 0 },
		"duration": func(c *Config) { c.Duration = 0 },
		"bounds":   func(c *Config) { c.Lower, c.Upper = "100", "50" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			_, err := cfg.validate()
			assert.Error(t, err)
		})
	}
}

func TestWorkerStaysInBounds(t *testing.T) {
	cfg := defaultConfig()
	b, err := cfg.validate()
	require.NoError(t, err)

	p := newPool(cfg, zap.NewNop())
	w := newWorker(p, b, 4, 1)
	for i := 0; i < 10_000; i++ {
		w.walk()
		assert.False(t, w.bid.LessThan(b.lower.Sub(b.spread)))
		assert.False(t, w.bid.GreaterThan(b.upper.Add(b.spread)))
	}

	w.step()
	assert.EqualValues(t, 1, w.ops)
	assert.EqualValues(t, 1, w.hist.Export().Count)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0, p.InUse())

	buf, ok := p.TryTake()
	require.True(t, ok)
	assert.Equal(t, 0, buf.Value().Len())
	assert.GreaterOrEqual(t, buf.Value().Cap(), 8)
	buf.Release()
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Workers = 4
	cfg.Duration = 100 * time.Millisecond
	cfg.Capacity = 8
	cfg.Batch = 4
	cfg.Report = 20 * time.Millisecond
	cfg.Seed = 42

	report, err := run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Positive(t, report.Ops)
	assert.EqualValues(t, report.Ops, report.Latency.Count)
	assert.Equal(t, 0, report.InUse)
	assert.LessOrEqual(t, report.Len, cfg.Capacity)
	assert.Equal(t, report.Ops, report.Stats.Hits+report.Stats.Misses)
	assert.Equal(t, report.Ops, report.Stats.Returned+report.Stats.Discarded)
	assert.Contains(t, report.Latency.Percentiles, "p99")

	assert.EqualValues(t, cfg.Capacity, report.Metrics["objpool.capacity"])
	assert.EqualValues(t, 0, report.Metrics["objpool.in_use"])
	assert.EqualValues(t, report.Stats.Hits, report.Metrics["objpool.hits"])

	var buf bytes.Buffer
	require.NoError(t, report.writeJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Ops, decoded.Ops)
	assert.Equal(t, report.Stats, decoded.Stats)

	assert.NotPanics(t, func() { report.log(zap.NewNop()) })
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Workers = 0
	_, err := run(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
