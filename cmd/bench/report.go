package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"fortio.org/fortio/stats"
	json "github.com/goccy/go-json"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"

	"github.com/geseq/objpool"
)

var percentiles = []float64{50, 90, 99, 99.9}

// Report is the outcome of one benchmark run.
type Report struct {
	Name      string           `json:"name"`
	Workers   int              `json:"workers"`
	Batch     int              `json:"batch"`
	Elapsed   string           `json:"elapsed"`
	Ops       uint64           `json:"ops"`
	OpsPerSec float64          `json:"ops_per_sec"`
	Latency   Latency          `json:"latency_ns"`
	Len       int              `json:"len"`
	Capacity  int              `json:"capacity"`
	InUse     int              `json:"in_use"`
	Stats     objpool.Stats    `json:"stats"`
	Metrics   map[string]int64 `json:"metrics"`
}

// Latency summarises the per-borrow latency histogram in nanoseconds.
type Latency struct {
	Count       int64              `json:"count"`
	Min         float64            `json:"min"`
	Max         float64            `json:"max"`
	Avg         float64            `json:"avg"`
	StdDev      float64            `json:"stddev"`
	Percentiles map[string]float64 `json:"percentiles"`
}

func newReport(cfg Config, elapsed time.Duration, ops uint64, h *stats.Histogram, p *objpool.Pool[prices], metrics map[string]int64) *Report {
	data := h.Export().CalcPercentiles(percentiles)

	lat := Latency{
		Count:       data.Count,
		Min:         data.Min,
		Max:         data.Max,
		Avg:         data.Avg,
		StdDev:      data.StdDev,
		Percentiles: make(map[string]float64, len(data.Percentiles)),
	}
	for _, pct := range data.Percentiles {
		lat.Percentiles["p"+strconv.FormatFloat(pct.Percentile, 'f', -1, 64)] = pct.Value
	}

	var rate float64
	if s := elapsed.Seconds(); s > 0 {
		rate = float64(ops) / s
	}

	return &Report{
		Name:      cfg.Name,
		Workers:   cfg.Workers,
		Batch:     cfg.Batch,
		Elapsed:   elapsed.String(),
		Ops:       ops,
		OpsPerSec: rate,
		Latency:   lat,
		Len:       p.Len(),
		Capacity:  p.Cap(),
		InUse:     p.InUse(),
		Stats:     p.Stats(),
		Metrics:   metrics,
	}
}

// collectMetrics reads the pool instruments once and flattens them by name.
func collectMetrics(reader *sdkmetric.ManualReader) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					out[m.Name] += dp.Value
				}
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					out[m.Name] += dp.Value
				}
			}
		}
	}
	return out, nil
}

func (r *Report) writeJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func (r *Report) log(log *zap.Logger) {
	fields := []zap.Field{
		zap.String("pool", r.Name),
		zap.Int("workers", r.Workers),
		zap.String("elapsed", r.Elapsed),
		zap.Uint64("ops", r.Ops),
		zap.Float64("ops/s", r.OpsPerSec),
		zap.Int64("samples", r.Latency.Count),
		zap.Float64("avg_ns", r.Latency.Avg),
		zap.Float64("max_ns", r.Latency.Max),
	}
	for _, p := range percentiles {
		k := "p" + strconv.FormatFloat(p, 'f', -1, 64)
		fields = append(fields, zap.Float64(k+"_ns", r.Latency.Percentiles[k]))
	}
	fields = append(fields,
		zap.Uint64("hits", r.Stats.Hits),
		zap.Uint64("misses", r.Stats.Misses),
		zap.Uint64("discarded", r.Stats.Discarded),
		zap.Int("len", r.Len),
		zap.Int("in_use", r.InUse),
	)
	log.Info("benchmark finished", fields...)
}
