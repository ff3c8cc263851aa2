package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"fortio.org/fortio/stats"
	decimal "github.com/geseq/udecimal"
	"github.com/loov/hrtime"
	"github.com/sourcegraph/conc"
	concpool "github.com/sourcegraph/conc/pool"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"github.com/geseq/objpool"
	"github.com/geseq/objpool/reset"
	"github.com/geseq/objpool/telemetry"
)

// prices is the pooled scratch buffer a worker fills on every step.
type prices = reset.Slice[decimal.Decimal]

// checkEvery is how many steps a worker runs between context checks.
const checkEvery = 64

type worker struct {
	pool  *objpool.Pool[prices]
	rand  *rand.Rand
	b     bounds
	batch int
	hist  *stats.Histogram

	bid, ask decimal.Decimal
	ops      uint64
}

func newWorker(p *objpool.Pool[prices], b bounds, batch int, seed int64) *worker {
	bid := b.lower.Add(b.upper).Div(decimal.NewI(2, 0))
	return &worker{
		pool:  p,
		rand:  rand.New(rand.NewSource(seed)),
		b:     b,
		batch: batch,
		hist:  stats.NewHistogram(0, 1),
		bid:   bid,
		ask:   bid.Sub(b.spread),
	}
}

func (w *worker) walk() {
	dec := w.rand.Intn(10) < 5

	w.bid, w.ask = getPrice(w.bid, w.ask, w.b.spread, dec)
	if w.bid.LessThan(w.b.lower) {
		w.bid, w.ask = getPrice(w.bid, w.ask, w.b.spread, false)
	} else if w.bid.GreaterThan(w.b.upper) {
		w.bid, w.ask = getPrice(w.bid, w.ask, w.b.spread, true)
	}
}

// step borrows a buffer, fills it with one batch of quotes and returns it.
// The recorded latency covers the whole borrow.
func (w *worker) step() {
	start := hrtime.Now()

	buf := w.pool.Take()
	for i := 0; i < w.batch; i++ {
		w.walk()
		buf.Value().Append(w.bid, w.ask)
	}
	buf.Release()

	w.hist.Record(float64(hrtime.Since(start)))
	w.ops++
}

func (w *worker) run(ctx context.Context, total *atomic.Uint64) {
	for ctx.Err() == nil {
		for i := 0; i < checkEvery; i++ {
			w.step()
		}
		total.Add(checkEvery)
	}
}

func getPrice(bid, ask, diff decimal.Decimal, dec bool) (decimal.Decimal, decimal.Decimal) {
	if dec {
		bid = bid.Sub(diff)
		ask = ask.Sub(diff)
		return bid, ask
	}

	bid = bid.Add(diff)
	ask = ask.Add(diff)
	return bid, ask
}

func newPool(cfg Config, log *zap.Logger) *objpool.Pool[prices] {
	size := 2 * cfg.Batch
	return objpool.New[prices](cfg.Capacity,
		objpool.WithName(cfg.Name),
		objpool.WithPrefill(cfg.Prefill),
		objpool.WithReclaim(cfg.Reclaim),
		objpool.WithLogger(log.Named("pool")),
		objpool.WithNew(func() *prices {
			s := make(prices, 0, size)
			return &s
		}),
	)
}

// run drives cfg.Workers goroutines against one pool until cfg.Duration
// elapses or ctx is done.
func run(ctx context.Context, cfg Config, log *zap.Logger) (*Report, error) {
	b, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	if cfg.NoGC {
		defer debug.SetGCPercent(debug.SetGCPercent(-1))
	}

	p := newPool(cfg, log)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	reg, err := telemetry.Register(provider.Meter("github.com/geseq/objpool/cmd/bench"), cfg.Name, p)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	defer func() { _ = reg.Unregister() }()

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	workers := make([]*worker, cfg.Workers)
	for i := range workers {
		workers[i] = newWorker(p, b, cfg.Batch, cfg.Seed+int64(i))
	}

	log.Info("starting benchmark",
		zap.String("pool", cfg.Name),
		zap.Int("workers", cfg.Workers),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("batch", cfg.Batch),
		zap.Duration("duration", cfg.Duration),
		zap.Int64("seed", cfg.Seed),
	)

	var total atomic.Uint64
	var progress conc.WaitGroup
	if cfg.Report > 0 {
		progress.Go(func() { reportProgress(ctx, cfg.Report, &total, p, log) })
	}

	start := time.Now()
	cp := concpool.New().WithContext(ctx).WithMaxGoroutines(cfg.Workers)
	for _, w := range workers {
		cp.Go(func(ctx context.Context) error {
			if cfg.Lock {
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
			}
			w.run(ctx, &total)
			return nil
		})
	}
	err = cp.Wait()
	elapsed := time.Since(start)
	progress.Wait()
	if err != nil {
		return nil, err
	}

	hist := stats.NewHistogram(0, 1)
	var ops uint64
	for _, w := range workers {
		hist.Transfer(w.hist)
		ops += w.ops
	}

	metrics, err := collectMetrics(reader)
	if err != nil {
		return nil, err
	}

	return newReport(cfg, elapsed, ops, hist, p, metrics), nil
}

func reportProgress(ctx context.Context, every time.Duration, total *atomic.Uint64, p *objpool.Pool[prices], log *zap.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			ops := total.Swap(0)
			log.Info("progress",
				zap.Float64("ops/s", float64(ops)/now.Sub(last).Seconds()),
				zap.Int("len", p.Len()),
				zap.Int("in_use", p.InUse()),
			)
			last = now
		}
	}
}
