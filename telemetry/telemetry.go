// Package telemetry exports pool state as OpenTelemetry metrics.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/geseq/objpool"
)

// ScopeName is the instrumentation scope used by Observe.
const ScopeName = "github.com/geseq/objpool"

// ErrNilSource is returned by Register when there is no pool to observe.
var ErrNilSource = errors.New("telemetry: nil source")

// Source is the read-only view of a pool that the instruments report. Every
// *objpool.Pool[T] satisfies it.
type Source interface {
	Name() string
	Len() int
	Cap() int
	InUse() int
	Stats() objpool.Stats
}

var _ Source = (*objpool.Pool[struct{}])(nil)

// Observe registers the pool instruments with the global meter provider.
func Observe(src Source) (metric.Registration, error) {
	return Register(otel.Meter(ScopeName), "", src)
}

// isNil reports whether src is nil or an interface holding a nil pointer,
// such as a nil *objpool.Pool[T].
func isNil(src Source) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Register creates observable instruments on meter that read src on every
// collection. Gauges report objpool.len, objpool.capacity and objpool.in_use;
// counters report the lifetime Stats. Every point carries a pool.name
// attribute, which defaults to src.Name() when name is blank.
//
// Unregister the returned registration to stop observing src.
func Register(meter metric.Meter, name string, src Source) (metric.Registration, error) {
	if isNil(src) {
		return nil, ErrNilSource
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = src.Name()
	}
	attrs := metric.WithAttributes(attribute.String("pool.name", name))

	lenGauge, err := meter.Int64ObservableGauge("objpool.len",
		metric.WithDescription("Spare objects held by the pool"),
		metric.WithUnit("{object}"))
	if err != nil {
		return nil, fmt.Errorf("create objpool.len: %w", err)
	}
	capGauge, err := meter.Int64ObservableGauge("objpool.capacity",
		metric.WithDescription("Maximum spare objects the pool holds"),
		metric.WithUnit("{object}"))
	if err != nil {
		return nil, fmt.Errorf("create objpool.capacity: %w", err)
	}
	inUseGauge, err := meter.Int64ObservableGauge("objpool.in_use",
		metric.WithDescription("Objects taken and not yet released or detached"),
		metric.WithUnit("{object}"))
	if err != nil {
		return nil, fmt.Errorf("create objpool.in_use: %w", err)
	}

	counters := []struct {
		name string
		desc string
		read func(objpool.Stats) uint64
		inst metric.Int64ObservableCounter
	}{
		{name: "objpool.hits", desc: "Objects taken from the store", read: func(s objpool.Stats) uint64 { return s.Hits }},
		{name: "objpool.misses", desc: "Objects constructed because the store was empty", read: func(s objpool.Stats) uint64 { return s.Misses }},
		{name: "objpool.attached", desc: "Outside objects wrapped with Attach", read: func(s objpool.Stats) uint64 { return s.Attached }},
		{name: "objpool.returned", desc: "Objects reset and pushed back into the store", read: func(s objpool.Stats) uint64 { return s.Returned }},
		{name: "objpool.discarded", desc: "Objects dropped because the store was full", read: func(s objpool.Stats) uint64 { return s.Discarded }},
		{name: "objpool.detached", desc: "Objects taken out of circulation", read: func(s objpool.Stats) uint64 { return s.Detached }},
		{name: "objpool.reclaimed", desc: "Unreleased objects recovered after garbage collection", read: func(s objpool.Stats) uint64 { return s.Reclaimed }},
	}

	instruments := []metric.Observable{lenGauge, capGauge, inUseGauge}
	for i := range counters {
		c, err := meter.Int64ObservableCounter(counters[i].name,
			metric.WithDescription(counters[i].desc),
			metric.WithUnit("{object}"))
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", counters[i].name, err)
		}
		counters[i].inst = c
		instruments = append(instruments, c)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(lenGauge, int64(src.Len()), attrs)
		o.ObserveInt64(capGauge, int64(src.Cap()), attrs)
		o.ObserveInt64(inUseGauge, int64(src.InUse()), attrs)

		st := src.Stats()
		for _, c := range counters {
			o.ObserveInt64(c.inst, int64(c.read(st)), attrs)
		}
		return nil
	}, instruments...)
}
