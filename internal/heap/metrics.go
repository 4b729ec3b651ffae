package heap

import (
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const scope = "github.com/adobaai/vecz/internal/heap"

// Metric names.
const (
	MetricAllocations   = "vecz.heap.allocations"
	MetricDeallocations = "vecz.heap.deallocations"
	MetricFailures      = "vecz.heap.failures"
	MetricSlots         = "vecz.heap.slots"
)

type instruments struct {
	allocations   metric.Int64Counter
	deallocations metric.Int64Counter
	failures      metric.Int64Counter
	slots         metric.Int64Counter
}

var current atomic.Pointer[instruments]

func init() {
	current.Store(newInstruments(otel.GetMeterProvider()))
}

func meter() *instruments {
	return current.Load()
}

// SetMeterProvider registers the heap counters on mp instead of the global provider.
// It returns a func restoring the previous instruments.
func SetMeterProvider(mp metric.MeterProvider) (restore func()) {
	prev := current.Swap(newInstruments(mp))
	return func() {
		current.Store(prev)
	}
}

func newInstruments(mp metric.MeterProvider) *instruments {
	m := mp.Meter(scope)
	return &instruments{
		allocations: counter(m, MetricAllocations, "{call}",
			"Number of backing allocations."),
		deallocations: counter(m, MetricDeallocations, "{call}",
			"Number of backing deallocations."),
		failures: counter(m, MetricFailures, "{call}",
			"Number of allocation requests the heap refused."),
		slots: counter(m, MetricSlots, "{slot}",
			"Number of element slots allocated."),
	}
}

func counter(m metric.Meter, name, unit, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(desc))
	if err != nil {
		otel.Handle(err)
		c, _ = noop.NewMeterProvider().Meter(scope).Int64Counter(name)
	}
	return c
}
