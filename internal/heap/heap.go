// Package heap is the memory manager behind vector buffers.
//
// Every allocation and deallocation of backing storage goes through
// [Allocate] and [Deallocate], so the process-wide limit, the debug log
// and the OpenTelemetry counters see all of them.
package heap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ErrAllocation is returned when the heap cannot satisfy a request.
var ErrAllocation = errors.New("heap: allocation failed")

var (
	limit    atomic.Int64
	logger   atomic.Pointer[slog.Logger]
	fallback atomic.Pointer[derived]
)

// derived caches the heap logger built from a default logger.
type derived struct {
	base *slog.Logger
	l    *slog.Logger
}

// SetLimit caps the number of slots a single allocation may request.
// Zero removes the cap. It returns a func restoring the previous limit.
func SetLimit(slots int) (restore func()) {
	prev := limit.Swap(int64(slots))
	return func() {
		limit.Store(prev)
	}
}

// SetLogger sets the logger used for allocation records.
// A nil logger falls back to [slog.Default].
func SetLogger(l *slog.Logger) {
	if l != nil {
		l = l.With("pkg", "heap")
	}
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	base := slog.Default()
	if d := fallback.Load(); d != nil && d.base == base {
		return d.l
	}
	d := &derived{base: base, l: base.With("pkg", "heap")}
	fallback.Store(d)
	return d.l
}

// Allocate returns a zeroed slice of n slots.
// Zero slots need no allocation and yield a nil slice.
func Allocate[T any](n int) (s []T, err error) {
	if n == 0 {
		return nil, nil
	}

	ctx := context.Background()
	switch lim := limit.Load(); {
	case n < 0:
		err = fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	case lim > 0 && int64(n) > lim:
		err = fmt.Errorf("%w: %d slots exceeds limit %d", ErrAllocation, n, lim)
	default:
		s, err = makeSlice[T](n)
	}
	if err != nil {
		meter().failures.Add(ctx, 1)
		log().DebugContext(ctx, "allocation refused", "slots", n, "err", err)
		return nil, err
	}

	m := meter()
	m.allocations.Add(ctx, 1)
	m.slots.Add(ctx, int64(n))
	log().DebugContext(ctx, "allocated", "slots", n)
	return s, nil
}

// Deallocate returns s to the heap. Empty slices are ignored.
func Deallocate[T any](s []T) {
	if cap(s) == 0 {
		return
	}
	ctx := context.Background()
	meter().deallocations.Add(ctx, 1)
	log().DebugContext(ctx, "deallocated", "slots", cap(s))
}

func makeSlice[T any](n int) (s []T, err error) {
	defer func() {
		// makeslice panics when the size overflows the address space
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]T, n), nil
}
