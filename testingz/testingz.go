// Package testingz provides helpers to write concise tests.
package testingz

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Result pairs a value with the error returned alongside it.
type Result[T any] struct {
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{
		v:   v,
		err: err,
	}
}

// V returns the value without checking the error.
func (r *Result[T]) V() T {
	return r.v
}

// Must requires no error and returns the value.
func (r *Result[T]) Must(t testing.TB, msgAndArgs ...any) T {
	t.Helper()
	require.NoError(t, r.err, msgAndArgs...)
	return r.v
}

// Equal requires no error and a value equal to want.
func (r *Result[T]) Equal(t testing.TB, want T, msgAndArgs ...any) *Result[T] {
	t.Helper()
	require.NoError(t, r.err, msgAndArgs...)
	require.Equal(t, want, r.v, msgAndArgs...)
	return r
}

func (r *Result[T]) ErrorIs(t testing.TB, target error, msgAndArgs ...any) *Result[T] {
	t.Helper()
	require.ErrorIs(t, r.err, target, msgAndArgs...)
	return r
}

func (r *Result[T]) ErrorAs(t testing.TB, target any, msgAndArgs ...any) *Result[T] {
	t.Helper()
	require.ErrorAs(t, r.err, target, msgAndArgs...)
	return r
}

func (r *Result[T]) Do(t testing.TB, f func(t testing.TB, it T)) *Result[T] {
	t.Helper()
	f(t, r.v)
	return r
}

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var res []T
	for v := range seq {
		res = append(res, v)
	}
	return res
}

// Collect2 drains seq into a slice of keys and a slice of values.
func Collect2[K, V any](seq iter.Seq2[K, V]) (ks []K, vs []V) {
	for k, v := range seq {
		ks = append(ks, k)
		vs = append(vs, v)
	}
	return
}

// PanicsAs requires f to panic with an error of type E and returns it.
func PanicsAs[E error](t testing.TB, f func()) (res E) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorAs(t, err, &res)
	}()
	f()
	return
}

// Counters collects the int64 sums exported by reader, keyed by metric name.
func Counters(t testing.TB, reader sdkmetric.Reader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	res := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				res[m.Name] += dp.Value
			}
		}
	}
	return res
}
