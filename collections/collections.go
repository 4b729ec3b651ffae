// Package collection provides some useful functions for working with vectors.
//
// The functions never modify their input. Those returning a vector allocate
// a new one sized to the result.
package collections

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/adobaai/vecz"
)

// ErrChunkSize is returned by [Chunk] for a size less than 1.
var ErrChunkSize = errors.New("collections: chunk size must be positive")

// Filter iterates over items, returning a vector of all items predicate returns truthy for.
func Filter[V any](items *vecz.Vector[V], predicate func(it V) bool) (*vecz.Vector[V], error) {
	res := lo.Filter(items.Slice(), func(it V, _ int) bool {
		return predicate(it)
	})
	return vecz.Of(res...)
}

// Map returns a vector containing the results of applying the given transform function
// to each item in the original vector.
func Map[T, R any](items *vecz.Vector[T], transform func(it T) R) (*vecz.Vector[R], error) {
	res, err := vecz.Make[R](items.Len())
	if err != nil {
		return nil, err
	}
	out := res.Slice()
	for i, it := range items.All() {
		out[i] = transform(it)
	}
	return res, nil
}

// Reduce folds items into a single value, starting with initial.
func Reduce[T, R any](items *vecz.Vector[T], accumulator func(agg R, it T) R, initial R) R {
	return lo.Reduce(items.Slice(), func(agg R, it T, _ int) R {
		return accumulator(agg, it)
	}, initial)
}

func Contains[T comparable](items *vecz.Vector[T], v T) bool {
	return lo.Contains(items.Slice(), v)
}

// IndexOf returns the position of the first occurrence of v in items, or -1.
func IndexOf[T comparable](items *vecz.Vector[T], v T) int {
	return lo.IndexOf(items.Slice(), v)
}

// Uniq returns a vector of the distinct items, keeping the first occurrence of each.
func Uniq[T comparable](items *vecz.Vector[T]) (*vecz.Vector[T], error) {
	return vecz.Of(lo.Uniq(items.Slice())...)
}

// Chunk splits items into vectors of at most size elements.
func Chunk[T any](items *vecz.Vector[T], size int) (*vecz.Vector[*vecz.Vector[T]], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, size)
	}
	res := vecz.New[*vecz.Vector[T]]()
	for _, chunk := range lo.Chunk(items.Slice(), size) {
		v, err := vecz.Of(chunk...)
		if err != nil {
			return nil, err
		}
		if err = res.PushBack(v); err != nil {
			return nil, err
		}
	}
	return res, nil
}
