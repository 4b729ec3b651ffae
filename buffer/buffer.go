// Package buffer provides [Buffer], the single owned allocation behind a vector.
//
// A Buffer only knows its capacity. Which slots hold live elements is the
// business of its owner.
package buffer

import "github.com/adobaai/vecz/internal/heap"

// noCopy lets `go vet` (copylocks) report Buffers copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a contiguous allocation of T slots.
// The zero value is an empty buffer. Ownership moves only through
// [Buffer.Swap] and [Buffer.Release]; never copy a Buffer.
type Buffer[T any] struct {
	_     noCopy
	items []T
}

// New allocates a buffer of capacity zero-valued slots.
// A zero capacity performs no allocation.
func New[T any](capacity int) (*Buffer[T], error) {
	items, err := heap.Allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{items: items}, nil
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}

// IsNil reports whether the buffer owns no allocation.
func (b *Buffer[T]) IsNil() bool {
	return b.items == nil
}

// At returns the slot at i. Only i outside [0, Cap()) is caught, by the runtime.
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Slice returns the slots [lo, hi) with the capacity clipped to hi.
func (b *Buffer[T]) Slice(lo, hi int) []T {
	return b.items[lo:hi:hi]
}

// Release gives up the allocation and returns it, leaving the buffer empty.
func (b *Buffer[T]) Release() []T {
	items := b.items
	b.items = nil
	return items
}

// Swap exchanges the allocations of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}

// Free returns the allocation to the heap.
func (b *Buffer[T]) Free() {
	heap.Deallocate(b.Release())
}
