// Package vecz provides Vector, a resizable array with explicit capacity management.
//
// A Vector keeps its logical length apart from the capacity of its backing
// buffer. Operations that need more room build the grown storage aside and
// swap it in only once it is complete, so a failed allocation leaves the
// vector exactly as it was.
//
// Positions play the role of iterators: they are plain offsets in
// [Vector.Begin, Vector.End] and are invalidated by any operation that
// reallocates or shifts elements.
//
// Vectors are not safe for concurrent use.
package vecz

import (
	"errors"
	"fmt"

	"github.com/adobaai/vecz/internal/heap"
)

var (
	// ErrOutOfRange is returned by checked access past the last element.
	ErrOutOfRange = errors.New("vecz: out of range")
	// ErrEmpty is returned when reading the front or back of an empty vector.
	ErrEmpty = errors.New("vecz: empty")
	// ErrNegativeSize is returned for a negative size or capacity.
	ErrNegativeSize = errors.New("vecz: negative size")
	// ErrAllocation is returned when the backing storage cannot be allocated.
	ErrAllocation = heap.ErrAllocation
)

// RangeError describes a checked access outside [0, Size).
// It matches [ErrOutOfRange] with [errors.Is].
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vecz: index %d out of range [0,%d)", e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

const (
	opInsert = "Insert"
	opErase  = "Erase"
)

// PositionError is the panic value for a position an operation cannot accept.
// Size is the length of the vector at the time. Insert accepts [0, Size],
// Erase accepts [0, Size).
type PositionError struct {
	Op   string
	Pos  int
	Size int
}

func (e *PositionError) Error() string {
	bound := fmt.Sprintf("[0,%d)", e.Size)
	if e.Op == opInsert {
		bound = fmt.Sprintf("[0,%d]", e.Size)
	}
	return fmt.Sprintf("vecz: %s position %d out of range %s", e.Op, e.Pos, bound)
}

func checkPos(op string, pos, size int) {
	last := size - 1
	if op == opInsert {
		last = size
	}
	if pos < 0 || pos > last {
		panic(&PositionError{Op: op, Pos: pos, Size: size})
	}
}

// Reservation carries a capacity to pre-allocate for an empty vector.
// See [Reserve] and [WithReservation].
type Reservation struct {
	capacity int
}

// Reserve returns a Reservation of capacity slots.
// Compare [Make], which constructs capacity zero-valued elements.
func Reserve(capacity int) Reservation {
	return Reservation{capacity: capacity}
}

func (r Reservation) Capacity() int {
	return r.capacity
}
