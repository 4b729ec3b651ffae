package vecz

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"

	"github.com/adobaai/vecz/buffer"
)

// Vector is a resizable array of T.
//
// Elements in [0, Len()) are live. Slots in [Len(), Cap()) are allocated
// and hold unspecified values of T.
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	items buffer.Buffer[T]
	size  int
}

// New returns an empty vector without allocating.
func New[T any]() *Vector[T] {
	return new(Vector[T])
}

// Make returns a vector of size zero-valued elements.
func Make[T any](size int) (*Vector[T], error) {
	v, err := alloc[T](size)
	if err != nil {
		return nil, err
	}
	v.size = size
	return v, nil
}

// Fill returns a vector of size copies of value.
func Fill[T any](size int, value T) (*Vector[T], error) {
	v, err := Make[T](size)
	if err != nil {
		return nil, err
	}
	for i := range size {
		*v.items.At(i) = value
	}
	return v, nil
}

// WithReservation returns an empty vector with the reserved capacity.
func WithReservation[T any](r Reservation) (*Vector[T], error) {
	return alloc[T](r.capacity)
}

// Of returns a vector holding a copy of values, in order.
func Of[T any](values ...T) (*Vector[T], error) {
	v, err := Make[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(v.Slice(), values)
	return v, nil
}

// alloc returns an empty vector over a fresh buffer of capacity slots.
func alloc[T any](capacity int) (*Vector[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, capacity)
	}
	b, err := buffer.New[T](capacity)
	if err != nil {
		return nil, err
	}
	v := new(Vector[T])
	v.items.Swap(b)
	return v, nil
}

// grow is the capacity after a single-element growth.
func grow(capacity int) int {
	return max(1, capacity*2)
}

// adopt swaps tmp into v and frees the storage v held before.
func (v *Vector[T]) adopt(tmp *Vector[T]) {
	v.Swap(tmp)
	tmp.free()
}

func (v *Vector[T]) free() {
	v.items.Free()
	v.size = 0
}

// Clone returns an independent copy of v with the same capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c, err := alloc[T](v.Cap())
	if err != nil {
		return nil, err
	}
	copy(c.items.Slice(0, v.Cap()), v.items.Slice(0, v.Cap()))
	c.size = v.size
	return c, nil
}

// Take moves the contents of v into a new vector, leaving v empty with no capacity.
func (v *Vector[T]) Take() *Vector[T] {
	res := new(Vector[T])
	res.Swap(v)
	return res
}

// Assign replaces the contents of v with a copy of other.
// On failure v is unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	c, err := other.Clone()
	if err != nil {
		return err
	}
	v.adopt(c)
	return nil
}

// MoveFrom releases the storage of v and takes over that of other,
// leaving other empty with no capacity.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.free()
	v.Swap(other)
}

// Swap exchanges the contents of v and other without moving elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}

func (v *Vector[T]) Len() int {
	return v.size
}

func (v *Vector[T]) Cap() int {
	return v.items.Cap()
}

func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// PushBack appends value, doubling the capacity when v is full.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == v.Cap() {
		tmp, err := alloc[T](grow(v.Cap()))
		if err != nil {
			return err
		}
		copy(tmp.items.Slice(0, v.size), v.Slice())
		*tmp.items.At(v.size) = value
		tmp.size = v.size + 1
		v.adopt(tmp)
		return nil
	}
	*v.items.At(v.size) = value
	v.size++
	return nil
}

// PushBackMove appends *value and resets *value to the zero value.
// On failure *value is left untouched.
func (v *Vector[T]) PushBackMove(value *T) error {
	if err := v.PushBack(*value); err != nil {
		return err
	}
	var zero T
	*value = zero
	return nil
}

// Append appends values in order, growing at most once.
func (v *Vector[T]) Append(values ...T) error {
	n := v.size + len(values)
	if n > v.Cap() {
		tmp, err := alloc[T](max(n, v.Cap()*2))
		if err != nil {
			return err
		}
		copy(tmp.items.Slice(0, v.size), v.Slice())
		tmp.size = v.size
		v.adopt(tmp)
	}
	copy(v.items.Slice(v.size, n), values)
	v.size = n
	return nil
}

// Insert inserts value before pos and returns the position of the new element.
// It panics with a [*PositionError] if pos is outside [Begin(), End()].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	checkPos(opInsert, pos, v.size)
	if v.size == v.Cap() {
		tmp, err := alloc[T](grow(v.Cap()))
		if err != nil {
			return pos, err
		}
		copy(tmp.items.Slice(0, pos), v.items.Slice(0, pos))
		*tmp.items.At(pos) = value
		copy(tmp.items.Slice(pos+1, v.size+1), v.items.Slice(pos, v.size))
		tmp.size = v.size + 1
		v.adopt(tmp)
		return pos, nil
	}
	s := v.items.Slice(0, v.size+1)
	copy(s[pos+1:], s[pos:v.size])
	s[pos] = value
	v.size++
	return pos, nil
}

// InsertMove is like [Vector.Insert] but resets *value to the zero value on success.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	pos, err := v.Insert(pos, *value)
	if err != nil {
		return pos, err
	}
	var zero T
	*value = zero
	return pos, nil
}

// PopBack drops the last element, if any. The capacity is kept.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Erase removes the element at pos and returns the position that now holds
// the element which followed it.
// It panics with a [*PositionError] if pos is outside [Begin(), End()).
func (v *Vector[T]) Erase(pos int) int {
	checkPos(opErase, pos, v.size)
	s := v.Slice()
	copy(s[pos:], s[pos+1:])
	v.size--
	return pos
}

// Resize changes the length to size.
// Elements added by growing are zero values, even in slots that held
// elements before a previous shrink. Shrinking keeps the capacity.
func (v *Vector[T]) Resize(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	case size > v.Cap():
		tmp, err := alloc[T](max(size, v.Cap()*2))
		if err != nil {
			return err
		}
		copy(tmp.items.Slice(0, v.size), v.Slice())
		tmp.size = size
		v.adopt(tmp)
	case size >= v.size:
		clear(v.items.Slice(v.size, size))
		v.size = size
	default:
		v.size = size
	}
	return nil
}

// Reserve grows the capacity to exactly capacity if it is larger than Cap().
// It never shrinks.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, capacity)
	}
	if capacity <= v.Cap() {
		return nil
	}
	tmp, err := alloc[T](capacity)
	if err != nil {
		return err
	}
	copy(tmp.items.Slice(0, v.size), v.Slice())
	tmp.size = v.size
	v.adopt(tmp)
	return nil
}

// Clear drops all elements and keeps the allocation.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Get returns the element at i without checking i against Len().
func (v *Vector[T]) Get(i int) T {
	return *v.items.At(i)
}

// Ref returns a reference to the element at i without checking i against Len().
func (v *Vector[T]) Ref(i int) *T {
	return v.items.At(i)
}

// Set stores value at i without checking i against Len().
func (v *Vector[T]) Set(i int, value T) {
	*v.items.At(i) = value
}

// At returns a reference to the element at i.
// It fails with a [*RangeError] unless 0 <= i < Len().
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &RangeError{Index: i, Size: v.size}
	}
	return v.items.At(i), nil
}

func (v *Vector[T]) Front() (*T, error) {
	if v.size == 0 {
		return nil, ErrEmpty
	}
	return v.items.At(0), nil
}

func (v *Vector[T]) Back() (*T, error) {
	if v.size == 0 {
		return nil, ErrEmpty
	}
	return v.items.At(v.size - 1), nil
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns the live elements as a slice sharing storage with v.
// Writes through it are visible in v; appending to it never is.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice(0, v.size)
}

// All returns an iterator over positions and elements, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range v.Slice() {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range v.Slice() {
			if !yield(it) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and elements, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// Check reports every broken invariant of v, or nil.
func (v *Vector[T]) Check() (err error) {
	if v.size < 0 {
		err = multierr.Append(err, fmt.Errorf("vecz: negative size %d", v.size))
	}
	if v.size > v.Cap() {
		err = multierr.Append(err, fmt.Errorf("vecz: size %d exceeds capacity %d", v.size, v.Cap()))
	}
	if v.items.IsNil() != (v.Cap() == 0) {
		err = multierr.Append(err, fmt.Errorf("vecz: capacity %d disagrees with allocation", v.Cap()))
	}
	return
}
