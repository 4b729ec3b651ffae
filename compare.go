package vecz

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal] using eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Compare compares a and b lexicographically using the < operator on elements.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b.
// A vector that is a prefix of another compares less.
// Elements neither less nor greater than each other, such as NaN and any
// float, count as equivalent.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compareLess[T])
}

func compareLess[T cmp.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case y < x:
		return +1
	default:
		return 0
	}
}

// CompareFunc is like [Compare] using cmp to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
