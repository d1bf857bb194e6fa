package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is raised when Get or Set is called with an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
	// ErrEmpty is raised when RemoveLast is called on an empty array.
	ErrEmpty = errors.New("dynarray: remove from empty array")
)

// Sequence is a growable, indexable container of element slots.
// Append and RemoveLast are amortized O(1), Get and Set are O(1).
type Sequence[T any] interface {
	// Len returns the number of elements stored
	Len() int
	// Get returns the element at index i
	Get(i int) T
	// Set overwrites the element at index i
	Set(i int, v T)
	// Append adds v after the last element
	Append(v T)
	// RemoveLast drops the last element
	RemoveLast()
	// Free releases the underlying storage
	Free()
}

// DynArray is a slice-backed Sequence. It is not safe for concurrent use.
type DynArray[T any] struct {
	data []T
}

var _ Sequence[any] = (*DynArray[any])(nil)

// New creates an empty DynArray
func New[T any]() *DynArray[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity creates an empty DynArray with room for n elements before it has to grow
func NewWithCapacity[T any](n int) *DynArray[T] {
	if n < 0 {
		n = 0
	}
	return &DynArray[T]{data: make([]T, 0, n)}
}

func (a *DynArray[T]) Len() int { return len(a.data) }

// Cap returns how many elements fit before the next reallocation
func (a *DynArray[T]) Cap() int { return cap(a.data) }

func (a *DynArray[T]) Get(i int) T {
	a.checkIndex(i)
	return a.data[i]
}

func (a *DynArray[T]) Set(i int, v T) {
	a.checkIndex(i)
	a.data[i] = v
}

func (a *DynArray[T]) Append(v T) {
	a.data = append(a.data, v)
}

func (a *DynArray[T]) RemoveLast() {
	n := len(a.data)
	if n == 0 {
		panic(ErrEmpty)
	}
	var zero T
	a.data[n-1] = zero // don't keep the removed value reachable
	a.data = a.data[:n-1]
}

// Free drops the backing slice. The array can still be used afterwards and starts out empty.
func (a *DynArray[T]) Free() {
	a.data = nil
}

func (a *DynArray[T]) checkIndex(i int) {
	if i < 0 || i >= len(a.data) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(a.data)))
	}
}
