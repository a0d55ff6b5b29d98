// Package vector implements a growable array of fixed-size elements.
//
// It backs both the LZW code table and the decoded output stream. A
// Vector is either growable (capacity is extended by reallocation as
// needed, never below a small floor) or fixed (appending past the
// allocated capacity fails). On any failed operation the vector
// degrades to empty, zero-capacity storage rather than keeping a
// partially written state.
package vector

import "errors"

// ErrAllocation is reported when backing storage for an operation
// could not be obtained: a fixed vector ran out of room, or the
// requested size is not representable.
var ErrAllocation = errors.New("vector: allocation failed")

const minAlloc = 10

// Vector is a contiguous store of elements of type T.
type Vector[T any] struct {
	store []T
	n     int
	fixed bool
}

// New returns a growable vector holding length zero-valued elements.
// Storage is allocated for at least minAlloc elements.
func New[T any](length int) *Vector[T] {
	alloc := length
	if alloc < minAlloc {
		alloc = minAlloc
	}
	return &Vector[T]{store: make([]T, alloc), n: length}
}

// NewFixed returns an empty vector with storage for exactly capacity
// elements. Appending past that capacity fails with ErrAllocation.
func NewFixed[T any](capacity int) *Vector[T] {
	return &Vector[T]{store: make([]T, capacity), fixed: true}
}

// Len reports the number of valid elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap reports the number of allocated elements.
func (v *Vector[T]) Cap() int { return len(v.store) }

// At returns the element at index i, which must be < Len.
func (v *Vector[T]) At(i int) T { return v.store[:v.n][i] }

// Slice returns the valid elements. The slice aliases the vector's
// storage and is invalidated by the next growing Append.
func (v *Vector[T]) Slice() []T { return v.store[:v.n] }

// Append copies src onto the end of the vector, growing storage by at
// least max(len(src), Len()) elements when it does not fit. On
// failure the vector is emptied and ErrAllocation is returned.
func (v *Vector[T]) Append(src []T) error {
	if v.n+len(src) > len(v.store) {
		grow := len(src)
		if v.n > grow {
			grow = v.n
		}
		if v.fixed || v.n+grow < 0 {
			v.store = nil
			v.n = 0
			return ErrAllocation
		}
		next := make([]T, len(v.store)+grow)
		copy(next, v.store[:v.n])
		v.store = next
	}
	copy(v.store[v.n:], src)
	v.n += len(src)
	return nil
}

// CopyFrom replaces the vector's contents with those of src, keeping
// the current storage unless growth is required. A nil or empty src
// leaves the destination untouched.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == nil || src.n == 0 {
		return nil
	}
	v.n = 0
	return v.Append(src.Slice())
}

// Clear resets the length to zero without touching storage.
func (v *Vector[T]) Clear() { v.n = 0 }

// Release drops the backing storage. Safe to call more than once.
func (v *Vector[T]) Release() {
	v.store = nil
	v.n = 0
}
