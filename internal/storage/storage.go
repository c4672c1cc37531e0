// Package storage provides the foundational slot buffer for the vector
// container.
//
// A buffer is a plain []T whose length is the allocated capacity. The live
// prefix boundary is tracked by the caller (the vector's size counter); slots
// beyond it hold zero values and must never be observed or disposed.
//
// Every duplicating path accepts an optional copy function. A nil copy
// function means the element type has no lifecycle of its own, and the bulk
// path (builtin copy) is taken instead of the element-by-element loop with
// rollback.
//
// Stdlib-only implementation.
package storage

import "fmt"

// Alloc returns a fresh buffer of exactly n slots. n == 0 yields a nil
// buffer: an empty container owns no memory.
func Alloc[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// CopyInto duplicates src into the leading slots of dst, which must have at
// least len(src) slots.
//
// With a nil copyFn this is a single bulk copy and cannot fail. Otherwise
// elements are copied one by one; if copyFn fails at index i, the i elements
// already placed in dst are destroyed (in reverse order, via dispose) and
// their slots zeroed before the error is returned. src is never modified.
func CopyInto[T any](dst, src []T, copyFn func(T) (T, error), dispose func(T)) error {
	if copyFn == nil {
		copy(dst, src)
		return nil
	}
	for i, elem := range src {
		dup, err := copyFn(elem)
		if err != nil {
			DestroyRange(dst[:i], dispose)
			return fmt.Errorf("copy element %d: %w", i, err)
		}
		dst[i] = dup
	}
	return nil
}

// DestroyRange disposes every slot in slots, last to first, then zeroes them
// so the backing array does not pin released values.
func DestroyRange[T any](slots []T, dispose func(T)) {
	if dispose != nil {
		for i := len(slots) - 1; i >= 0; i-- {
			dispose(slots[i])
		}
	}
	clear(slots)
}
