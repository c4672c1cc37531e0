package vectorx

import "iter"

// Data returns a slice aliasing the live range [0, Len). Writes through it
// mutate the vector's elements in place without invoking any trait. The
// slice's capacity is clipped to Len, so appends by the caller reallocate
// instead of scribbling into the vector's spare slots.
//
// The view is invalidated by any operation that may reallocate or shift
// elements.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.n:v.n]
}

// All ranges over (index, element) pairs of the live range in order. The
// vector must not be mutated during iteration; see the invalidation contract
// in the package documentation.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, elem := range v.buf[:v.n] {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Values ranges over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range v.buf[:v.n] {
			if !yield(elem) {
				return
			}
		}
	}
}
