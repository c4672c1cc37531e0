// Package vectorx implements a contiguous, resizable, owned sequence with
// value semantics and explicit per-operation guarantees.
//
// A Vector deep-copies on Clone/Assign and never shares its buffer with
// another instance; the only cross-instance relationship is the O(1)
// ownership exchange performed by Swap. Memory is allocated lazily: the zero
// value (and New) own nothing until the first element arrives, and growth
// follows a doubling schedule (1, 2, 4, 8, ...).
//
// # Guarantees
//
// Each mutating operation documents one of three failure guarantees:
//
//   - strong: the operation fully succeeds or leaves the vector observably
//     unchanged (PushBack, Reserve, ShrinkToFit, Clone, Assign)
//   - weak: on failure the vector stays valid but element order may be
//     partially shifted (Insert, Erase)
//   - nothrow: the operation cannot fail (PopBack, Clear, Swap, observers)
//
// Failures only ever originate from a Traits.Copy hook; with the zero Traits
// every operation is infallible.
//
// # Contract violations
//
// Out-of-range indexes and PopBack/Front/Back on an empty vector are caller
// errors, not recoverable failures. They panic via the underlying slice
// bounds check and must not be used for control flow.
//
// # Invalidation
//
// The view returned by Data and any iteration in progress alias the live
// range directly. Any operation that may reallocate (PushBack, Insert,
// Reserve, ShrinkToFit, Assign) or shift elements (Insert, Erase) invalidates
// them; continuing to use a stale view observes unspecified values.
//
// Vectors are not safe for concurrent use without external synchronization.
package vectorx

import "github.com/comalice/vectorx/internal/storage"

// Vector is a growable owned sequence of T. The zero value is an empty
// vector with trivial element traits, ready to use.
type Vector[T any] struct {
	buf    []T // len(buf) is the allocated capacity; nil when capacity is 0
	n      int // live elements occupy buf[:n]; buf[n:] holds zero values
	traits Traits[T]

	grows   int
	shrinks int
}

// New returns an empty vector with trivial traits. O(1), no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithTraits returns an empty vector whose elements are managed by tr.
// O(1), no allocation.
func WithTraits[T any](tr Traits[T]) *Vector[T] {
	return &Vector[T]{traits: tr}
}

// From returns a vector holding a copy of src, sized and capacitied to
// exactly len(src). The elements are copied by plain assignment; use a
// Builder to seed a vector with non-trivial traits.
func From[T any](src []T) *Vector[T] {
	v := &Vector[T]{}
	if len(src) == 0 {
		return v
	}
	v.buf = storage.Alloc[T](len(src))
	copy(v.buf, src)
	v.n = len(src)
	return v
}

// Len reports the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap reports the number of allocated element slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// At returns the element at index i. No bounds check beyond the live range:
// indexes outside [0, Len) are contract violations.
func (v *Vector[T]) At(i int) T {
	return v.buf[:v.n][i]
}

// Set replaces the element at index i, disposing the previous value. The
// vector takes ownership of elem as given; it is not copied.
func (v *Vector[T]) Set(i int, elem T) {
	live := v.buf[:v.n]
	v.traits.disposeOne(live[i])
	live[i] = elem
}

// Front returns the first element. Empty vectors violate the contract.
func (v *Vector[T]) Front() T {
	return v.buf[:v.n][0]
}

// Back returns the last element. Empty vectors violate the contract.
func (v *Vector[T]) Back() T {
	return v.buf[:v.n][v.n-1]
}

// PushBack appends a copy of elem. Amortized O(1); a full vector reallocates
// to max(1, 2*Cap) first. Strong guarantee: on a copy failure nothing is
// appended and the vector is unchanged.
//
// elem is copied before any relocation, so pushing a value read from the
// vector's own live range is safe even when growth occurs.
func (v *Vector[T]) PushBack(elem T) error {
	dup, err := v.traits.copyOne(elem)
	if err != nil {
		return copyErr("push back", err)
	}
	if v.n == len(v.buf) {
		if err := v.newBuffer(v.nextCapacity()); err != nil {
			v.traits.disposeOne(dup)
			return copyErr("push back", err)
		}
		v.grows++
	}
	v.buf[v.n] = dup
	v.n++
	return nil
}

// PopBack disposes and forgets the last element. O(1), nothrow. Calling it
// on an empty vector violates the contract.
func (v *Vector[T]) PopBack() {
	last := v.buf[:v.n][v.n-1]
	v.n--
	v.traits.disposeOne(last)
	var zero T
	v.buf[v.n] = zero
}

// Reserve grows the buffer to exactly n slots when n exceeds the current
// capacity; otherwise it is a no-op. It never shrinks. Strong guarantee.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if err := v.newBuffer(n); err != nil {
		return copyErr("reserve", err)
	}
	v.grows++
	return nil
}

// ShrinkToFit reallocates to exactly Len slots when capacity exceeds it.
// Shrinking an empty vector releases the buffer entirely. Strong guarantee.
func (v *Vector[T]) ShrinkToFit() error {
	if v.n == len(v.buf) {
		return nil
	}
	if err := v.newBuffer(v.n); err != nil {
		return copyErr("shrink to fit", err)
	}
	v.shrinks++
	return nil
}

// Clear disposes every live element and resets Len to zero. Capacity is
// retained. O(N), nothrow.
func (v *Vector[T]) Clear() {
	storage.DestroyRange(v.buf[:v.n], v.traits.Dispose)
	v.n = 0
}

// Release disposes every live element and drops the buffer, returning the
// vector to its initial unallocated state. This is the destruction path for
// element types whose Dispose must run eagerly; trivially managed vectors
// can simply be left to the garbage collector.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf = nil
}

// Swap exchanges the complete state of v and other (buffer, length, traits
// and counters) in O(1). No element is touched.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Clone returns an independent deep copy of v with capacity equal to Len.
// Strong guarantee: on failure v is unchanged, the partial copy is disposed
// and nothing is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{traits: v.traits}
	if v.n == 0 {
		return out, nil
	}
	fresh := storage.Alloc[T](v.n)
	if err := storage.CopyInto(fresh, v.buf[:v.n], v.traits.Copy, v.traits.Dispose); err != nil {
		return nil, copyErr("clone", err)
	}
	out.buf = fresh
	out.n = v.n
	return out, nil
}

// Assign replaces v's contents with a deep copy of src, adopting src's
// traits. Implemented as clone-then-swap, so the strong guarantee holds: if
// copying fails, v keeps its previous contents. Self-assignment is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	dup, err := src.Clone()
	if err != nil {
		return err
	}
	v.Swap(dup)
	dup.Release()
	return nil
}

// Insert places a copy of elem at index i (0 <= i <= Len), shifting later
// elements right while preserving their order. O(N), weak guarantee: the
// copy is appended first (with PushBack's cost and rollback), then bubbled
// into place by adjacent swaps.
func (v *Vector[T]) Insert(i int, elem T) error {
	if err := v.PushBack(elem); err != nil {
		return err
	}
	live := v.buf[:v.n]
	for j := v.n - 1; j != i; j-- {
		live[j], live[j-1] = live[j-1], live[j]
	}
	return nil
}

// Erase removes the elements in [first, last), shifting the tail left while
// preserving its order, and returns the index of the slot after the removed
// range. An empty or inverted range is a no-op returning last. O(N), weak
// guarantee.
func (v *Vector[T]) Erase(first, last int) int {
	cnt := last - first
	if cnt <= 0 {
		return last
	}
	live := v.buf[:v.n]
	for i := first; i != len(live)-cnt; i++ {
		live[i], live[i+cnt] = live[i+cnt], live[i]
	}
	for i := 0; i < cnt; i++ {
		v.PopBack()
	}
	return first
}

// EraseAt removes the single element at index i; see Erase.
func (v *Vector[T]) EraseAt(i int) int {
	return v.Erase(i, i+1)
}

func (v *Vector[T]) nextCapacity() int {
	if len(v.buf) == 0 {
		return 1
	}
	return len(v.buf) * 2
}

// newBuffer relocates the live range into a fresh buffer of newCap slots
// (newCap >= v.n). On a copy failure the fresh buffer is disposed and dropped
// and the current buffer is untouched, preserving the strong guarantee of
// every caller.
//
// With a Copy hook the relocation duplicates each element, so the originals
// are disposed afterwards. Without one the bulk copy transfers the values as
// they are; the old buffer is simply dropped, since its elements live on in
// the new one.
func (v *Vector[T]) newBuffer(newCap int) error {
	fresh := storage.Alloc[T](newCap)
	if v.n > 0 {
		if err := storage.CopyInto(fresh[:v.n], v.buf[:v.n], v.traits.Copy, v.traits.Dispose); err != nil {
			return err
		}
		if v.traits.Copy != nil {
			storage.DestroyRange(v.buf[:v.n], v.traits.Dispose)
		}
	}
	v.buf = fresh
	return nil
}
