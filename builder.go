package vectorx

// Builder provides a fluent API for seeding vectors, covering what the plain
// constructors cannot: initial elements combined with lifecycle traits or a
// pre-reserved capacity.
type Builder[T any] struct {
	traits   Traits[T]
	capacity int
	seed     []T
}

// NewBuilder creates an empty builder with trivial traits.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithTraits sets the element lifecycle hooks for the built vector.
func (b *Builder[T]) WithTraits(tr Traits[T]) *Builder[T] {
	b.traits = tr
	return b
}

// WithCapacity reserves at least n slots up front, sparing the doubling
// schedule for workloads whose size is known.
func (b *Builder[T]) WithCapacity(n int) *Builder[T] {
	b.capacity = n
	return b
}

// Append adds seed elements. They are copied through the traits at Build
// time, in order.
func (b *Builder[T]) Append(elems ...T) *Builder[T] {
	b.seed = append(b.seed, elems...)
	return b
}

// Build constructs the vector: one up-front reservation, then every seed
// element pushed through the traits. If a seed copy fails, the partially
// built vector is disposed and only the error is returned; the builder
// remains reusable.
func (b *Builder[T]) Build() (*Vector[T], error) {
	v := WithTraits(b.traits)
	target := b.capacity
	if target < len(b.seed) {
		target = len(b.seed)
	}
	if target > 0 {
		if err := v.Reserve(target); err != nil {
			return nil, err
		}
	}
	for _, elem := range b.seed {
		if err := v.PushBack(elem); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}
