package vectorx

// Traits bundles the optional element lifecycle hooks of a vector.
//
// Copy duplicates an element whenever the container needs its own instance:
// PushBack/Insert of a caller value, Clone/Assign, and relocation during
// Reserve, ShrinkToFit or growth. It may fail; every operation's guarantee
// (strong or weak) is defined in terms of that failure.
//
// Dispose releases an element the container no longer holds: PopBack, Erase,
// Clear, Release, overwrite via Set, and the originals left behind after a
// relocation.
//
// The zero Traits value describes a trivially copyable element: copies become
// plain assignments (bulk-copied during relocation) and cannot fail, and
// released slots are merely zeroed.
//
// Dispose without Copy is permitted but makes Clone and Assign duplicate
// ownership: both vectors will eventually dispose bit-identical elements.
// Element types owning real resources should set both hooks.
type Traits[T any] struct {
	Copy    func(T) (T, error)
	Dispose func(T)
}

func (tr Traits[T]) copyOne(elem T) (T, error) {
	if tr.Copy == nil {
		return elem, nil
	}
	return tr.Copy(elem)
}

func (tr Traits[T]) disposeOne(elem T) {
	if tr.Dispose != nil {
		tr.Dispose(elem)
	}
}
