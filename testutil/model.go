package testutil

// Model is a reference sequence implementing the vector's operation contract
// directly on a slice. Stress tests apply identical operation streams to a
// Model and a Vector and diff the observable state after every step.
type Model struct {
	elems []int
}

// PushBack appends v.
func (m *Model) PushBack(v int) {
	m.elems = append(m.elems, v)
}

// PopBack removes the last element. Must not be called on an empty model.
func (m *Model) PopBack() {
	m.elems = m.elems[:len(m.elems)-1]
}

// Insert places v at index i, shifting later elements right.
func (m *Model) Insert(i, v int) {
	m.elems = append(m.elems, 0)
	copy(m.elems[i+1:], m.elems[i:])
	m.elems[i] = v
}

// Erase removes [first, last), returning the index after the removed range.
// An empty or inverted range is a no-op returning last.
func (m *Model) Erase(first, last int) int {
	if last-first <= 0 {
		return last
	}
	m.elems = append(m.elems[:first], m.elems[last:]...)
	return first
}

// Clear removes every element.
func (m *Model) Clear() {
	m.elems = m.elems[:0]
}

// Len reports the element count.
func (m *Model) Len() int {
	return len(m.elems)
}

// Elems returns the live contents. The slice aliases the model.
func (m *Model) Elems() []int {
	return m.elems
}
