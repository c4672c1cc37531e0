package vectorx

// Snapshot captures the observable shape of a vector for diagnostics:
// benchmark logs, demos, debugging. It carries no element data.
type Snapshot struct {
	Len     int `json:"len" yaml:"len"`
	Cap     int `json:"cap" yaml:"cap"`
	Grows   int `json:"grows" yaml:"grows"`
	Shrinks int `json:"shrinks" yaml:"shrinks"`
}

// Stats returns a snapshot of the vector's current shape. Grows counts
// reallocations that increased capacity (growth and Reserve); Shrinks counts
// ShrinkToFit reallocations.
func (v *Vector[T]) Stats() Snapshot {
	return Snapshot{
		Len:     v.n,
		Cap:     len(v.buf),
		Grows:   v.grows,
		Shrinks: v.shrinks,
	}
}
