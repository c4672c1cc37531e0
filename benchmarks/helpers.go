// Package benchmarks provides workload generators and performance benchmarks
// for the vector container.
package benchmarks

import (
	"github.com/comalice/vectorx"
	"github.com/comalice/vectorx/testutil"
	"gopkg.in/yaml.v3"
)

// GenFilled returns a vector seeded with n sequential ints, grown through
// the doubling schedule (no up-front reservation).
func GenFilled(n int) *vectorx.Vector[int] {
	v := vectorx.New[int]()
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			panic(err)
		}
	}
	return v
}

// GenTracked returns a probe vector of n elements and the ledger accounting
// for it, for benchmarks of the element-wise lifecycle path.
func GenTracked(n int) (*vectorx.Vector[testutil.Probe], *testutil.Ledger) {
	l := testutil.NewLedger()
	v := vectorx.WithTraits(l.Traits())
	for i := 0; i < n; i++ {
		if err := v.PushBack(testutil.Probe{ID: i}); err != nil {
			panic(err)
		}
	}
	return v, l
}

// GenStatsYAML marshals the shape of a freshly grown n-element vector to
// YAML, for benchmark logs and fixtures.
func GenStatsYAML(n int) []byte {
	data, err := yaml.Marshal(GenFilled(n).Stats())
	if err != nil {
		panic(err)
	}
	return data
}
