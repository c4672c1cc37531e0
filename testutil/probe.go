// Package testutil provides the shared harness for exercising vector
// lifecycle guarantees: a fallible probe element with copy/disposal
// accounting, and a plain-slice reference model for stress diffing.
package testutil

import (
	"errors"

	"github.com/comalice/vectorx"
)

// ErrScheduledFailure is returned by a probe copy that a Ledger was told to
// fail. Tests match it with errors.Is through the vector's wrapping.
var ErrScheduledFailure = errors.New("testutil: scheduled probe copy failure")

// Probe is the element type tracked by a Ledger. The ID survives copying, so
// tests can assert element identity across relocations.
type Probe struct {
	ID int
}

// Ledger accounts for every copy and disposal a vector performs on its
// probes. A balanced ledger (Live() == Len of the owning vector, or zero
// after Release) proves no element was leaked or double-disposed.
//
// Ledgers are not safe for concurrent use, matching the container itself.
type Ledger struct {
	Copies    int
	Disposals int

	failAt int // copy ordinal that fails; 0 means disabled
}

// NewLedger creates a ledger with no failure scheduled.
func NewLedger() *Ledger {
	return &Ledger{}
}

// FailOnCopy schedules the n-th copy from now (1-based) to fail with
// ErrScheduledFailure. The schedule disarms after firing.
func (l *Ledger) FailOnCopy(n int) {
	l.failAt = l.Copies + n
}

// Live reports copies not yet balanced by a disposal.
func (l *Ledger) Live() int {
	return l.Copies - l.Disposals
}

// Traits returns vector lifecycle hooks wired to this ledger.
func (l *Ledger) Traits() vectorx.Traits[Probe] {
	return vectorx.Traits[Probe]{
		Copy: func(p Probe) (Probe, error) {
			if l.failAt != 0 && l.Copies+1 == l.failAt {
				l.failAt = 0
				return Probe{}, ErrScheduledFailure
			}
			l.Copies++
			return p, nil
		},
		Dispose: func(Probe) {
			l.Disposals++
		},
	}
}
