package storage

import (
	"errors"
	"testing"
)

func TestAllocZeroIsNil(t *testing.T) {
	if buf := Alloc[int](0); buf != nil {
		t.Errorf("Alloc(0) = %v, want nil", buf)
	}
	if buf := Alloc[int](4); len(buf) != 4 {
		t.Errorf("Alloc(4) len = %d, want 4", len(buf))
	}
}

func TestCopyIntoBulk(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 5)

	if err := CopyInto(dst, src, nil, nil); err != nil {
		t.Fatalf("bulk CopyInto failed: %v", err)
	}
	for i, want := range src {
		if dst[i] != want {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
	if dst[3] != 0 || dst[4] != 0 {
		t.Errorf("slots past the copied prefix were touched: %v", dst)
	}
}

func TestCopyIntoElementwise(t *testing.T) {
	var copies int
	copyFn := func(v int) (int, error) {
		copies++
		return v, nil
	}

	src := []int{4, 5, 6}
	dst := make([]int, 3)
	if err := CopyInto(dst, src, copyFn, nil); err != nil {
		t.Fatalf("CopyInto failed: %v", err)
	}
	if copies != 3 {
		t.Errorf("copyFn invoked %d times, want 3", copies)
	}
	for i, want := range src {
		if dst[i] != want {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestCopyIntoRollsBackOnFailure(t *testing.T) {
	boom := errors.New("boom")
	var disposed []int
	copyFn := func(v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return v, nil
	}
	dispose := func(v int) { disposed = append(disposed, v) }

	src := []int{1, 2, 3, 4}
	dst := make([]int, 4)
	err := CopyInto(dst, src, copyFn, dispose)
	if !errors.Is(err, boom) {
		t.Fatalf("CopyInto error = %v, want wrapped boom", err)
	}

	// The two already-placed copies are destroyed in reverse order and the
	// whole destination is left zeroed.
	if len(disposed) != 2 || disposed[0] != 2 || disposed[1] != 1 {
		t.Errorf("disposed = %v, want [2 1]", disposed)
	}
	for i, v := range dst {
		if v != 0 {
			t.Errorf("dst[%d] = %d after rollback, want 0", i, v)
		}
	}
	// Source is untouched.
	for i, want := range []int{1, 2, 3, 4} {
		if src[i] != want {
			t.Errorf("src[%d] = %d, want %d", i, src[i], want)
		}
	}
}

func TestDestroyRangeReverseOrder(t *testing.T) {
	var order []int
	slots := []int{10, 20, 30}
	DestroyRange(slots, func(v int) { order = append(order, v) })

	if len(order) != 3 || order[0] != 30 || order[1] != 20 || order[2] != 10 {
		t.Errorf("dispose order = %v, want [30 20 10]", order)
	}
	for i, v := range slots {
		if v != 0 {
			t.Errorf("slots[%d] = %d after destroy, want 0", i, v)
		}
	}
}

func TestDestroyRangeNilDisposeZeroesOnly(t *testing.T) {
	slots := []string{"a", "b"}
	DestroyRange(slots, nil)
	if slots[0] != "" || slots[1] != "" {
		t.Errorf("slots = %v after destroy, want zeroed", slots)
	}
}
