package vectorx_test

import (
	"testing"

	. "github.com/comalice/vectorx"
)

func TestBuilderDefaults(t *testing.T) {
	v, err := NewBuilder[int]().Build()
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("default build: Len=%d Cap=%d, want 0/0", v.Len(), v.Cap())
	}
}

func TestBuilderSeedsInOrder(t *testing.T) {
	v, err := NewBuilder[string]().
		Append("a", "b").
		Append("c").
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if v.Len() != 3 {
		t.Fatalf("Len=%d, want 3", v.Len())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d)=%q, want %q", i, got, want)
		}
	}
	// Seeding performs a single reservation, no doubling.
	if v.Cap() != 3 {
		t.Errorf("Cap=%d, want 3", v.Cap())
	}
}

func TestBuilderCapacityDominates(t *testing.T) {
	v, err := NewBuilder[int]().
		WithCapacity(16).
		Append(1, 2, 3).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 16 || v.Len() != 3 {
		t.Errorf("Len=%d Cap=%d, want 3/16", v.Len(), v.Cap())
	}
}

func TestBuilderIsReusable(t *testing.T) {
	b := NewBuilder[int]().Append(1, 2)

	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	second.Set(0, 99)
	if first.At(0) != 1 {
		t.Errorf("builds share state: first.At(0)=%d", first.At(0))
	}
}
