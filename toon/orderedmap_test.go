package toon

import (
	"sort"
	"testing"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	om := NewOrderedMap()
	om.Set("z", Int(1))
	om.Set("a", Int(2))
	om.Set("m", Int(3))

	want := []string{"z", "a", "m"}
	got := om.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedMapSetExistingKeyKeepsPosition(t *testing.T) {
	om := NewOrderedMap()
	om.Set("a", Int(1))
	om.Set("b", Int(2))
	om.Set("a", Int(99))

	if got := om.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
	v, ok := om.Get("a")
	if !ok {
		t.Fatal("Get(a) not found")
	}
	if i, _ := v.Int(); i != 99 {
		t.Errorf("Get(a) = %d, want 99", i)
	}
}

func TestOrderedMapDelete(t *testing.T) {
	om := NewOrderedMap()
	om.Set("a", Int(1))
	om.Set("b", Int(2))
	om.Set("c", Int(3))

	om.Delete("b")

	if om.Len() != 2 {
		t.Errorf("Len() = %d, want 2", om.Len())
	}
	if _, ok := om.Get("b"); ok {
		t.Error("Get(b) found after Delete")
	}
	if got := om.Keys(); got[0] != "a" || got[1] != "c" {
		t.Errorf("Keys() = %v, want [a c]", got)
	}
}

func TestOrderedMapDeleteMissingKeyIsNoop(t *testing.T) {
	om := NewOrderedMap()
	om.Set("a", Int(1))
	om.Delete("nonexistent")
	if om.Len() != 1 {
		t.Errorf("Len() = %d, want 1", om.Len())
	}
}

func TestOrderedMapLenNilReceiver(t *testing.T) {
	var om *OrderedMap
	if got := om.Len(); got != 0 {
		t.Errorf("Len() on nil = %d, want 0", got)
	}
}

func TestOrderedMapSort(t *testing.T) {
	om := NewOrderedMap()
	om.Set("z", Int(1))
	om.Set("a", Int(2))
	om.Set("m", Int(3))

	om.Sort(func(a, b *Pair) bool { return a.Key() < b.Key() })

	want := []string{"a", "m", "z"}
	got := om.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedMapSortKeys(t *testing.T) {
	om := NewOrderedMap()
	om.Set("z", Int(1))
	om.Set("a", Int(2))

	om.SortKeys(func(keys []string) { sort.Strings(keys) })

	got := om.Keys()
	if got[0] != "a" || got[1] != "z" {
		t.Errorf("Keys() = %v, want [a z]", got)
	}
}

func TestSameKeySet(t *testing.T) {
	a := NewOrderedMap()
	a.Set("id", Int(1))
	a.Set("name", String("x"))

	b := NewOrderedMap()
	b.Set("name", String("y"))
	b.Set("id", Int(2))

	if !sameKeySet(a, b) {
		t.Error("sameKeySet() = false, want true for same keys in different order")
	}

	c := NewOrderedMap()
	c.Set("id", Int(3))
	if sameKeySet(a, c) {
		t.Error("sameKeySet() = true, want false for different key sets")
	}
}

func TestPairAccessors(t *testing.T) {
	p := &Pair{key: "k", value: String("v")}
	if p.Key() != "k" {
		t.Errorf("Key() = %q, want k", p.Key())
	}
	s, _ := p.Value().Str()
	if s != "v" {
		t.Errorf("Value() = %q, want v", s)
	}
}
