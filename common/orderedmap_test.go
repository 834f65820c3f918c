package common

import (
	"fmt"
	"testing"
)

func TestOrderedMapIsMap(t *testing.T) {
	var instance OrderedMap[string, uint32]
	var _ Map[string, uint32] = &instance
}

func TestOrderedMapGetPut(t *testing.T) {
	m := NewOrderedMap[string, uint32]()

	if _, exists := m.Get("A"); exists {
		t.Errorf("Value is not correct")
	}

	m.Put("A", 10)
	m.Put("B", 20)
	m.Put("C", 30)

	if val, exists := m.Get("A"); !exists || val != 10 {
		t.Errorf("Value is not correct")
	}
	if val, exists := m.Get("B"); !exists || val != 20 {
		t.Errorf("Value is not correct")
	}
	if val, exists := m.Get("C"); !exists || val != 30 {
		t.Errorf("Value is not correct")
	}

	// replace
	m.Put("A", 33)
	if val, exists := m.Get("A"); !exists || val != 33 {
		t.Errorf("Value is not correct")
	}

	if size := m.Size(); size != 3 {
		t.Errorf("Size does not fit: %d", size)
	}
}

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	keys := []string{"E", "B", "D", "A", "C"}
	for i, key := range keys {
		m.Put(key, i)
	}

	// updates must not change the order
	m.Put("B", 100)

	AssertArraysEqual(t, keys, m.Keys())

	var visited []string
	m.ForEach(func(k string, v int) {
		visited = append(visited, k)
	})
	AssertArraysEqual(t, keys, visited)
}

func TestOrderedMapPutFullReportsPositions(t *testing.T) {
	m := NewOrderedMap[string, int]()

	if pos, _, existed := m.PutFull("A", 1); pos != 0 || existed {
		t.Errorf("wrong position for new key: %d", pos)
	}
	if pos, _, existed := m.PutFull("B", 2); pos != 1 || existed {
		t.Errorf("wrong position for new key: %d", pos)
	}
	if pos, old, existed := m.PutFull("A", 3); pos != 0 || !existed || old != 1 {
		t.Errorf("wrong position for existing key: %d, old: %d", pos, old)
	}

	if pos, exists := m.IndexOf("B"); !exists || pos != 1 {
		t.Errorf("wrong index of key: %d", pos)
	}
	if _, exists := m.IndexOf("X"); exists {
		t.Errorf("index of missing key reported")
	}
	if key, val, exists := m.GetAt(1); !exists || key != "B" || val != 2 {
		t.Errorf("wrong entry at position: %v -> %d", key, val)
	}
	if _, _, exists := m.GetAt(5); exists {
		t.Errorf("entry beyond size reported")
	}
}

func TestOrderedMapShiftRemovePreservesOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	for i, key := range []string{"A", "B", "C", "D"} {
		m.Put(key, i)
	}

	if val, exists := m.ShiftRemove("B"); !exists || val != 1 {
		t.Errorf("wrong removed value: %d", val)
	}

	AssertArraysEqual(t, []string{"A", "C", "D"}, m.Keys())

	// positions of all later keys shift down by one
	for i, key := range []string{"A", "C", "D"} {
		if pos, _ := m.IndexOf(key); pos != i {
			t.Errorf("wrong position of %s: %d != %d", key, pos, i)
		}
	}
}

func TestOrderedMapSwapRemoveMovesLastOnly(t *testing.T) {
	m := NewOrderedMap[string, int]()
	for i, key := range []string{"A", "B", "C", "D"} {
		m.Put(key, i)
	}

	if val, exists := m.SwapRemove("B"); !exists || val != 1 {
		t.Errorf("wrong removed value: %d", val)
	}

	// the last key fills the gap, all others keep their positions
	AssertArraysEqual(t, []string{"A", "D", "C"}, m.Keys())
	for key, want := range map[string]int{"A": 0, "D": 1, "C": 2} {
		if pos, _ := m.IndexOf(key); pos != want {
			t.Errorf("wrong position of %s: %d != %d", key, pos, want)
		}
	}

	// swap-removing the last key must not move anything
	if _, exists := m.SwapRemove("C"); !exists {
		t.Errorf("cannot remove last key")
	}
	AssertArraysEqual(t, []string{"A", "D"}, m.Keys())
}

func TestOrderedMapRemoveMissing(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Put("A", 1)

	if _, exists := m.ShiftRemove("X"); exists {
		t.Errorf("removed non-existing key")
	}
	if _, exists := m.SwapRemove("X"); exists {
		t.Errorf("removed non-existing key")
	}
	if size := m.Size(); size != 1 {
		t.Errorf("Size does not fit: %d", size)
	}
}

func TestOrderedMapIterators(t *testing.T) {
	m := NewOrderedMap[int, int]()
	max := 100
	for i := 0; i < max; i++ {
		m.Put(i, i*10)
	}

	it := m.Iterator()
	for i := 0; i < max; i++ {
		if !it.HasNext() {
			t.Fatalf("iterator ended early at %d", i)
		}
		if entry := it.Next(); entry.Key != i || entry.Val != i*10 {
			t.Errorf("unexpected entry: %v", entry)
		}
	}
	if it.HasNext() {
		t.Errorf("iterator must be exhausted")
	}

	rit := m.ReverseIterator()
	for i := max - 1; i >= 0; i-- {
		if !rit.HasNext() {
			t.Fatalf("reverse iterator ended early at %d", i)
		}
		if entry := rit.Next(); entry.Key != i {
			t.Errorf("unexpected entry: %v", entry)
		}
	}
	if rit.HasNext() {
		t.Errorf("reverse iterator must be exhausted")
	}
}

func TestOrderedMapClear(t *testing.T) {
	m := NewOrderedMap[string, int]()
	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}

	m.Clear()
	if size := m.Size(); size != 0 {
		t.Errorf("Map is not empty")
	}
	m.ForEach(func(k string, v int) {
		t.Errorf("Map is not empty")
	})

	// the map must be usable after clear
	m.Put("A", 1)
	if val, exists := m.Get("A"); !exists || val != 1 {
		t.Errorf("Value is not correct")
	}
}

func TestOrderedMapMemoryFootprint(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Put("A", 1)
	footprint := m.GetMemoryFootprint()
	if footprint.Total() == 0 {
		t.Errorf("no memory footprint reported")
	}
}
