// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package smallmap

import (
	"fmt"
	"testing"

	"github.com/Fantom-foundation/Collections/common"
)

// initSmallMapReps creates factories producing maps of both representations:
// a roomy inline buffer and a zero-capacity buffer spilling on the first put
func initSmallMapReps() map[string]func() *SmallMap[string, int] {
	return map[string]func() *SmallMap[string, int]{
		"inline":  func() *SmallMap[string, int] { return NewSmallMap[string, int](8) },
		"spilled": func() *SmallMap[string, int] { return NewSmallMap[string, int](0) },
	}
}

func TestSmallMapGetPut(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()

			if _, exists := m.Get("A"); exists {
				t.Errorf("Value is not correct")
			}

			m.Put("A", 10)
			m.Put("B", 20)

			if val, exists := m.Get("A"); !exists || val != 10 {
				t.Errorf("Value is not correct")
			}
			if val, exists := m.Get("B"); !exists || val != 20 {
				t.Errorf("Value is not correct")
			}

			if old, existed := m.Put("A", 33); !existed || old != 10 {
				t.Errorf("replaced value not reported: %d/%t", old, existed)
			}
			if val, _ := m.Get("A"); val != 33 {
				t.Errorf("Value is not correct")
			}
			if size := m.Size(); size != 2 {
				t.Errorf("Size does not fit: %d", size)
			}
		})
	}
}

func TestSmallMapPromotesAtCapacity(t *testing.T) {
	capacity := 4
	m := NewSmallMap[int, int](capacity)

	for i := 0; i < capacity; i++ {
		m.Put(i, i*10)
		if !m.IsInline() {
			t.Fatalf("map spilled before exceeding the inline capacity")
		}
	}
	if got := m.InlineCapacity(); got != capacity {
		t.Errorf("wrong inline capacity: %d", got)
	}

	m.Put(capacity, capacity*10)
	if m.IsInline() {
		t.Errorf("map did not spill after exceeding the inline capacity")
	}

	// the content survives the promotion in order
	for i := 0; i <= capacity; i++ {
		if val, exists := m.Get(i); !exists || val != i*10 {
			t.Errorf("value lost in promotion: %d/%t", val, exists)
		}
		if pos, _ := m.IndexOf(i); pos != i {
			t.Errorf("key order lost in promotion: %d != %d", pos, i)
		}
	}
}

func TestSmallMapPromotionIsOneWay(t *testing.T) {
	m := NewSmallMap[int, int](2)
	for i := 0; i < 3; i++ {
		m.Put(i, i)
	}
	if m.IsInline() {
		t.Fatalf("map did not spill")
	}

	// shrinking below the capacity must not demote
	m.Remove(0)
	m.Remove(1)
	m.Remove(2)
	if m.IsInline() {
		t.Errorf("map returned to the inline representation")
	}
}

func TestSmallMapUpdateDoesNotPromote(t *testing.T) {
	m := NewSmallMap[int, int](2)
	m.Put(1, 10)
	m.Put(2, 20)

	// updates of existing keys do not exceed the capacity
	m.Put(1, 11)
	m.Put(2, 22)
	if !m.IsInline() {
		t.Errorf("update of an existing key promoted the map")
	}
}

func TestSmallMapPutFullReportsPositions(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()

			if pos, _, existed := m.PutFull("A", 1); pos != 0 || existed {
				t.Errorf("wrong position of first key: %d/%t", pos, existed)
			}
			if pos, _, existed := m.PutFull("B", 2); pos != 1 || existed {
				t.Errorf("wrong position of second key: %d/%t", pos, existed)
			}
			if pos, old, existed := m.PutFull("A", 3); pos != 0 || old != 1 || !existed {
				t.Errorf("wrong result of the update: %d/%d/%t", pos, old, existed)
			}
		})
	}
}

func TestSmallMapPositionalLookups(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)
			m.Put("B", 2)

			if key, val, exists := m.GetAt(0); !exists || key != "A" || val != 1 {
				t.Errorf("wrong entry at position 0: %s/%d/%t", key, val, exists)
			}
			if _, _, exists := m.GetAt(2); exists {
				t.Errorf("found entry at out-of-range position")
			}
			if _, _, exists := m.GetAt(-1); exists {
				t.Errorf("found entry at negative position")
			}
			if pos, exists := m.IndexOf("B"); !exists || pos != 1 {
				t.Errorf("wrong position of key: %d/%t", pos, exists)
			}
			if _, exists := m.IndexOf("X"); exists {
				t.Errorf("found position of missing key")
			}
			if !m.ContainsKey("A") || m.ContainsKey("X") {
				t.Errorf("key containment does not match")
			}
		})
	}
}

func TestSmallMapSwapRemoveMovesLastKey(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			for i, key := range []string{"A", "B", "C", "D"} {
				m.Put(key, i)
			}

			if val, existed := m.SwapRemove("B"); !existed || val != 1 {
				t.Errorf("wrong removed value: %d/%t", val, existed)
			}
			common.AssertArraysEqual(t, []string{"A", "D", "C"}, m.Keys())

			if _, existed := m.SwapRemove("X"); existed {
				t.Errorf("removed missing key")
			}
		})
	}
}

func TestSmallMapShiftRemovePreservesOrder(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			for i, key := range []string{"A", "B", "C", "D"} {
				m.Put(key, i)
			}

			if val, existed := m.ShiftRemove("B"); !existed || val != 1 {
				t.Errorf("wrong removed value: %d/%t", val, existed)
			}
			common.AssertArraysEqual(t, []string{"A", "C", "D"}, m.Keys())
			if pos, _ := m.IndexOf("C"); pos != 1 {
				t.Errorf("key did not shift: %d", pos)
			}
		})
	}
}

func TestSmallMapIterationIsIdenticalAcrossRepresentations(t *testing.T) {
	content := []common.MapEntry[string, int]{
		{Key: "C", Val: 3}, {Key: "A", Val: 1}, {Key: "B", Val: 2},
	}
	inline := NewSmallMapFromPairs(8, content)
	spilled := NewSmallMapFromPairs(0, content)
	if !inline.IsInline() || spilled.IsInline() {
		t.Fatalf("unexpected representations")
	}

	for _, m := range []*SmallMap[string, int]{inline, spilled} {
		var entries []common.MapEntry[string, int]
		for it := m.Iterator(); it.HasNext(); {
			entries = append(entries, it.Next())
		}
		common.AssertArraysEqual(t, content, entries)

		var reversed []common.MapEntry[string, int]
		for it := m.ReverseIterator(); it.HasNext(); {
			reversed = append(reversed, it.Next())
		}
		for i := range entries {
			if entries[i] != reversed[len(reversed)-1-i] {
				t.Errorf("reverse iteration order does not match")
			}
		}

		common.AssertArraysEqual(t, []string{"C", "A", "B"}, m.Keys())
		common.AssertArraysEqual(t, []int{3, 1, 2}, m.Values())

		var visited []string
		m.ForEach(func(key string, _ int) {
			visited = append(visited, key)
		})
		common.AssertArraysEqual(t, []string{"C", "A", "B"}, visited)
	}
}

func TestSmallMapClearKeepsRepresentation(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)
			wasInline := m.IsInline()

			m.Clear()
			if m.Size() != 0 || !m.IsEmpty() {
				t.Errorf("map is not empty after clear")
			}
			if m.IsInline() != wasInline {
				t.Errorf("clear changed the representation")
			}

			m.Put("B", 2)
			if val, exists := m.Get("B"); !exists || val != 2 {
				t.Errorf("Value is not correct")
			}
		})
	}
}

func TestSmallMapFromPairsKeepsFirstPositionLastValue(t *testing.T) {
	m := NewSmallMapFromPairs(4, []common.MapEntry[string, int]{
		{Key: "A", Val: 1}, {Key: "B", Val: 2}, {Key: "A", Val: 3},
	})

	if size := m.Size(); size != 2 {
		t.Errorf("Size does not fit: %d", size)
	}
	common.AssertArraysEqual(t, []string{"A", "B"}, m.Keys())
	if val, _ := m.Get("A"); val != 3 {
		t.Errorf("Value is not correct")
	}
}

func TestSmallMapManyItems(t *testing.T) {
	m := NewSmallMap[string, int](8)
	max := 100
	for i := 0; i < max; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}
	if size := m.Size(); size != max {
		t.Errorf("Size does not fit: %d", size)
	}
	for i := 0; i < max; i++ {
		if val, exists := m.Get(fmt.Sprintf("key-%d", i)); !exists || val != i {
			t.Errorf("wrong value for key-%d: %d/%t", i, val, exists)
		}
	}
}

func TestSmallMapMemoryFootprint(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)
			if footprint := m.GetMemoryFootprint(); footprint.Total() == 0 {
				t.Errorf("no memory footprint reported")
			}
		})
	}
}

func TestSmallMapEntryReadsOccupiedSlot(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)

			entry := m.Entry("A")
			if !entry.IsOccupied() || entry.Key() != "A" {
				t.Errorf("handle of existing key is not occupied")
			}
			if val, exists := entry.Get(); !exists || val != 1 {
				t.Errorf("wrong value of occupied slot: %d/%t", val, exists)
			}
			if pos := entry.Index(); pos != 0 {
				t.Errorf("wrong position of occupied slot: %d", pos)
			}
		})
	}
}

func TestSmallMapEntryOrInsertFillsVacantSlot(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)

			entry := m.Entry("B")
			if entry.IsOccupied() {
				t.Errorf("handle of missing key is occupied")
			}
			if _, exists := entry.Get(); exists {
				t.Errorf("vacant slot has a value")
			}

			if val := entry.OrInsert(2); val != 2 {
				t.Errorf("wrong value after insert: %d", val)
			}
			if !entry.IsOccupied() {
				t.Errorf("handle is still vacant after insert")
			}
			if val, exists := m.Get("B"); !exists || val != 2 {
				t.Errorf("inserted value not in the map: %d/%t", val, exists)
			}

			// an occupied slot keeps its value
			if val := m.Entry("A").OrInsert(99); val != 1 {
				t.Errorf("insert into occupied slot changed the value: %d", val)
			}
		})
	}
}

func TestSmallMapEntryOrInsertWithIsLazy(t *testing.T) {
	m := NewSmallMap[string, int](4)
	m.Put("A", 1)

	called := false
	m.Entry("A").OrInsertWith(func() int {
		called = true
		return 99
	})
	if called {
		t.Errorf("provider called for occupied slot")
	}

	if val := m.Entry("B").OrInsertWith(func() int { return 2 }); val != 2 {
		t.Errorf("wrong provided value: %d", val)
	}
}

func TestSmallMapEntryOrDefault(t *testing.T) {
	m := NewSmallMap[string, int](4)
	if val := m.Entry("A").OrDefault(); val != 0 {
		t.Errorf("wrong default value: %d", val)
	}
	if val, exists := m.Get("A"); !exists || val != 0 {
		t.Errorf("default value not in the map: %d/%t", val, exists)
	}
}

func TestSmallMapEntryAndModify(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)

			// counter pattern: bump when present, start at one otherwise
			m.Entry("A").AndModify(func(val *int) { *val += 1 }).OrInsert(1)
			m.Entry("B").AndModify(func(val *int) { *val += 1 }).OrInsert(1)

			if val, _ := m.Get("A"); val != 2 {
				t.Errorf("modify did not update the value: %d", val)
			}
			if val, _ := m.Get("B"); val != 1 {
				t.Errorf("modify touched a vacant slot: %d", val)
			}
		})
	}
}

func TestSmallMapEntryRemove(t *testing.T) {
	for name, factory := range initSmallMapReps() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Put("A", 1)

			entry := m.Entry("A")
			if val, existed := entry.Remove(); !existed || val != 1 {
				t.Errorf("wrong removed value: %d/%t", val, existed)
			}
			if entry.IsOccupied() {
				t.Errorf("handle is still occupied after removal")
			}
			if m.ContainsKey("A") {
				t.Errorf("removed key still present")
			}
			if _, existed := entry.Remove(); existed {
				t.Errorf("removed vacant slot")
			}
		})
	}
}
