// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package multimap

import (
	"testing"

	"github.com/Fantom-foundation/Collections/common"
)

// testIndexedMultimap extends the shared surface with positional access.
type testIndexedMultimap interface {
	testMultimap
	InsertFull(key uint32, value uint64) (int, int, bool)
	GetFull(key uint32) (int, []uint64, bool)
	GetKeyIndex(key uint32) (int, bool)
	GetAt(pos int) (uint32, []uint64, bool)
	ShiftRemoveKey(key uint32) ([]uint64, bool)
	SwapRemoveKey(key uint32) ([]uint64, bool)
	SwapRemove(key uint32, value uint64) bool
}

// initIndexedFactories creates tested factories of the insertion-ordered variants
func initIndexedFactories() map[string]func() testIndexedMultimap {
	return map[string]func() testIndexedMultimap{
		"indexSet": func() testIndexedMultimap { return NewIndexSetMultimap[uint32, uint64]() },
		"indexVec": func() testIndexedMultimap { return NewIndexVecMultimap[uint32, uint64]() },
	}
}

func TestIndexedMultimap_KeysKeepInsertionOrder(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			inserted := []uint32{5, 1, 9, 3}
			for _, key := range inserted {
				m.Insert(key, uint64(key))
			}
			// re-inserting an existing key must not move it
			m.Insert(5, 100)

			var keys []uint32
			for it := m.Keys(); it.HasNext(); {
				keys = append(keys, it.Next())
			}
			common.AssertArraysEqual(t, inserted, keys)
		})
	}
}

func TestIndexedMultimap_ValuesKeepInsertionOrder(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			values := []uint64{40, 10, 30, 20}
			for _, value := range values {
				m.Insert(1, value)
			}
			common.AssertArraysEqual(t, values, m.GetAll(1))
		})
	}
}

func TestIndexedMultimap_InsertFullReportsPositions(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()

			if keyPos, valuePos, added := m.InsertFull(7, 70); keyPos != 0 || valuePos != 0 || !added {
				t.Errorf("wrong positions for first pair: %d/%d/%t", keyPos, valuePos, added)
			}
			if keyPos, valuePos, added := m.InsertFull(7, 71); keyPos != 0 || valuePos != 1 || !added {
				t.Errorf("wrong positions for second value: %d/%d/%t", keyPos, valuePos, added)
			}
			if keyPos, valuePos, added := m.InsertFull(8, 80); keyPos != 1 || valuePos != 0 || !added {
				t.Errorf("wrong positions for second key: %d/%d/%t", keyPos, valuePos, added)
			}
		})
	}
}

func TestIndexSetMultimap_InsertFullReportsExistingPositions(t *testing.T) {
	m := NewIndexSetMultimap[uint32, uint64]()
	m.InsertFull(7, 70)
	m.InsertFull(7, 71)

	keyPos, valuePos, added := m.InsertFull(7, 70)
	if added {
		t.Errorf("duplicated pair reported as added")
	}
	if keyPos != 0 || valuePos != 0 {
		t.Errorf("wrong positions of the existing pair: %d/%d", keyPos, valuePos)
	}
	if size := m.Size(); size != 2 {
		t.Errorf("Size does not fit: %d", size)
	}
}

func TestIndexVecMultimap_InsertFullAppendsDuplicates(t *testing.T) {
	m := NewIndexVecMultimap[uint32, uint64]()
	m.InsertFull(7, 70)

	keyPos, valuePos, added := m.InsertFull(7, 70)
	if !added {
		t.Errorf("duplicated pair was not appended")
	}
	if keyPos != 0 || valuePos != 1 {
		t.Errorf("wrong positions of the appended pair: %d/%d", keyPos, valuePos)
	}
	common.AssertArraysEqual(t, []uint64{70, 70}, m.GetAll(7))
}

func TestIndexedMultimap_PositionalLookups(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Insert(5, 50)
			m.Insert(1, 10)
			m.Insert(1, 11)

			if pos, exists := m.GetKeyIndex(1); !exists || pos != 1 {
				t.Errorf("wrong key index: %d/%t", pos, exists)
			}
			if _, exists := m.GetKeyIndex(9); exists {
				t.Errorf("found index of missing key")
			}

			pos, values, exists := m.GetFull(1)
			if !exists || pos != 1 {
				t.Errorf("wrong key index: %d/%t", pos, exists)
			}
			common.AssertArraysEqual(t, []uint64{10, 11}, values)

			key, values, exists := m.GetAt(0)
			if !exists || key != 5 {
				t.Errorf("wrong key at position 0: %d/%t", key, exists)
			}
			common.AssertArraysEqual(t, []uint64{50}, values)

			if _, _, exists := m.GetAt(2); exists {
				t.Errorf("found entry at out-of-range position")
			}
			if _, _, exists := m.GetAt(-1); exists {
				t.Errorf("found entry at negative position")
			}
		})
	}
}

func TestIndexedMultimap_ShiftRemoveKeyPreservesOrder(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			for _, key := range []uint32{1, 2, 3, 4} {
				m.Insert(key, uint64(key)*10)
			}

			values, removed := m.ShiftRemoveKey(2)
			if !removed {
				t.Errorf("cannot remove existing key")
			}
			common.AssertArraysEqual(t, []uint64{20}, values)

			var keys []uint32
			for it := m.Keys(); it.HasNext(); {
				keys = append(keys, it.Next())
			}
			common.AssertArraysEqual(t, []uint32{1, 3, 4}, keys)

			// subsequent keys shift one position down
			if pos, _ := m.GetKeyIndex(3); pos != 1 {
				t.Errorf("key did not shift: %d", pos)
			}
			if pos, _ := m.GetKeyIndex(4); pos != 2 {
				t.Errorf("key did not shift: %d", pos)
			}

			if _, removed := m.ShiftRemoveKey(9); removed {
				t.Errorf("removed missing key")
			}
		})
	}
}

func TestIndexedMultimap_SwapRemoveKeyMovesLastKey(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			for _, key := range []uint32{1, 2, 3, 4} {
				m.Insert(key, uint64(key)*10)
			}

			values, removed := m.SwapRemoveKey(2)
			if !removed {
				t.Errorf("cannot remove existing key")
			}
			common.AssertArraysEqual(t, []uint64{20}, values)

			// the last key fills the vacated position
			var keys []uint32
			for it := m.Keys(); it.HasNext(); {
				keys = append(keys, it.Next())
			}
			common.AssertArraysEqual(t, []uint32{1, 4, 3}, keys)
			if pos, _ := m.GetKeyIndex(4); pos != 1 {
				t.Errorf("last key did not move into the gap: %d", pos)
			}

			if size := m.Size(); size != 3 {
				t.Errorf("Size does not fit: %d", size)
			}
		})
	}
}

func TestIndexedMultimap_SwapRemovePairSwapsEmptiedKey(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			m.Insert(1, 10)
			m.Insert(2, 20)
			m.Insert(3, 30)

			if m.SwapRemove(2, 99) {
				t.Errorf("removed missing pair")
			}
			if !m.SwapRemove(2, 20) {
				t.Errorf("cannot remove existing pair")
			}

			var keys []uint32
			for it := m.Keys(); it.HasNext(); {
				keys = append(keys, it.Next())
			}
			common.AssertArraysEqual(t, []uint32{1, 3}, keys)
			if pos, _ := m.GetKeyIndex(3); pos != 1 {
				t.Errorf("last key did not move into the gap: %d", pos)
			}
		})
	}
}

func TestIndexedMultimap_RemoveKeyAliasesShiftRemove(t *testing.T) {
	for name, factory := range initIndexedFactories() {
		t.Run(name, func(t *testing.T) {
			m := factory()
			for _, key := range []uint32{1, 2, 3} {
				m.Insert(key, uint64(key))
			}
			m.RemoveKey(1)

			var keys []uint32
			for it := m.Keys(); it.HasNext(); {
				keys = append(keys, it.Next())
			}
			common.AssertArraysEqual(t, []uint32{2, 3}, keys)
		})
	}
}
