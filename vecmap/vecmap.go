// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package vecmap provides a map over a dense key range backed by a plain
// slot array. Keys translate to slot indices through a KeyMapper, making
// lookups a single bounds check and an array access. The slot array grows
// with the highest inserted index and never shrinks below it.
package vecmap

import (
	"unsafe"

	"github.com/Fantom-foundation/Collections/common"
)

// VecMap is a map from keys of a dense range to values, storing values
// directly in the slot their key translates to. Iteration follows the
// slot order, which is the key order for monotone mappers.
//
// Operations taking a key return an error when the mapper rejects it;
// such calls leave the map untouched.
type VecMap[K comparable, V any] struct {
	mapper KeyMapper[K]
	slots  []vecMapSlot[V]
	size   int
}

type vecMapSlot[V any] struct {
	value    V
	occupied bool
}

// NewVecMap creates an empty VecMap translating keys with the given mapper.
func NewVecMap[K comparable, V any](mapper KeyMapper[K]) *VecMap[K, V] {
	return NewVecMapWithCapacity[K, V](mapper, 0)
}

// NewVecMapWithCapacity creates an empty VecMap pre-sized for keys of
// slot indices below the given capacity.
func NewVecMapWithCapacity[K comparable, V any](mapper KeyMapper[K], capacity int) *VecMap[K, V] {
	return &VecMap[K, V]{
		mapper: mapper,
		slots:  make([]vecMapSlot[V], 0, capacity),
	}
}

// NewVecMapFromPairs creates a VecMap seeded with the given key-value
// pairs. A duplicated key keeps the last associated value. The first
// rejected key aborts the construction.
func NewVecMapFromPairs[K comparable, V any](mapper KeyMapper[K], pairs []common.MapEntry[K, V]) (*VecMap[K, V], error) {
	res := NewVecMapWithCapacity[K, V](mapper, len(pairs))
	for _, pair := range pairs {
		if _, _, err := res.Put(pair.Key, pair.Val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Put associates a key to a value and returns the value it replaces, if
// any. The slot array grows to cover the key's slot.
func (m *VecMap[K, V]) Put(key K, val V) (old V, existed bool, err error) {
	index, err := m.mapper.ToIndex(key)
	if err != nil {
		return old, false, err
	}
	m.ensure(index + 1)
	slot := &m.slots[index]
	if slot.occupied {
		old = slot.value
		slot.value = val
		return old, true, nil
	}
	slot.value = val
	slot.occupied = true
	m.size++
	return old, false, nil
}

// Get returns a value from the map or false.
func (m *VecMap[K, V]) Get(key K) (val V, exists bool, err error) {
	index, err := m.mapper.ToIndex(key)
	if err != nil {
		return val, false, err
	}
	if index >= len(m.slots) || !m.slots[index].occupied {
		return val, false, nil
	}
	return m.slots[index].value, true, nil
}

// ContainsKey returns true if the key is present.
func (m *VecMap[K, V]) ContainsKey(key K) (bool, error) {
	_, exists, err := m.Get(key)
	return exists, err
}

// Remove deletes the key from the map and returns its value. The slot
// array keeps its length.
func (m *VecMap[K, V]) Remove(key K) (val V, existed bool, err error) {
	index, err := m.mapper.ToIndex(key)
	if err != nil {
		return val, false, err
	}
	if index >= len(m.slots) || !m.slots[index].occupied {
		return val, false, nil
	}
	val = m.slots[index].value
	m.slots[index] = vecMapSlot[V]{}
	m.size--
	return val, true, nil
}

// Pop removes and returns the entry of the highest occupied slot.
func (m *VecMap[K, V]) Pop() (key K, val V, exists bool) {
	for index := len(m.slots) - 1; index >= 0; index-- {
		if !m.slots[index].occupied {
			continue
		}
		key = m.mapper.FromIndex(index)
		val = m.slots[index].value
		m.slots = m.slots[:index]
		m.size--
		return key, val, true
	}
	return key, val, false
}

// Retain keeps only the entries fulfilling the predicate and returns the
// number of removed entries.
func (m *VecMap[K, V]) Retain(predicate func(key K, val V) bool) int {
	removed := 0
	for index := range m.slots {
		if !m.slots[index].occupied {
			continue
		}
		if !predicate(m.mapper.FromIndex(index), m.slots[index].value) {
			m.slots[index] = vecMapSlot[V]{}
			m.size--
			removed++
		}
	}
	return removed
}

// Clear removes all entries keeping the allocated capacity.
func (m *VecMap[K, V]) Clear() {
	for index := range m.slots {
		m.slots[index] = vecMapSlot[V]{}
	}
	m.slots = m.slots[:0]
	m.size = 0
}

// Reserve grows the allocated capacity to cover keys of slot indices
// below the given capacity. It is a non-binding hint.
func (m *VecMap[K, V]) Reserve(capacity int) {
	if capacity <= cap(m.slots) {
		return
	}
	slots := make([]vecMapSlot[V], len(m.slots), capacity)
	copy(slots, m.slots)
	m.slots = slots
}

// Size returns the number of entries in the map.
func (m *VecMap[K, V]) Size() int {
	return m.size
}

// Capacity returns the number of slots the map can hold without growing.
func (m *VecMap[K, V]) Capacity() int {
	return cap(m.slots)
}

// IsEmpty returns true if the map holds no entry.
func (m *VecMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// ForEach calls the callback for each key-value pair in the slot order.
func (m *VecMap[K, V]) ForEach(callback func(K, V)) {
	for index := range m.slots {
		if m.slots[index].occupied {
			callback(m.mapper.FromIndex(index), m.slots[index].value)
		}
	}
}

// Keys returns all keys of this map in the slot order.
func (m *VecMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.ForEach(func(key K, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// Values returns all values of this map in the slot order.
func (m *VecMap[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.ForEach(func(_ K, val V) {
		values = append(values, val)
	})
	return values
}

// Iterator provides an iterator over the entries in the slot order.
func (m *VecMap[K, V]) Iterator() common.Iterator[common.MapEntry[K, V]] {
	return &vecMapIterator[K, V]{m: m}
}

// ReverseIterator provides an iterator over the entries in the reversed
// slot order.
func (m *VecMap[K, V]) ReverseIterator() common.Iterator[common.MapEntry[K, V]] {
	return &vecMapReverseIterator[K, V]{m: m, pos: len(m.slots) - 1}
}

// ensure grows the slot array to the given length.
func (m *VecMap[K, V]) ensure(length int) {
	if length <= len(m.slots) {
		return
	}
	m.slots = append(m.slots, make([]vecMapSlot[V], length-len(m.slots))...)
}

func (m *VecMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	slotSize := unsafe.Sizeof(vecMapSlot[V]{})
	return common.NewMemoryFootprint(unsafe.Sizeof(*m) + uintptr(cap(m.slots))*slotSize)
}

type vecMapIterator[K comparable, V any] struct {
	m   *VecMap[K, V]
	pos int
}

func (it *vecMapIterator[K, V]) HasNext() bool {
	for it.pos < len(it.m.slots) && !it.m.slots[it.pos].occupied {
		it.pos++
	}
	return it.pos < len(it.m.slots)
}

func (it *vecMapIterator[K, V]) Next() common.MapEntry[K, V] {
	it.HasNext() // settle on the next occupied slot
	entry := common.MapEntry[K, V]{Key: it.m.mapper.FromIndex(it.pos), Val: it.m.slots[it.pos].value}
	it.pos += 1
	return entry
}

type vecMapReverseIterator[K comparable, V any] struct {
	m   *VecMap[K, V]
	pos int
}

func (it *vecMapReverseIterator[K, V]) HasNext() bool {
	for it.pos >= 0 && !it.m.slots[it.pos].occupied {
		it.pos--
	}
	return it.pos >= 0
}

func (it *vecMapReverseIterator[K, V]) Next() common.MapEntry[K, V] {
	it.HasNext() // settle on the next occupied slot
	entry := common.MapEntry[K, V]{Key: it.m.mapper.FromIndex(it.pos), Val: it.m.slots[it.pos].value}
	it.pos -= 1
	return entry
}
