// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package smallmap provides insertion-ordered maps and sets optimized for
// small cardinalities. Entries start in an inline buffer searched linearly
// and spill into a hash-indexed map once the inline capacity is exceeded.
package smallmap

import (
	"unsafe"

	"github.com/Fantom-foundation/Collections/common"
)

// SmallMap is an insertion-ordered map keeping up to a configured number of
// entries in an inline buffer with linear lookups. Growing beyond the
// inline capacity promotes all entries into a hash-indexed representation
// in a single step, preserving their order. The promotion is one-way, the
// map never returns to the inline representation.
type SmallMap[K comparable, V any] struct {
	capacity int
	inline   []common.MapEntry[K, V]
	spilled  *common.OrderedMap[K, V] // nil while inline
}

// NewSmallMap creates an empty SmallMap holding up to inlineCapacity
// entries without a heap-indexed representation.
func NewSmallMap[K comparable, V any](inlineCapacity int) *SmallMap[K, V] {
	if inlineCapacity < 0 {
		inlineCapacity = 0
	}
	return &SmallMap[K, V]{
		capacity: inlineCapacity,
		inline:   make([]common.MapEntry[K, V], 0, inlineCapacity),
	}
}

// NewSmallMapFromPairs creates a SmallMap seeded with the given key-value
// pairs in order. A duplicated key keeps its first position and the last
// associated value.
func NewSmallMapFromPairs[K comparable, V any](inlineCapacity int, pairs []common.MapEntry[K, V]) *SmallMap[K, V] {
	res := NewSmallMap[K, V](inlineCapacity)
	for _, pair := range pairs {
		res.Put(pair.Key, pair.Val)
	}
	return res
}

// Put associates a key to a value and returns the value it replaces, if
// any. A new key is appended at the end of the insertion order.
func (m *SmallMap[K, V]) Put(key K, val V) (old V, existed bool) {
	_, old, existed = m.PutFull(key, val)
	return old, existed
}

// PutFull associates a key to a value and returns the position of the key
// together with the value it replaces, if any.
func (m *SmallMap[K, V]) PutFull(key K, val V) (pos int, old V, existed bool) {
	if m.spilled != nil {
		return m.spilled.PutFull(key, val)
	}
	if pos := m.indexOfInline(key); pos >= 0 {
		old = m.inline[pos].Val
		m.inline[pos].Val = val
		return pos, old, true
	}
	if len(m.inline) >= m.capacity {
		m.spill()
		return m.spilled.PutFull(key, val)
	}
	pos = len(m.inline)
	m.inline = append(m.inline, common.MapEntry[K, V]{Key: key, Val: val})
	return pos, old, false
}

// spill promotes all inline entries into the hash-indexed representation,
// preserving their order.
func (m *SmallMap[K, V]) spill() {
	spilled := common.NewOrderedMapWithCapacity[K, V](len(m.inline) + 1)
	for i := range m.inline {
		spilled.Put(m.inline[i].Key, m.inline[i].Val)
	}
	m.spilled = spilled
	m.inline = nil
}

// Get returns a value from the map or false.
func (m *SmallMap[K, V]) Get(key K) (val V, exists bool) {
	if m.spilled != nil {
		return m.spilled.Get(key)
	}
	if pos := m.indexOfInline(key); pos >= 0 {
		return m.inline[pos].Val, true
	}
	return
}

// GetAt returns the key-value pair at the given position of the insertion order.
func (m *SmallMap[K, V]) GetAt(pos int) (key K, val V, exists bool) {
	if m.spilled != nil {
		return m.spilled.GetAt(pos)
	}
	if pos < 0 || pos >= len(m.inline) {
		return
	}
	return m.inline[pos].Key, m.inline[pos].Val, true
}

// IndexOf returns the position of the key in the insertion order.
func (m *SmallMap[K, V]) IndexOf(key K) (pos int, exists bool) {
	if m.spilled != nil {
		return m.spilled.IndexOf(key)
	}
	if pos := m.indexOfInline(key); pos >= 0 {
		return pos, true
	}
	return 0, false
}

// ContainsKey returns true if the key is present.
func (m *SmallMap[K, V]) ContainsKey(key K) bool {
	_, exists := m.Get(key)
	return exists
}

// Remove deletes the key from the map in O(1) by moving the last key into
// the vacated position. It is a synonym of SwapRemove.
func (m *SmallMap[K, V]) Remove(key K) (val V, exists bool) {
	return m.SwapRemove(key)
}

// SwapRemove deletes the key from the map by moving the last key into the
// vacated position. The insertion order of the remaining keys is not
// preserved, only the moved key changes its position.
func (m *SmallMap[K, V]) SwapRemove(key K) (val V, exists bool) {
	if m.spilled != nil {
		return m.spilled.SwapRemove(key)
	}
	pos := m.indexOfInline(key)
	if pos < 0 {
		return
	}
	val = m.inline[pos].Val
	last := len(m.inline) - 1
	m.inline[pos] = m.inline[last]
	m.inline = m.inline[:last]
	return val, true
}

// ShiftRemove deletes the key from the map preserving the order of the
// remaining keys at O(n) cost.
func (m *SmallMap[K, V]) ShiftRemove(key K) (val V, exists bool) {
	if m.spilled != nil {
		return m.spilled.ShiftRemove(key)
	}
	pos := m.indexOfInline(key)
	if pos < 0 {
		return
	}
	val = m.inline[pos].Val
	copy(m.inline[pos:], m.inline[pos+1:])
	m.inline = m.inline[:len(m.inline)-1]
	return val, true
}

// Size returns the number of entries in the map.
func (m *SmallMap[K, V]) Size() int {
	if m.spilled != nil {
		return m.spilled.Size()
	}
	return len(m.inline)
}

// IsEmpty returns true if the map holds no entry.
func (m *SmallMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// IsInline returns true while the entries live in the inline buffer.
func (m *SmallMap[K, V]) IsInline() bool {
	return m.spilled == nil
}

// InlineCapacity returns the number of entries the inline buffer can hold.
func (m *SmallMap[K, V]) InlineCapacity() int {
	return m.capacity
}

// Clear removes all entries keeping the current representation.
func (m *SmallMap[K, V]) Clear() {
	if m.spilled != nil {
		m.spilled.Clear()
		return
	}
	m.inline = m.inline[0:0]
}

// ForEach calls the callback for each key-value pair in the insertion order.
func (m *SmallMap[K, V]) ForEach(callback func(K, V)) {
	if m.spilled != nil {
		m.spilled.ForEach(callback)
		return
	}
	for i := range m.inline {
		callback(m.inline[i].Key, m.inline[i].Val)
	}
}

// Keys returns all keys of this map in the insertion order.
func (m *SmallMap[K, V]) Keys() []K {
	if m.spilled != nil {
		return m.spilled.Keys()
	}
	keys := make([]K, len(m.inline))
	for i := range m.inline {
		keys[i] = m.inline[i].Key
	}
	return keys
}

// Values returns all values of this map in the insertion order.
func (m *SmallMap[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	m.ForEach(func(_ K, val V) {
		values = append(values, val)
	})
	return values
}

// Iterator provides an iterator over the entries in the insertion order.
func (m *SmallMap[K, V]) Iterator() common.Iterator[common.MapEntry[K, V]] {
	if m.spilled != nil {
		return m.spilled.Iterator()
	}
	return &smallMapIterator[K, V]{entries: m.inline}
}

// ReverseIterator provides an iterator over the entries in the reversed
// insertion order.
func (m *SmallMap[K, V]) ReverseIterator() common.Iterator[common.MapEntry[K, V]] {
	if m.spilled != nil {
		return m.spilled.ReverseIterator()
	}
	return &smallMapReverseIterator[K, V]{entries: m.inline, pos: len(m.inline) - 1}
}

func (m *SmallMap[K, V]) indexOfInline(key K) int {
	for i := range m.inline {
		if m.inline[i].Key == key {
			return i
		}
	}
	return -1
}

// valueAt returns the value at the given position of the insertion order.
func (m *SmallMap[K, V]) valueAt(pos int) V {
	if m.spilled != nil {
		return m.spilled.GetAll()[pos].Val
	}
	return m.inline[pos].Val
}

// modifyAt applies the operation to the value at the given position in place.
func (m *SmallMap[K, V]) modifyAt(pos int, op func(*V)) {
	if m.spilled != nil {
		op(&m.spilled.GetAll()[pos].Val)
		return
	}
	op(&m.inline[pos].Val)
}

func (m *SmallMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	entrySize := unsafe.Sizeof(common.MapEntry[K, V]{})
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m) + uintptr(cap(m.inline))*entrySize)
	if m.spilled != nil {
		mf.AddChild("spilled", m.spilled.GetMemoryFootprint())
	}
	return mf
}

type smallMapIterator[K comparable, V any] struct {
	entries []common.MapEntry[K, V]
	pos     int
}

func (it *smallMapIterator[K, V]) HasNext() bool {
	return it.pos < len(it.entries)
}

func (it *smallMapIterator[K, V]) Next() common.MapEntry[K, V] {
	entry := it.entries[it.pos]
	it.pos += 1
	return entry
}

type smallMapReverseIterator[K comparable, V any] struct {
	entries []common.MapEntry[K, V]
	pos     int
}

func (it *smallMapReverseIterator[K, V]) HasNext() bool {
	return it.pos >= 0
}

func (it *smallMapReverseIterator[K, V]) Next() common.MapEntry[K, V] {
	entry := it.entries[it.pos]
	it.pos -= 1
	return entry
}
