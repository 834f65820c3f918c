// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package multimap provides in-memory maps associating each key with a
// collection of values. Four variants cover the combinations of hashed or
// insertion-ordered keys with deduplicated or list-like values:
// HashSetMultimap, HashVecMultimap, IndexSetMultimap and IndexVecMultimap.
//
// All variants maintain the invariant that a contained key has at least
// one value; removing the last value of a key removes the key.
package multimap

import (
	"unsafe"

	"github.com/Fantom-foundation/Collections/common"
)

// Container is the read surface shared by all multimap variants, allowing
// content comparisons across variants of matching key and value types.
type Container[K comparable, V comparable] interface {

	// Size returns the total number of key-value pairs.
	Size() int

	// Contains returns true if the key-value pair is present.
	Contains(key K, value V) bool
}

// multiMap is the shared core of all multimap variants. The variants differ
// only in the KeyStore and ValueCollection implementations injected here.
type multiMap[K comparable, V comparable] struct {
	keys  KeyStore[K, V]
	fresh func() ValueCollection[V]
	size  int // total number of key-value pairs
}

// Insert adds the key-value pair and returns whether the multimap grew.
// The pair is not added if the value collection of the key deduplicates
// values and the value is already associated to the key.
func (m *multiMap[K, V]) Insert(key K, value V) bool {
	values, exists := m.keys.Get(key)
	if !exists {
		values = m.fresh()
		m.keys.Put(key, values)
	}
	if !values.Add(value) {
		return false
	}
	m.size++
	return true
}

// Remove deletes a single occurrence of the key-value pair, returning
// whether the multimap shrunk. Removing the last value of a key removes
// the key.
func (m *multiMap[K, V]) Remove(key K, value V) bool {
	values, exists := m.keys.Get(key)
	if !exists || !values.Remove(value) {
		return false
	}
	m.size--
	if values.Size() == 0 {
		m.keys.Remove(key)
	}
	return true
}

// RemoveKey deletes the key with all its values. The removed values are
// returned in the collection order.
func (m *multiMap[K, V]) RemoveKey(key K) ([]V, bool) {
	values, exists := m.keys.Remove(key)
	if !exists {
		return nil, false
	}
	m.size -= values.Size()
	return values.Values(), true
}

// GetAll returns a copy of all values associated to the key in the
// collection order, or nil if the key is not present.
func (m *multiMap[K, V]) GetAll(key K) []V {
	values, exists := m.keys.Get(key)
	if !exists {
		return nil
	}
	return values.Values()
}

// ContainsKey returns true if the key has at least one value.
func (m *multiMap[K, V]) ContainsKey(key K) bool {
	_, exists := m.keys.Get(key)
	return exists
}

// Contains returns true if the key-value pair is present.
func (m *multiMap[K, V]) Contains(key K, value V) bool {
	values, exists := m.keys.Get(key)
	return exists && values.Contains(value)
}

// Size returns the total number of key-value pairs.
func (m *multiMap[K, V]) Size() int {
	return m.size
}

// KeyCount returns the number of distinct keys.
func (m *multiMap[K, V]) KeyCount() int {
	return m.keys.Size()
}

// IsEmpty returns true if the multimap holds no key-value pair.
func (m *multiMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Clear removes all key-value pairs.
func (m *multiMap[K, V]) Clear() {
	m.keys.Clear()
	m.size = 0
}

// Retain keeps only the key-value pairs fulfilling the predicate. Keys
// losing all their values are removed. It returns the number of removed
// pairs.
func (m *multiMap[K, V]) Retain(predicate func(key K, value V) bool) int {
	var emptied []K
	removed := 0
	m.keys.ForEach(func(key K, values ValueCollection[V]) {
		removed += values.Retain(func(value V) bool {
			return predicate(key, value)
		})
		if values.Size() == 0 {
			emptied = append(emptied, key)
		}
	})
	for _, key := range emptied {
		m.keys.Remove(key)
	}
	m.size -= removed
	return removed
}

// ForEach calls the callback for each key-value pair, iterating keys in
// the store order and the values of a key in the collection order.
func (m *multiMap[K, V]) ForEach(callback func(key K, value V)) {
	m.keys.ForEach(func(key K, values ValueCollection[V]) {
		values.ForEach(func(value V) {
			callback(key, value)
		})
	})
}

// Iterator provides an iterator over all key-value pairs in the iteration
// order of ForEach. Value collections are flattened lazily.
func (m *multiMap[K, V]) Iterator() common.Iterator[common.MapEntry[K, V]] {
	return &flattenIterator[K, V]{outer: m.keys.Iterator()}
}

// Keys provides an iterator over the distinct keys in the store order.
func (m *multiMap[K, V]) Keys() common.Iterator[K] {
	return &keysIterator[K, V]{outer: m.keys.Iterator()}
}

// Values provides an iterator over all values in the iteration order of
// ForEach.
func (m *multiMap[K, V]) Values() common.Iterator[V] {
	return &valuesIterator[K, V]{inner: flattenIterator[K, V]{outer: m.keys.Iterator()}}
}

// ToMap exports the content as a plain map from keys to value slices. The
// slices are copies in the collection order.
func (m *multiMap[K, V]) ToMap() map[K][]V {
	res := make(map[K][]V, m.keys.Size())
	m.keys.ForEach(func(key K, values ValueCollection[V]) {
		res[key] = values.Values()
	})
	return res
}

// Equal compares the content of this multimap with another container,
// ignoring key and value orders.
func (m *multiMap[K, V]) Equal(other Container[K, V]) bool {
	if m.Size() != other.Size() {
		return false
	}
	equal := true
	m.ForEach(func(key K, value V) {
		if !other.Contains(key, value) {
			equal = false
		}
	})
	return equal
}

func (m *multiMap[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	mf.AddChild("keys", m.keys.GetMemoryFootprint())
	var valuesSize uintptr
	m.keys.ForEach(func(_ K, values ValueCollection[V]) {
		valuesSize += values.GetMemoryFootprint().Total()
	})
	mf.AddChild("values", common.NewMemoryFootprint(valuesSize))
	return mf
}

// fill seeds the multimap from the given key-value pairs.
func (m *multiMap[K, V]) fill(pairs []common.MapEntry[K, V]) {
	for _, pair := range pairs {
		m.Insert(pair.Key, pair.Val)
	}
}

// fillFromMap seeds the multimap from a plain map of value slices. The key
// order of the runtime map iteration applies.
func (m *multiMap[K, V]) fillFromMap(data map[K][]V) {
	for key, values := range data {
		for _, value := range values {
			m.Insert(key, value)
		}
	}
}
