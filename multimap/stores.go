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
	"unsafe"

	"github.com/Fantom-foundation/Collections/common"
)

// mapKeyStore is a KeyStore backed by the runtime map, hashing keys with
// the built-in hash function. The iteration order is arbitrary.
type mapKeyStore[K comparable, V comparable] struct {
	data map[K]ValueCollection[V]
}

func newMapKeyStore[K comparable, V comparable](capacity int) *mapKeyStore[K, V] {
	return &mapKeyStore[K, V]{data: make(map[K]ValueCollection[V], capacity)}
}

func (s *mapKeyStore[K, V]) Get(key K) (ValueCollection[V], bool) {
	values, exists := s.data[key]
	return values, exists
}

func (s *mapKeyStore[K, V]) Put(key K, values ValueCollection[V]) {
	s.data[key] = values
}

func (s *mapKeyStore[K, V]) Remove(key K) (ValueCollection[V], bool) {
	values, exists := s.data[key]
	if exists {
		delete(s.data, key)
	}
	return values, exists
}

func (s *mapKeyStore[K, V]) Size() int {
	return len(s.data)
}

func (s *mapKeyStore[K, V]) ForEach(callback func(K, ValueCollection[V])) {
	for key, values := range s.data {
		callback(key, values)
	}
}

// Iterator provides an iterator over a snapshot of the keys taken at the
// time of the call. The associated collections are resolved lazily.
func (s *mapKeyStore[K, V]) Iterator() common.Iterator[common.MapEntry[K, ValueCollection[V]]] {
	entries := make([]common.MapEntry[K, ValueCollection[V]], 0, len(s.data))
	for key, values := range s.data {
		entries = append(entries, common.MapEntry[K, ValueCollection[V]]{Key: key, Val: values})
	}
	return &sliceIterator[common.MapEntry[K, ValueCollection[V]]]{items: entries}
}

func (s *mapKeyStore[K, V]) Clear() {
	for key := range s.data {
		delete(s.data, key)
	}
}

func (s *mapKeyStore[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	var k K
	var c ValueCollection[V]
	entrySize := unsafe.Sizeof(k) + unsafe.Sizeof(c)
	return common.NewMemoryFootprint(unsafe.Sizeof(*s) + uintptr(len(s.data))*entrySize)
}

// hashKeyStore is a KeyStore hashing keys with a pluggable hash function.
type hashKeyStore[K comparable, V comparable] struct {
	inner *common.HashMap[K, ValueCollection[V]]
}

func newHashKeyStore[K comparable, V comparable](hasher common.Hasher[K]) *hashKeyStore[K, V] {
	return &hashKeyStore[K, V]{inner: common.NewHashMap[K, ValueCollection[V]](hasher)}
}

func (s *hashKeyStore[K, V]) Get(key K) (ValueCollection[V], bool) {
	return s.inner.Get(key)
}

func (s *hashKeyStore[K, V]) Put(key K, values ValueCollection[V]) {
	s.inner.Put(key, values)
}

func (s *hashKeyStore[K, V]) Remove(key K) (ValueCollection[V], bool) {
	values, exists := s.inner.Get(key)
	if exists {
		s.inner.Remove(key)
	}
	return values, exists
}

func (s *hashKeyStore[K, V]) Size() int {
	return s.inner.Size()
}

func (s *hashKeyStore[K, V]) ForEach(callback func(K, ValueCollection[V])) {
	s.inner.ForEach(callback)
}

func (s *hashKeyStore[K, V]) Iterator() common.Iterator[common.MapEntry[K, ValueCollection[V]]] {
	return s.inner.Iterator()
}

func (s *hashKeyStore[K, V]) Clear() {
	s.inner.Clear()
}

func (s *hashKeyStore[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("inner", s.inner.GetMemoryFootprint())
	return mf
}

// orderedKeyStore is a KeyStore preserving the insertion order of its keys
// and providing positional access on top of the KeyStore interface.
type orderedKeyStore[K comparable, V comparable] struct {
	inner *common.OrderedMap[K, ValueCollection[V]]
}

func newOrderedKeyStore[K comparable, V comparable](capacity int) *orderedKeyStore[K, V] {
	return &orderedKeyStore[K, V]{inner: common.NewOrderedMapWithCapacity[K, ValueCollection[V]](capacity)}
}

func (s *orderedKeyStore[K, V]) Get(key K) (ValueCollection[V], bool) {
	return s.inner.Get(key)
}

func (s *orderedKeyStore[K, V]) Put(key K, values ValueCollection[V]) {
	s.inner.Put(key, values)
}

// Remove deletes the key preserving the order of the remaining keys.
func (s *orderedKeyStore[K, V]) Remove(key K) (ValueCollection[V], bool) {
	return s.inner.ShiftRemove(key)
}

// SwapRemove deletes the key in O(1) by moving the last key into the
// vacated position.
func (s *orderedKeyStore[K, V]) SwapRemove(key K) (ValueCollection[V], bool) {
	return s.inner.SwapRemove(key)
}

// IndexOf returns the position of the key in the insertion order.
func (s *orderedKeyStore[K, V]) IndexOf(key K) (int, bool) {
	return s.inner.IndexOf(key)
}

// GetAt returns the key and its collection at the given position.
func (s *orderedKeyStore[K, V]) GetAt(pos int) (K, ValueCollection[V], bool) {
	return s.inner.GetAt(pos)
}

func (s *orderedKeyStore[K, V]) Size() int {
	return s.inner.Size()
}

func (s *orderedKeyStore[K, V]) ForEach(callback func(K, ValueCollection[V])) {
	s.inner.ForEach(callback)
}

func (s *orderedKeyStore[K, V]) Iterator() common.Iterator[common.MapEntry[K, ValueCollection[V]]] {
	return s.inner.Iterator()
}

func (s *orderedKeyStore[K, V]) Clear() {
	s.inner.Clear()
}

func (s *orderedKeyStore[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("inner", s.inner.GetMemoryFootprint())
	return mf
}
