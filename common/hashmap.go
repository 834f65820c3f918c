// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import "unsafe"

const (
	// initial number of buckets, must be a power of two
	hashMapInitBuckets = 1 << 4
	// grow when the number of entries exceeds 3/4 of the bucket count
	hashMapMaxLoadNum   = 3
	hashMapMaxLoadDenom = 4
)

// HashMap is a hash based map type mapping keys to values using a
// customizable hash function. Entries are kept in a compact array with
// collisions resolved by chaining through bucket lists. The bucket array
// doubles when the load factor is exceeded.
//
// It serves as the backing store for hash based collections whenever the
// hash algorithm must be pluggable. Collections hashing with the language
// runtime use a plain map instead.
type HashMap[K comparable, V any] struct {
	buckets []int // heads of per-bucket entry chains, -1 when empty
	data    []hashMapEntry[K, V]
	hasher  Hasher[K]
}

type hashMapEntry[K comparable, V any] struct {
	key   K
	value V
	next  int // position of the next entry in the same bucket, -1 terminates
}

// NewHashMap creates a HashMap based on the given hasher.
func NewHashMap[K comparable, V any](hasher Hasher[K]) *HashMap[K, V] {
	res := &HashMap[K, V]{
		buckets: make([]int, hashMapInitBuckets),
		hasher:  hasher,
	}
	for i := range res.buckets {
		res.buckets[i] = -1
	}
	return res
}

// Get retrieves a value stored in the map or the types default value, if not present.
// The second return value is set to true if the value was present, false otherwise.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	cur := m.buckets[m.bucketOf(key)]
	for cur >= 0 {
		if m.data[cur].key == key {
			return m.data[cur].value, true
		}
		cur = m.data[cur].next
	}
	var res V
	return res, false
}

// Put updates the value associated to the given key in this map.
func (m *HashMap[K, V]) Put(key K, value V) {
	bucket := m.bucketOf(key)
	cur := m.buckets[bucket]
	for cur >= 0 {
		if m.data[cur].key == key {
			m.data[cur].value = value
			return
		}
		cur = m.data[cur].next
	}
	if (len(m.data)+1)*hashMapMaxLoadDenom > len(m.buckets)*hashMapMaxLoadNum {
		m.grow()
		bucket = m.bucketOf(key)
	}
	pos := len(m.data)
	m.data = append(m.data, hashMapEntry[K, V]{key: key, value: value, next: m.buckets[bucket]})
	m.buckets[bucket] = pos
}

// Remove removes the entry with the given key from this map and returns
// whether the key has been present before the delete operation.
func (m *HashMap[K, V]) Remove(key K) bool {
	bucket := m.bucketOf(key)
	ptr := &m.buckets[bucket]
	for *ptr >= 0 {
		pos := *ptr
		if m.data[pos].key == key {
			*ptr = m.data[pos].next
			m.fillHole(pos)
			m.data = m.data[:len(m.data)-1]
			return true
		}
		ptr = &m.data[pos].next
	}
	return false
}

// fillHole moves the last entry of the data array into the given position
// to keep the array compact. The chain link pointing to the moved entry is
// redirected to its new position.
func (m *HashMap[K, V]) fillHole(pos int) {
	last := len(m.data) - 1
	if pos == last {
		return
	}
	ptr := &m.buckets[m.bucketOf(m.data[last].key)]
	for *ptr != last {
		ptr = &m.data[*ptr].next
	}
	*ptr = pos
	m.data[pos] = m.data[last]
}

// Size returns the number of elements in this map.
func (m *HashMap[K, V]) Size() int {
	return len(m.data)
}

// Clear removes all entries of this map while keeping the allocated capacity.
func (m *HashMap[K, V]) Clear() {
	m.data = m.data[0:0]
	for i := range m.buckets {
		m.buckets[i] = -1
	}
}

// ForEach applies the given operation to each key/value pair in the map.
func (m *HashMap[K, V]) ForEach(op func(K, V)) {
	for i := range m.data {
		op(m.data[i].key, m.data[i].value)
	}
}

// Iterator provides an iterator over the entries of this map. The order of
// the entries is arbitrary and may change with every modification.
func (m *HashMap[K, V]) Iterator() Iterator[MapEntry[K, V]] {
	return &hashMapIterator[K, V]{data: m.data}
}

type hashMapIterator[K comparable, V any] struct {
	data []hashMapEntry[K, V]
	pos  int
}

func (it *hashMapIterator[K, V]) HasNext() bool {
	return it.pos < len(it.data)
}

func (it *hashMapIterator[K, V]) Next() MapEntry[K, V] {
	entry := it.data[it.pos]
	it.pos += 1
	return MapEntry[K, V]{entry.key, entry.value}
}

func (m *HashMap[K, V]) bucketOf(key K) int {
	return int(m.hasher.Hash(key) & uint64(len(m.buckets)-1))
}

// grow doubles the bucket array and relinks all entries.
func (m *HashMap[K, V]) grow() {
	m.buckets = make([]int, len(m.buckets)*2)
	for i := range m.buckets {
		m.buckets[i] = -1
	}
	for i := range m.data {
		bucket := m.bucketOf(m.data[i].key)
		m.data[i].next = m.buckets[bucket]
		m.buckets[bucket] = i
	}
}

func (m *HashMap[K, V]) GetMemoryFootprint() *MemoryFootprint {
	selfSize := unsafe.Sizeof(*m)
	entrySize := unsafe.Sizeof(hashMapEntry[K, V]{})
	size := selfSize + uintptr(len(m.buckets))*unsafe.Sizeof(int(0)) + uintptr(cap(m.data))*entrySize
	return NewMemoryFootprint(size)
}
