package common

import "unsafe"

// OrderedMap implements a memory map for key-value pairs that preserves
// the order in which keys were first inserted. Updating a value does not
// change the position of its key. It combines an entry list keeping the
// insertion order with a hash index for constant time lookups.
//
// Keys can be removed in two ways: ShiftRemove preserves the order of the
// remaining keys at O(n) cost, SwapRemove fills the gap with the last key
// at O(1) cost, sacrificing the order.
type OrderedMap[K comparable, V any] struct {
	entries []MapEntry[K, V]
	index   map[K]int
}

// NewOrderedMap creates a new instance with a default capacity.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return NewOrderedMapWithCapacity[K, V](0)
}

// NewOrderedMapWithCapacity creates a new instance pre-sized for the given
// number of keys. The capacity is a non-binding hint.
func NewOrderedMapWithCapacity[K comparable, V any](capacity int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		entries: make([]MapEntry[K, V], 0, capacity),
		index:   make(map[K]int, capacity),
	}
}

// Put associates a key to a value. A new key is appended at the end of
// the insertion order, an existing key keeps its position.
func (m *OrderedMap[K, V]) Put(key K, val V) {
	m.PutFull(key, val)
}

// PutFull associates a key to a value and returns the position of the key
// together with the value it replaces, if any.
func (m *OrderedMap[K, V]) PutFull(key K, val V) (pos int, old V, existed bool) {
	if pos, exists := m.index[key]; exists {
		old = m.entries[pos].Val
		m.entries[pos].Val = val
		return pos, old, true
	}
	pos = len(m.entries)
	m.entries = append(m.entries, MapEntry[K, V]{key, val})
	m.index[key] = pos
	return pos, old, false
}

// Get returns a value from the map or false.
func (m *OrderedMap[K, V]) Get(key K) (val V, exists bool) {
	if pos, exists := m.index[key]; exists {
		return m.entries[pos].Val, true
	}
	return
}

// GetAt returns the key-value pair at the given position of the insertion order.
func (m *OrderedMap[K, V]) GetAt(pos int) (key K, val V, exists bool) {
	if pos < 0 || pos >= len(m.entries) {
		return
	}
	return m.entries[pos].Key, m.entries[pos].Val, true
}

// IndexOf returns the position of the key in the insertion order.
func (m *OrderedMap[K, V]) IndexOf(key K) (pos int, exists bool) {
	pos, exists = m.index[key]
	return
}

// Remove deletes the key from the map and returns whether an element was
// removed. The order of the remaining keys is preserved.
func (m *OrderedMap[K, V]) Remove(key K) (exists bool) {
	_, exists = m.ShiftRemove(key)
	return
}

// ShiftRemove deletes the key from the map preserving the order of the
// remaining keys. All keys inserted after the removed one shift one
// position down, making the operation O(n).
func (m *OrderedMap[K, V]) ShiftRemove(key K) (val V, exists bool) {
	pos, exists := m.index[key]
	if !exists {
		return
	}
	val = m.entries[pos].Val
	delete(m.index, key)
	copy(m.entries[pos:], m.entries[pos+1:])
	m.entries = m.entries[:len(m.entries)-1]
	for i := pos; i < len(m.entries); i++ {
		m.index[m.entries[i].Key] = i
	}
	return val, true
}

// SwapRemove deletes the key from the map in O(1) by moving the last key
// into the vacated position. The insertion order of the remaining keys is
// not preserved, only the moved key changes its position.
func (m *OrderedMap[K, V]) SwapRemove(key K) (val V, exists bool) {
	pos, exists := m.index[key]
	if !exists {
		return
	}
	val = m.entries[pos].Val
	delete(m.index, key)
	last := len(m.entries) - 1
	if pos != last {
		m.entries[pos] = m.entries[last]
		m.index[m.entries[pos].Key] = pos
	}
	m.entries = m.entries[:last]
	return val, true
}

// ForEach all entries - calls the callback for each key-value pair
// in the insertion order.
func (m *OrderedMap[K, V]) ForEach(callback func(K, V)) {
	for i := 0; i < len(m.entries); i++ {
		callback(m.entries[i].Key, m.entries[i].Val)
	}
}

// GetAll returns all entries of this map as a slice in the insertion order.
// The slice is owned by the map and must not be modified.
func (m *OrderedMap[K, V]) GetAll() []MapEntry[K, V] {
	return m.entries
}

// Keys returns all keys of this map in the insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i := range m.entries {
		keys[i] = m.entries[i].Key
	}
	return keys
}

func (m *OrderedMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *OrderedMap[K, V]) Clear() {
	m.entries = m.entries[0:0]
	for key := range m.index {
		delete(m.index, key)
	}
}

// Iterator provides an iterator over the entries in the insertion order.
func (m *OrderedMap[K, V]) Iterator() Iterator[MapEntry[K, V]] {
	return &orderedMapIterator[K, V]{entries: m.entries}
}

// ReverseIterator provides an iterator over the entries in the reversed
// insertion order.
func (m *OrderedMap[K, V]) ReverseIterator() Iterator[MapEntry[K, V]] {
	return &orderedMapReverseIterator[K, V]{entries: m.entries, pos: len(m.entries) - 1}
}

type orderedMapIterator[K comparable, V any] struct {
	entries []MapEntry[K, V]
	pos     int
}

func (it *orderedMapIterator[K, V]) HasNext() bool {
	return it.pos < len(it.entries)
}

func (it *orderedMapIterator[K, V]) Next() MapEntry[K, V] {
	entry := it.entries[it.pos]
	it.pos += 1
	return entry
}

type orderedMapReverseIterator[K comparable, V any] struct {
	entries []MapEntry[K, V]
	pos     int
}

func (it *orderedMapReverseIterator[K, V]) HasNext() bool {
	return it.pos >= 0
}

func (it *orderedMapReverseIterator[K, V]) Next() MapEntry[K, V] {
	entry := it.entries[it.pos]
	it.pos -= 1
	return entry
}

func (m *OrderedMap[K, V]) GetMemoryFootprint() *MemoryFootprint {
	selfSize := unsafe.Sizeof(*m)
	entrySize := unsafe.Sizeof(MapEntry[K, V]{})
	var k K
	indexEntrySize := unsafe.Sizeof(k) + unsafe.Sizeof(int(0))
	size := selfSize + uintptr(cap(m.entries))*entrySize + uintptr(len(m.index))*indexEntrySize
	return NewMemoryFootprint(size)
}
