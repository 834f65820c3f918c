package multimap

// indexedMultimap extends the multimap core with positional access for
// variants keeping their keys in insertion order. The key store is always
// an orderedKeyStore and the value collections always maintain a stable
// value order.
type indexedMultimap[K comparable, V comparable] struct {
	multiMap[K, V]
	ordered *orderedKeyStore[K, V]
}

func newIndexedMultimap[K comparable, V comparable](capacity int, fresh func() ValueCollection[V]) indexedMultimap[K, V] {
	store := newOrderedKeyStore[K, V](capacity)
	return indexedMultimap[K, V]{
		multiMap: multiMap[K, V]{keys: store, fresh: fresh},
		ordered:  store,
	}
}

// InsertFull adds the key-value pair and returns the position of the key
// in the key order and the position of the value within the values of the
// key. For a pair whose value was already present the positions of the
// existing occurrences are reported and added is false.
func (m *indexedMultimap[K, V]) InsertFull(key K, value V) (keyPos int, valuePos int, added bool) {
	values, exists := m.ordered.Get(key)
	if !exists {
		values = m.fresh()
		m.ordered.Put(key, values)
	}
	keyPos, _ = m.ordered.IndexOf(key)
	valuePos, added = values.(OrderedValueCollection[V]).AddFull(value)
	if added {
		m.size++
	}
	return keyPos, valuePos, added
}

// GetFull returns the position of the key in the key order together with
// a copy of its values.
func (m *indexedMultimap[K, V]) GetFull(key K) (pos int, values []V, exists bool) {
	pos, exists = m.ordered.IndexOf(key)
	if !exists {
		return 0, nil, false
	}
	collection, _ := m.ordered.Get(key)
	return pos, collection.Values(), true
}

// GetKeyIndex returns the position of the key in the key order.
func (m *indexedMultimap[K, V]) GetKeyIndex(key K) (pos int, exists bool) {
	return m.ordered.IndexOf(key)
}

// GetAt returns the key at the given position of the key order together
// with a copy of its values.
func (m *indexedMultimap[K, V]) GetAt(pos int) (key K, values []V, exists bool) {
	key, collection, exists := m.ordered.GetAt(pos)
	if !exists {
		return key, nil, false
	}
	return key, collection.Values(), true
}

// ShiftRemoveKey deletes the key with all its values, preserving the order
// of the remaining keys at O(n) cost. It is the removal mode of RemoveKey.
func (m *indexedMultimap[K, V]) ShiftRemoveKey(key K) ([]V, bool) {
	return m.RemoveKey(key)
}

// SwapRemoveKey deletes the key with all its values in O(1) by moving the
// last key into the vacated position of the key order.
func (m *indexedMultimap[K, V]) SwapRemoveKey(key K) ([]V, bool) {
	values, exists := m.ordered.SwapRemove(key)
	if !exists {
		return nil, false
	}
	m.size -= values.Size()
	return values.Values(), true
}

// SwapRemove deletes a single occurrence of the key-value pair like Remove,
// but a key emptied by the removal is swap-removed from the key order.
func (m *indexedMultimap[K, V]) SwapRemove(key K, value V) bool {
	values, exists := m.ordered.Get(key)
	if !exists || !values.Remove(value) {
		return false
	}
	m.size--
	if values.Size() == 0 {
		m.ordered.SwapRemove(key)
	}
	return true
}
