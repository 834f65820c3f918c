package vecmap

// Entry is a handle to the slot of a single key, translating the key only
// once. The handle stays valid across modifications of the map.
type Entry[K comparable, V any] struct {
	m     *VecMap[K, V]
	key   K
	index int
}

// Entry returns a handle to the slot of the given key, occupied or vacant.
func (m *VecMap[K, V]) Entry(key K) (*Entry[K, V], error) {
	index, err := m.mapper.ToIndex(key)
	if err != nil {
		return nil, err
	}
	return &Entry[K, V]{m: m, key: key, index: index}, nil
}

// Key returns the key the handle was created for.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// IsOccupied returns true if the key is present in the map.
func (e *Entry[K, V]) IsOccupied() bool {
	return e.index < len(e.m.slots) && e.m.slots[e.index].occupied
}

// Get returns the value of an occupied slot.
func (e *Entry[K, V]) Get() (val V, exists bool) {
	if !e.IsOccupied() {
		return
	}
	return e.m.slots[e.index].value, true
}

// OrInsert fills a vacant slot with the given value and returns the value
// associated to the key afterwards.
func (e *Entry[K, V]) OrInsert(val V) V {
	return e.OrInsertWith(func() V { return val })
}

// OrInsertWith fills a vacant slot with a provided value and returns the
// value associated to the key afterwards. The provider is only called for
// a vacant slot.
func (e *Entry[K, V]) OrInsertWith(provide func() V) V {
	if !e.IsOccupied() {
		e.m.ensure(e.index + 1)
		e.m.slots[e.index] = vecMapSlot[V]{value: provide(), occupied: true}
		e.m.size++
	}
	return e.m.slots[e.index].value
}

// OrDefault fills a vacant slot with the zero value and returns the value
// associated to the key afterwards.
func (e *Entry[K, V]) OrDefault() V {
	return e.OrInsertWith(func() V {
		var zero V
		return zero
	})
}

// AndModify applies the operation to the value of an occupied slot in
// place. A vacant slot is left untouched. It returns the handle to allow
// chaining with the insertion methods.
func (e *Entry[K, V]) AndModify(op func(*V)) *Entry[K, V] {
	if e.IsOccupied() {
		op(&e.m.slots[e.index].value)
	}
	return e
}

// Remove deletes the key of an occupied slot and returns its value.
func (e *Entry[K, V]) Remove() (val V, existed bool) {
	if !e.IsOccupied() {
		return
	}
	val = e.m.slots[e.index].value
	e.m.slots[e.index] = vecMapSlot[V]{}
	e.m.size--
	return val, true
}
