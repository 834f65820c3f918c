package smallmap

// Entry is a handle to the slot of a single key, resolving its position
// only once. The handle is invalidated by any other modification of the
// map.
type Entry[K comparable, V any] struct {
	m   *SmallMap[K, V]
	key K
	pos int // position of the key, -1 while vacant
}

// Entry returns a handle to the slot of the given key, occupied or vacant.
func (m *SmallMap[K, V]) Entry(key K) *Entry[K, V] {
	pos, exists := m.IndexOf(key)
	if !exists {
		pos = -1
	}
	return &Entry[K, V]{m: m, key: key, pos: pos}
}

// Key returns the key the handle was created for.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// IsOccupied returns true if the key is present in the map.
func (e *Entry[K, V]) IsOccupied() bool {
	return e.pos >= 0
}

// Index returns the position of the key in the insertion order, or -1
// while the slot is vacant.
func (e *Entry[K, V]) Index() int {
	return e.pos
}

// Get returns the value of an occupied slot.
func (e *Entry[K, V]) Get() (val V, exists bool) {
	if e.pos < 0 {
		return
	}
	return e.m.valueAt(e.pos), true
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
	if e.pos < 0 {
		pos, _, _ := e.m.PutFull(e.key, provide())
		e.pos = pos
	}
	return e.m.valueAt(e.pos)
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
	if e.pos >= 0 {
		e.m.modifyAt(e.pos, op)
	}
	return e
}

// Remove swap-removes the key of an occupied slot and returns its value.
// The handle becomes vacant.
func (e *Entry[K, V]) Remove() (val V, existed bool) {
	if e.pos < 0 {
		return
	}
	val, existed = e.m.SwapRemove(e.key)
	e.pos = -1
	return val, existed
}
