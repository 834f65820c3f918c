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

// hashSet is a deduplicating value collection backed by the runtime map.
// The iteration order is arbitrary.
type hashSet[V comparable] struct {
	data map[V]struct{}
}

func newHashSet[V comparable]() *hashSet[V] {
	return &hashSet[V]{data: map[V]struct{}{}}
}

func (s *hashSet[V]) Add(value V) bool {
	if _, exists := s.data[value]; exists {
		return false
	}
	s.data[value] = struct{}{}
	return true
}

func (s *hashSet[V]) Remove(value V) bool {
	if _, exists := s.data[value]; !exists {
		return false
	}
	delete(s.data, value)
	return true
}

func (s *hashSet[V]) Contains(value V) bool {
	_, exists := s.data[value]
	return exists
}

func (s *hashSet[V]) Size() int {
	return len(s.data)
}

func (s *hashSet[V]) ForEach(callback func(V)) {
	for value := range s.data {
		callback(value)
	}
}

func (s *hashSet[V]) Values() []V {
	values := make([]V, 0, len(s.data))
	for value := range s.data {
		values = append(values, value)
	}
	return values
}

func (s *hashSet[V]) Retain(predicate func(V) bool) int {
	removed := 0
	for value := range s.data {
		if !predicate(value) {
			delete(s.data, value)
			removed++
		}
	}
	return removed
}

func (s *hashSet[V]) GetMemoryFootprint() *common.MemoryFootprint {
	var v V
	entrySize := unsafe.Sizeof(v)
	return common.NewMemoryFootprint(unsafe.Sizeof(*s) + uintptr(len(s.data))*entrySize)
}

// orderedSet is a deduplicating value collection preserving the insertion
// order of its values.
type orderedSet[V comparable] struct {
	inner *common.OrderedMap[V, struct{}]
}

func newOrderedSet[V comparable]() *orderedSet[V] {
	return &orderedSet[V]{inner: common.NewOrderedMap[V, struct{}]()}
}

func (s *orderedSet[V]) Add(value V) bool {
	_, added := s.AddFull(value)
	return added
}

func (s *orderedSet[V]) AddFull(value V) (pos int, added bool) {
	pos, _, existed := s.inner.PutFull(value, struct{}{})
	return pos, !existed
}

func (s *orderedSet[V]) Remove(value V) bool {
	_, existed := s.inner.ShiftRemove(value)
	return existed
}

func (s *orderedSet[V]) Contains(value V) bool {
	_, exists := s.inner.Get(value)
	return exists
}

func (s *orderedSet[V]) Size() int {
	return s.inner.Size()
}

func (s *orderedSet[V]) ForEach(callback func(V)) {
	s.inner.ForEach(func(value V, _ struct{}) {
		callback(value)
	})
}

func (s *orderedSet[V]) Values() []V {
	return s.inner.Keys()
}

func (s *orderedSet[V]) Retain(predicate func(V) bool) int {
	var drop []V
	s.ForEach(func(value V) {
		if !predicate(value) {
			drop = append(drop, value)
		}
	})
	for _, value := range drop {
		s.inner.ShiftRemove(value)
	}
	return len(drop)
}

func (s *orderedSet[V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s))
	mf.AddChild("inner", s.inner.GetMemoryFootprint())
	return mf
}

// vector is a value collection keeping every inserted occurrence in the
// insertion order. Duplicates are allowed.
type vector[V comparable] struct {
	data []V
}

func newVector[V comparable]() *vector[V] {
	return &vector[V]{}
}

func (v *vector[V]) Add(value V) bool {
	v.data = append(v.data, value)
	return true
}

func (v *vector[V]) AddFull(value V) (pos int, added bool) {
	pos = len(v.data)
	v.data = append(v.data, value)
	return pos, true
}

// Remove deletes the first occurrence of the value preserving the order of
// the remaining values.
func (v *vector[V]) Remove(value V) bool {
	for i := range v.data {
		if v.data[i] == value {
			copy(v.data[i:], v.data[i+1:])
			v.data = v.data[:len(v.data)-1]
			return true
		}
	}
	return false
}

func (v *vector[V]) Contains(value V) bool {
	for i := range v.data {
		if v.data[i] == value {
			return true
		}
	}
	return false
}

func (v *vector[V]) Size() int {
	return len(v.data)
}

func (v *vector[V]) ForEach(callback func(V)) {
	for i := range v.data {
		callback(v.data[i])
	}
}

func (v *vector[V]) Values() []V {
	values := make([]V, len(v.data))
	copy(values, v.data)
	return values
}

func (v *vector[V]) Retain(predicate func(V) bool) int {
	kept := v.data[:0]
	for i := range v.data {
		if predicate(v.data[i]) {
			kept = append(kept, v.data[i])
		}
	}
	removed := len(v.data) - len(kept)
	v.data = kept
	return removed
}

func (v *vector[V]) GetMemoryFootprint() *common.MemoryFootprint {
	var value V
	size := unsafe.Sizeof(*v) + uintptr(cap(v.data))*unsafe.Sizeof(value)
	return common.NewMemoryFootprint(size)
}
