// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package smallmap

import (
	"unsafe"

	"github.com/Fantom-foundation/Collections/common"
)

// SmallSet is an insertion-ordered set of values optimized for small
// cardinalities, built on the SmallMap representation including its
// one-way inline to spilled promotion.
type SmallSet[V comparable] struct {
	inner SmallMap[V, struct{}]
}

// NewSmallSet creates an empty SmallSet holding up to inlineCapacity
// values without a heap-indexed representation.
func NewSmallSet[V comparable](inlineCapacity int) *SmallSet[V] {
	return &SmallSet[V]{inner: *NewSmallMap[V, struct{}](inlineCapacity)}
}

// NewSmallSetFromValues creates a SmallSet seeded with the given values in
// order. Duplicates collapse into the first occurrence.
func NewSmallSetFromValues[V comparable](inlineCapacity int, values []V) *SmallSet[V] {
	res := NewSmallSet[V](inlineCapacity)
	for _, value := range values {
		res.Add(value)
	}
	return res
}

// Add inserts the value and returns whether the set grew. An already
// present value keeps its position.
func (s *SmallSet[V]) Add(value V) bool {
	_, added := s.AddFull(value)
	return added
}

// AddFull inserts the value and returns its position in the insertion
// order, together with whether the set grew.
func (s *SmallSet[V]) AddFull(value V) (pos int, added bool) {
	pos, _, existed := s.inner.PutFull(value, struct{}{})
	return pos, !existed
}

// Contains returns true if the value is present.
func (s *SmallSet[V]) Contains(value V) bool {
	return s.inner.ContainsKey(value)
}

// Remove deletes the value in O(1) by moving the last value into the
// vacated position of the insertion order.
func (s *SmallSet[V]) Remove(value V) bool {
	_, existed := s.inner.SwapRemove(value)
	return existed
}

// ShiftRemove deletes the value preserving the order of the remaining
// values at O(n) cost.
func (s *SmallSet[V]) ShiftRemove(value V) bool {
	_, existed := s.inner.ShiftRemove(value)
	return existed
}

// GetAt returns the value at the given position of the insertion order.
func (s *SmallSet[V]) GetAt(pos int) (value V, exists bool) {
	value, _, exists = s.inner.GetAt(pos)
	return value, exists
}

// IndexOf returns the position of the value in the insertion order.
func (s *SmallSet[V]) IndexOf(value V) (pos int, exists bool) {
	return s.inner.IndexOf(value)
}

// Size returns the number of values in the set.
func (s *SmallSet[V]) Size() int {
	return s.inner.Size()
}

// IsEmpty returns true if the set holds no value.
func (s *SmallSet[V]) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// IsInline returns true while the values live in the inline buffer.
func (s *SmallSet[V]) IsInline() bool {
	return s.inner.IsInline()
}

// InlineCapacity returns the number of values the inline buffer can hold.
func (s *SmallSet[V]) InlineCapacity() int {
	return s.inner.InlineCapacity()
}

// Clear removes all values keeping the current representation.
func (s *SmallSet[V]) Clear() {
	s.inner.Clear()
}

// ForEach calls the callback for each value in the insertion order.
func (s *SmallSet[V]) ForEach(callback func(V)) {
	s.inner.ForEach(func(value V, _ struct{}) {
		callback(value)
	})
}

// Values returns all values of this set in the insertion order.
func (s *SmallSet[V]) Values() []V {
	return s.inner.Keys()
}

// Iterator provides an iterator over the values in the insertion order.
func (s *SmallSet[V]) Iterator() common.Iterator[V] {
	return &setIterator[V]{inner: s.inner.Iterator()}
}

// Union provides a lazy iterator over the values of this set followed by
// the values of the other set not present in this one.
func (s *SmallSet[V]) Union(other *SmallSet[V]) common.Iterator[V] {
	return &chainIterator[V]{
		first:  s.Iterator(),
		second: newFilterIterator(other.Iterator(), func(value V) bool { return !s.Contains(value) }),
	}
}

// Intersection provides a lazy iterator over the values of this set that
// are also present in the other set.
func (s *SmallSet[V]) Intersection(other *SmallSet[V]) common.Iterator[V] {
	return newFilterIterator(s.Iterator(), other.Contains)
}

// Difference provides a lazy iterator over the values of this set that are
// not present in the other set.
func (s *SmallSet[V]) Difference(other *SmallSet[V]) common.Iterator[V] {
	return newFilterIterator(s.Iterator(), func(value V) bool { return !other.Contains(value) })
}

// SymmetricDifference provides a lazy iterator over the values present in
// exactly one of the two sets.
func (s *SmallSet[V]) SymmetricDifference(other *SmallSet[V]) common.Iterator[V] {
	return &chainIterator[V]{
		first:  s.Difference(other),
		second: other.Difference(s),
	}
}

// IsDisjoint returns true if the two sets share no value. The smaller set
// is iterated, the larger one probed.
func (s *SmallSet[V]) IsDisjoint(other *SmallSet[V]) bool {
	small, large := s, other
	if small.Size() > large.Size() {
		small, large = large, small
	}
	disjoint := true
	small.ForEach(func(value V) {
		if large.Contains(value) {
			disjoint = false
		}
	})
	return disjoint
}

// IsSubset returns true if all values of this set are present in the other.
func (s *SmallSet[V]) IsSubset(other *SmallSet[V]) bool {
	if s.Size() > other.Size() {
		return false
	}
	subset := true
	s.ForEach(func(value V) {
		if !other.Contains(value) {
			subset = false
		}
	})
	return subset
}

// IsSuperset returns true if all values of the other set are present in
// this one.
func (s *SmallSet[V]) IsSuperset(other *SmallSet[V]) bool {
	return other.IsSubset(s)
}

func (s *SmallSet[V]) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*s) - unsafe.Sizeof(s.inner))
	mf.AddChild("inner", s.inner.GetMemoryFootprint())
	return mf
}

// setIterator projects a map entry iteration to its keys.
type setIterator[V comparable] struct {
	inner common.Iterator[common.MapEntry[V, struct{}]]
}

func (it *setIterator[V]) HasNext() bool {
	return it.inner.HasNext()
}

func (it *setIterator[V]) Next() V {
	return it.inner.Next().Key
}

// chainIterator concatenates two iterations.
type chainIterator[V any] struct {
	first  common.Iterator[V]
	second common.Iterator[V]
}

func (it *chainIterator[V]) HasNext() bool {
	return it.first.HasNext() || it.second.HasNext()
}

func (it *chainIterator[V]) Next() V {
	if it.first.HasNext() {
		return it.first.Next()
	}
	return it.second.Next()
}

// filterIterator skips values failing the predicate, looking one value
// ahead to answer HasNext.
type filterIterator[V any] struct {
	inner     common.Iterator[V]
	predicate func(V) bool
	next      V
	valid     bool
}

func newFilterIterator[V any](inner common.Iterator[V], predicate func(V) bool) *filterIterator[V] {
	it := &filterIterator[V]{inner: inner, predicate: predicate}
	it.advance()
	return it
}

func (it *filterIterator[V]) advance() {
	for it.inner.HasNext() {
		value := it.inner.Next()
		if it.predicate(value) {
			it.next = value
			it.valid = true
			return
		}
	}
	it.valid = false
}

func (it *filterIterator[V]) HasNext() bool {
	return it.valid
}

func (it *filterIterator[V]) Next() V {
	value := it.next
	it.advance()
	return value
}
