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

import "github.com/Fantom-foundation/Collections/common"

// HashSetMultimap associates hashed keys with deduplicated sets of values.
// Inserting a pair already present is a no-op. Key and value iteration
// orders are arbitrary.
type HashSetMultimap[K comparable, V comparable] struct {
	multiMap[K, V]
}

// NewHashSetMultimap creates an empty HashSetMultimap hashing keys with the
// built-in hash function.
func NewHashSetMultimap[K comparable, V comparable]() *HashSetMultimap[K, V] {
	return NewHashSetMultimapWithKeyCapacity[K, V](0)
}

// NewHashSetMultimapWithKeyCapacity creates an empty HashSetMultimap
// pre-sized for the given number of keys.
func NewHashSetMultimapWithKeyCapacity[K comparable, V comparable](capacity int) *HashSetMultimap[K, V] {
	return &HashSetMultimap[K, V]{multiMap[K, V]{
		keys:  newMapKeyStore[K, V](capacity),
		fresh: func() ValueCollection[V] { return newHashSet[V]() },
	}}
}

// NewHashSetMultimapWithHasher creates an empty HashSetMultimap hashing
// keys with the given hash function.
func NewHashSetMultimapWithHasher[K comparable, V comparable](hasher common.Hasher[K]) *HashSetMultimap[K, V] {
	return &HashSetMultimap[K, V]{multiMap[K, V]{
		keys:  newHashKeyStore[K, V](hasher),
		fresh: func() ValueCollection[V] { return newHashSet[V]() },
	}}
}

// NewHashSetMultimapFromPairs creates a HashSetMultimap seeded with the
// given key-value pairs. Duplicated pairs collapse into one.
func NewHashSetMultimapFromPairs[K comparable, V comparable](pairs []common.MapEntry[K, V]) *HashSetMultimap[K, V] {
	res := NewHashSetMultimapWithKeyCapacity[K, V](len(pairs))
	res.fill(pairs)
	return res
}

// NewHashSetMultimapFromMap creates a HashSetMultimap seeded with the
// content of a plain map of value slices.
func NewHashSetMultimapFromMap[K comparable, V comparable](data map[K][]V) *HashSetMultimap[K, V] {
	res := NewHashSetMultimapWithKeyCapacity[K, V](len(data))
	res.fillFromMap(data)
	return res
}
