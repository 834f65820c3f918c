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

// HashVecMultimap associates hashed keys with lists of values keeping
// every inserted occurrence in the insertion order. The key iteration
// order is arbitrary.
type HashVecMultimap[K comparable, V comparable] struct {
	multiMap[K, V]
}

// NewHashVecMultimap creates an empty HashVecMultimap hashing keys with
// the built-in hash function.
func NewHashVecMultimap[K comparable, V comparable]() *HashVecMultimap[K, V] {
	return NewHashVecMultimapWithKeyCapacity[K, V](0)
}

// NewHashVecMultimapWithKeyCapacity creates an empty HashVecMultimap
// pre-sized for the given number of keys.
func NewHashVecMultimapWithKeyCapacity[K comparable, V comparable](capacity int) *HashVecMultimap[K, V] {
	return &HashVecMultimap[K, V]{multiMap[K, V]{
		keys:  newMapKeyStore[K, V](capacity),
		fresh: func() ValueCollection[V] { return newVector[V]() },
	}}
}

// NewHashVecMultimapWithHasher creates an empty HashVecMultimap hashing
// keys with the given hash function.
func NewHashVecMultimapWithHasher[K comparable, V comparable](hasher common.Hasher[K]) *HashVecMultimap[K, V] {
	return &HashVecMultimap[K, V]{multiMap[K, V]{
		keys:  newHashKeyStore[K, V](hasher),
		fresh: func() ValueCollection[V] { return newVector[V]() },
	}}
}

// NewHashVecMultimapFromPairs creates a HashVecMultimap seeded with the
// given key-value pairs. Duplicated pairs are kept.
func NewHashVecMultimapFromPairs[K comparable, V comparable](pairs []common.MapEntry[K, V]) *HashVecMultimap[K, V] {
	res := NewHashVecMultimapWithKeyCapacity[K, V](len(pairs))
	res.fill(pairs)
	return res
}

// NewHashVecMultimapFromMap creates a HashVecMultimap seeded with the
// content of a plain map of value slices.
func NewHashVecMultimapFromMap[K comparable, V comparable](data map[K][]V) *HashVecMultimap[K, V] {
	res := NewHashVecMultimapWithKeyCapacity[K, V](len(data))
	res.fillFromMap(data)
	return res
}
