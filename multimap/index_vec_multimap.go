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

// IndexVecMultimap associates insertion-ordered keys with lists of values
// keeping every inserted occurrence in the insertion order. Keys and
// values are addressable by their positions.
type IndexVecMultimap[K comparable, V comparable] struct {
	indexedMultimap[K, V]
}

// NewIndexVecMultimap creates an empty IndexVecMultimap.
func NewIndexVecMultimap[K comparable, V comparable]() *IndexVecMultimap[K, V] {
	return NewIndexVecMultimapWithKeyCapacity[K, V](0)
}

// NewIndexVecMultimapWithKeyCapacity creates an empty IndexVecMultimap
// pre-sized for the given number of keys.
func NewIndexVecMultimapWithKeyCapacity[K comparable, V comparable](capacity int) *IndexVecMultimap[K, V] {
	return &IndexVecMultimap[K, V]{newIndexedMultimap[K, V](capacity,
		func() ValueCollection[V] { return newVector[V]() })}
}

// NewIndexVecMultimapFromPairs creates an IndexVecMultimap seeded with the
// given key-value pairs in order. Duplicated pairs are kept.
func NewIndexVecMultimapFromPairs[K comparable, V comparable](pairs []common.MapEntry[K, V]) *IndexVecMultimap[K, V] {
	res := NewIndexVecMultimapWithKeyCapacity[K, V](len(pairs))
	res.fill(pairs)
	return res
}
