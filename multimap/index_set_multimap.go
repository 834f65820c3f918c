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

// IndexSetMultimap associates insertion-ordered keys with deduplicated
// sets of values, the values of a key keeping their insertion order as
// well. Keys and values are addressable by their positions.
type IndexSetMultimap[K comparable, V comparable] struct {
	indexedMultimap[K, V]
}

// NewIndexSetMultimap creates an empty IndexSetMultimap.
func NewIndexSetMultimap[K comparable, V comparable]() *IndexSetMultimap[K, V] {
	return NewIndexSetMultimapWithKeyCapacity[K, V](0)
}

// NewIndexSetMultimapWithKeyCapacity creates an empty IndexSetMultimap
// pre-sized for the given number of keys.
func NewIndexSetMultimapWithKeyCapacity[K comparable, V comparable](capacity int) *IndexSetMultimap[K, V] {
	return &IndexSetMultimap[K, V]{newIndexedMultimap[K, V](capacity,
		func() ValueCollection[V] { return newOrderedSet[V]() })}
}

// NewIndexSetMultimapFromPairs creates an IndexSetMultimap seeded with the
// given key-value pairs in order. Duplicated pairs collapse into one.
func NewIndexSetMultimapFromPairs[K comparable, V comparable](pairs []common.MapEntry[K, V]) *IndexSetMultimap[K, V] {
	res := NewIndexSetMultimapWithKeyCapacity[K, V](len(pairs))
	res.fill(pairs)
	return res
}
