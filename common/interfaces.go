// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import "fmt"

// MemoryFootprintProvider is any structure able to report its memory consumption.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Hasher is an interface for types implementing hash functions for keys.
type Hasher[K any] interface {
	Hash(K) uint64
}

// Iterator is an interface for standard iterator
type Iterator[K any] interface {

	//HasNext returns true if there is still at least one more item in the underlying collection.
	HasNext() bool

	//Next returns a next element in the input collection.
	Next() K
}

// Map associates keys to values
type Map[K comparable, V any] interface {

	// Get returns a value associated with the key
	Get(key K) (val V, exists bool)

	// Put associates a new value to the key.
	Put(key K, val V)

	// Remove deletes a key from the map, returning whether an element was removed
	Remove(key K) (exists bool)

	// ForEach iterates all stored key/value pairs
	ForEach(callback func(K, V))

	// Size returns number of elements
	Size() int

	// Clear removes all data from the map
	Clear()
}

// MapEntry wraps a map key-value pair
type MapEntry[K comparable, V any] struct {
	Key K
	Val V
}

func (e MapEntry[K, V]) String() string {
	return fmt.Sprintf("Entry: %v -> %v", e.Key, e.Val)
}
