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

//go:generate mockgen -source interfaces.go -destination interfaces_mocks.go -package multimap

import (
	"github.com/Fantom-foundation/Collections/common"
)

// ValueCollection is the capability the multimap core requires from the
// per-key collections of values. Implementations differ in whether they
// deduplicate values (set behavior) or keep every inserted occurrence in
// order (list behavior).
type ValueCollection[V comparable] interface {

	// Add inserts the value into the collection. It returns false if the
	// collection deduplicates values and an equal value is already present.
	Add(value V) bool

	// Remove deletes a single occurrence of the value, returning whether
	// the collection shrunk.
	Remove(value V) bool

	// Contains returns true if an equal value is present.
	Contains(value V) bool

	// Size returns the number of stored values.
	Size() int

	// ForEach iterates all values in the collection order.
	ForEach(callback func(V))

	// Values returns a copy of all values in the collection order.
	Values() []V

	// Retain drops all values failing the predicate and returns
	// the number of dropped values.
	Retain(predicate func(V) bool) int

	// provides the size of the collection in memory in bytes
	common.MemoryFootprintProvider
}

// OrderedValueCollection extends ValueCollection with positional insertion
// for collections that maintain a stable value order.
type OrderedValueCollection[V comparable] interface {
	ValueCollection[V]

	// AddFull inserts the value and returns its position in the collection
	// order, together with whether the collection grew. For an already
	// present value the position of the existing occurrence is returned.
	AddFull(value V) (pos int, added bool)
}

// KeyStore is the capability the multimap core requires from the outer
// mapping of keys to value collections. A key registered in the store is
// always associated with a non-empty collection; the core removes the key
// in the same logical step that empties its collection.
type KeyStore[K comparable, V comparable] interface {

	// Get returns the collection associated with the key.
	Get(key K) (ValueCollection[V], bool)

	// Put associates the collection to the key.
	Put(key K, values ValueCollection[V])

	// Remove deletes the key and returns its collection.
	Remove(key K) (ValueCollection[V], bool)

	// Size returns the number of keys.
	Size() int

	// ForEach iterates all key/collection pairs in the store order.
	ForEach(callback func(K, ValueCollection[V]))

	// Iterator provides a lazy iterator over the store order.
	Iterator() common.Iterator[common.MapEntry[K, ValueCollection[V]]]

	// Clear removes all keys.
	Clear()

	// provides the size of the store in memory in bytes
	common.MemoryFootprintProvider
}
