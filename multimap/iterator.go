package multimap

import "github.com/Fantom-foundation/Collections/common"

// sliceIterator iterates a pre-computed slice of items.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator[T]) Next() T {
	item := it.items[it.pos]
	it.pos += 1
	return item
}

// flattenIterator expands the value collections of a key store iteration
// into a stream of key-value pairs. Collections are expanded one at a time
// when the iteration reaches them.
type flattenIterator[K comparable, V comparable] struct {
	outer  common.Iterator[common.MapEntry[K, ValueCollection[V]]]
	key    K
	values []V
	pos    int
}

func (it *flattenIterator[K, V]) HasNext() bool {
	// keys always hold at least one value, so an untouched outer entry
	// guarantees a next pair
	return it.pos < len(it.values) || it.outer.HasNext()
}

func (it *flattenIterator[K, V]) Next() common.MapEntry[K, V] {
	if it.pos >= len(it.values) {
		entry := it.outer.Next()
		it.key = entry.Key
		it.values = entry.Val.Values()
		it.pos = 0
	}
	value := it.values[it.pos]
	it.pos += 1
	return common.MapEntry[K, V]{Key: it.key, Val: value}
}

// keysIterator projects a key store iteration to its keys.
type keysIterator[K comparable, V comparable] struct {
	outer common.Iterator[common.MapEntry[K, ValueCollection[V]]]
}

func (it *keysIterator[K, V]) HasNext() bool {
	return it.outer.HasNext()
}

func (it *keysIterator[K, V]) Next() K {
	return it.outer.Next().Key
}

// valuesIterator projects a flattened key-value iteration to its values.
type valuesIterator[K comparable, V comparable] struct {
	inner flattenIterator[K, V]
}

func (it *valuesIterator[K, V]) HasNext() bool {
	return it.inner.HasNext()
}

func (it *valuesIterator[K, V]) Next() V {
	return it.inner.Next().Val
}
