// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vecmap

import (
	"fmt"

	"github.com/ccoveille/go-safecast/v2"
	"golang.org/x/exp/constraints"

	"github.com/Fantom-foundation/Collections/common"
)

// KeyMapper translates map keys to dense slot indices and back. The
// translation must be a bijection on the supported key range; keys
// outside the range are rejected with an error.
type KeyMapper[K comparable] interface {

	// ToIndex returns the non-negative slot index of the key, or an error
	// for a key outside the supported range.
	ToIndex(key K) (int, error)

	// FromIndex returns the key occupying the given slot index. It is only
	// called with indices previously produced by ToIndex.
	FromIndex(index int) K
}

// Integers creates a KeyMapper using integer keys directly as slot
// indices. Negative keys and keys exceeding the int range are rejected.
func Integers[K constraints.Integer]() KeyMapper[K] {
	return integerMapper[K]{}
}

type integerMapper[K constraints.Integer] struct{}

func (integerMapper[K]) ToIndex(key K) (int, error) {
	index, err := safecast.Convert[int](key)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrIndexOutOfRange, err)
	}
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, index)
	}
	return index, nil
}

func (integerMapper[K]) FromIndex(index int) K {
	return K(index)
}
