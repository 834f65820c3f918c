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

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"
)

// StringXxHasher hashes string keys using the xxHash64 algorithm.
type StringXxHasher struct{}

func (h StringXxHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// BytesXxHasher hashes byte slice keys using the xxHash64 algorithm.
type BytesXxHasher struct{}

func (h BytesXxHasher) Hash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Uint64XxHasher hashes 64-bit integer keys using the xxHash64 algorithm.
type Uint64XxHasher struct{}

func (h Uint64XxHasher) Hash(key uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], key)
	return xxhash.Sum64(b[:])
}

// Uint32XxHasher hashes 32-bit integer keys using the xxHash64 algorithm.
type Uint32XxHasher struct{}

func (h Uint32XxHasher) Hash(key uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], key)
	return xxhash.Sum64(b[:])
}

// StringKeccakHasher hashes string keys using the legacy Keccak-256
// algorithm, truncated to the first 8 bytes of the digest.
// It is slower than the xxHash variants, but provides digests with
// well-studied distribution properties.
type StringKeccakHasher struct{}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakState interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

func (h StringKeccakHasher) Hash(key string) uint64 {
	hasher := keccakHasherPool.Get().(keccakState)
	hasher.Reset()
	hasher.Write([]byte(key))
	var res [8]byte
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return binary.BigEndian.Uint64(res[:])
}
