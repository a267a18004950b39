package hash

import "github.com/cespare/xxhash/v2"

// StateKey computes the xxHash64 of a block state's canonical key string,
// used by the block-state registry to bucket its interning table by a
// 64-bit key.
func StateKey(data string) uint64 {
	return xxhash.Sum64String(data)
}
