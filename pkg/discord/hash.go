package discord

import "github.com/cespare/xxhash/v2"

// Entity hashes accumulate per-field terms with XOR so they stay
// independent of field ordering. Strings go through xxhash; empty strings
// and zero scalars contribute nothing, keeping the hash of a partial
// entity equal to the hash of its id.

func hashString(s string) uint64 {
	if s == "" {
		return 0
	}
	return xxhash.Sum64String(s)
}

func hashBool(b bool, bit uint) uint64 {
	if b {
		return 1 << bit
	}
	return 0
}
