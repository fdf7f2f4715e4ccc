// Package hash derives stable 64-bit identifiers for spatial points.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name. The mapping is deterministic
// across processes, so the same grid-point label always yields the same ID.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
