// Package seed derives per-month random seeds.
package seed

import (
	"github.com/zeebo/xxh3"

	"github.com/arloliu/rota/types"
)

// ForMonth derives a deterministic seed for month from a base seed.
//
// A zero base yields zero, meaning "not seeded". Non-zero bases give each
// month its own reproducible seed, so regenerating June never replays May's picks.
func ForMonth(base uint64, month types.Month) uint64 {
	if base == 0 {
		return 0
	}
	s := xxh3.HashStringSeed(month.Key(), base)
	if s == 0 {
		// Zero is reserved for "not seeded".
		return 1
	}

	return s
}
