// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup collapses records that describe the same asset across sheets
// and tables. The first record seen for a key is kept; later ones are
// dropped without merging fields.
package dedup

import (
	"strings"

	"github.com/pdiddy/portfolio-extract/pkg/types"
)

// keySep joins key parts; it cannot occur in trimmed cell text.
const keySep = "\x1f"

// Key returns the identity key of a: its class followed by the class-specific
// identity fields.
func Key(a types.Asset) string {
	parts := append([]string{string(a.Class())}, a.Identity()...)
	return strings.Join(parts, keySep)
}

// Dedup returns the first occurrence of every key in input order, and the
// number of records dropped.
func Dedup(assets []types.Asset) ([]types.Asset, int) {
	seen := make(map[string]bool, len(assets))
	kept := make([]types.Asset, 0, len(assets))
	for _, a := range assets {
		k := Key(a)
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, a)
	}
	return kept, len(assets) - len(kept)
}
