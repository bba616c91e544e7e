// Package service holds the basket-matching core and the fuzzy name
// resolver that feed the HTTP layer.
package service

import (
	"math/bits"
	"sort"

	"basket-service/internal/recommend/catalog"
)

// Match returns the consequent of the most specific rule whose antecedent is
// a subset of the basket, or nil when no antecedent matches. Subsets are
// tried in descending size; equal sizes in ascending lexicographic order of
// their sorted id sequences, so the result is deterministic.
//
// Enumeration is 2^n in the basket size. That is fine for the handful of
// items a basket holds and is a deliberate boundary of this design; the HTTP
// layer caps basket size. Optimizing it (e.g. a trie over antecedents) would
// have to reproduce the most-specific-first semantics exactly.
func Match(basket []int, idx catalog.RuleIndex) []int {
	ids := catalog.NormalizeIDs(basket)
	n := len(ids)
	if n == 0 {
		return nil
	}

	total := uint(1) << n
	masks := make([]uint, 0, total-1)
	for m := uint(1); m < total; m++ {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool {
		ci, cj := bits.OnesCount(masks[i]), bits.OnesCount(masks[j])
		if ci != cj {
			return ci > cj
		}
		return lessSubset(ids, masks[i], masks[j])
	})

	subset := make([]int, 0, n)
	for _, m := range masks {
		subset = subset[:0]
		for b := 0; b < n; b++ {
			if m&(uint(1)<<b) != 0 {
				subset = append(subset, ids[b])
			}
		}
		if rhs, ok := idx.Lookup(subset); ok {
			// copy so callers can't mutate the index through the result
			return append([]int(nil), rhs...)
		}
	}
	return nil
}

// lessSubset compares two equal-size subsets of the sorted ids slice as id
// sequences, element by element.
func lessSubset(ids []int, a, b uint) bool {
	i, j := 0, 0
	for {
		for i < len(ids) && a&(uint(1)<<i) == 0 {
			i++
		}
		for j < len(ids) && b&(uint(1)<<j) == 0 {
			j++
		}
		if i >= len(ids) || j >= len(ids) {
			return false
		}
		if ids[i] != ids[j] {
			return ids[i] < ids[j]
		}
		i++
		j++
	}
}
