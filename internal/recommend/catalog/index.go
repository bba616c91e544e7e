package catalog

import (
	"sort"
	"strconv"
	"strings"

	"basket-service/internal/recommend/model"
)

// RuleIndex maps the canonical key of a rule's antecedent to its consequent.
// Built once at load time and read-only afterward, so concurrent lookups need
// no locking.
type RuleIndex map[string][]int

// Key canonicalizes an id set: deduplicated, sorted ascending, comma-joined.
func Key(ids []int) string {
	s := NormalizeIDs(ids)
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Lookup returns the consequent keyed by exactly this id set, if any.
func (idx RuleIndex) Lookup(ids []int) ([]int, bool) {
	rhs, ok := idx[Key(ids)]
	return rhs, ok
}

// EligibleIDs is the union of all antecedent sets: only these ids can ever
// trigger a match.
func (idx RuleIndex) EligibleIDs() map[int]struct{} {
	out := make(map[int]struct{})
	for k := range idx {
		for _, p := range strings.Split(k, ",") {
			if id, err := strconv.Atoi(p); err == nil {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// BuildIndex inserts antecedent -> consequent for each rule. On duplicate
// antecedents the last row wins, preserving the source pipeline's behavior.
func BuildIndex(rules []model.Rule) RuleIndex {
	idx := make(RuleIndex, len(rules))
	for _, r := range rules {
		idx[Key(r.LHS)] = r.RHS
	}
	return idx
}

// NormalizeIDs returns a deduplicated, ascending copy of ids.
func NormalizeIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	s := append([]int(nil), ids...)
	sort.Ints(s)
	out := s[:1]
	for _, id := range s[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
