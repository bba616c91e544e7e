package service

import (
	"sort"
	"strings"

	"basket-service/internal/recommend/catalog"
	"basket-service/internal/recommend/model"
)

// Resolver turns free-text product names into eligible catalog ids.
type Resolver struct {
	cat    *catalog.Catalog
	scorer Scorer
}

// NewResolver wires a resolver over the loaded catalog. A nil scorer selects
// WeightedScorer.
func NewResolver(cat *catalog.Catalog, scorer Scorer) *Resolver {
	if scorer == nil {
		scorer = WeightedScorer{}
	}
	return &Resolver{cat: cat, scorer: scorer}
}

// Suggest scores freeText against every eligible product name, keeps at most
// limit candidates by descending score, then filters out anything below
// minScore. The limit caps candidates before the threshold is applied, never
// after. An empty result is a valid no-match outcome, not an error. Equal
// scores keep catalog order.
func (r *Resolver) Suggest(freeText string, limit int, minScore float64) []model.Suggestion {
	q := strings.ToLower(strings.TrimSpace(freeText))
	if q == "" || limit <= 0 {
		return nil
	}

	names := r.cat.EligibleNames()
	cands := make([]model.Suggestion, 0, len(names))
	for _, n := range names {
		cands = append(cands, model.Suggestion{Name: n, Score: r.scorer.Score(q, n)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })
	if len(cands) > limit {
		cands = cands[:limit]
	}

	var out []model.Suggestion
	for _, c := range cands {
		if c.Score >= minScore {
			out = append(out, c)
		}
	}
	return out
}

// ResolveToIDs maps already-disambiguated names to eligible product ids,
// case-insensitively. Names with no eligible match are silently dropped, so
// the result may be smaller than the input. Ids come back deduplicated,
// ascending.
func (r *Resolver) ResolveToIDs(names []string) []int {
	seen := make(map[int]struct{}, len(names))
	var out []int
	for _, n := range names {
		id, ok := r.cat.IDByEligibleName(strings.ToLower(strings.TrimSpace(n)))
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
