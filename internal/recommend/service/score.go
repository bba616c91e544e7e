package service

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Scorer rates how similar a candidate is to a query on a 0-100 scale,
// higher meaning more similar. Scores only need to be comparable within one
// Suggest call.
type Scorer interface {
	Score(query, candidate string) float64
}

// WeightedScorer is the default Scorer: the best of normalized
// Damerau-Levenshtein similarity and Jaro-Winkler, over both the raw strings
// and their token-sorted forms, so "juice apple" still lands near
// "apple juice".
type WeightedScorer struct{}

func (WeightedScorer) Score(query, candidate string) float64 {
	s := bestSimilarity(query, candidate)
	qs, cs := tokenSort(query), tokenSort(candidate)
	if qs != query || cs != candidate {
		if v := bestSimilarity(qs, cs); v > s {
			s = v
		}
	}
	return s * 100
}

func bestSimilarity(a, b string) float64 {
	s := damerauSimilarity(a, b)
	if jw := matchr.JaroWinkler(a, b, false); jw > s {
		s = jw
	}
	return s
}

// damerauSimilarity normalizes edit distance into [0..1].
func damerauSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := matchr.DamerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

// tokenSort orders whitespace tokens alphabetically so word order stops
// mattering.
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}
