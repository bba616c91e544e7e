package service

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"basket-service/internal/recommend/catalog"
)

// DisplayName re-capitalizes a stored lowercase name for presentation.
func DisplayName(name string) string {
	// cases.Caser is stateful, so build one per call rather than sharing
	return cases.Title(language.English).String(name)
}

// IDsToNames maps ids to title-cased display names. Order follows the
// product table's row order restricted to the given ids, not input order.
func IDsToNames(ids []int, cat *catalog.Catalog) []string {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	caser := cases.Title(language.English)
	var out []string
	for _, p := range cat.Products {
		if _, ok := want[p.ID]; ok {
			out = append(out, caser.String(p.Name))
		}
	}
	return out
}
