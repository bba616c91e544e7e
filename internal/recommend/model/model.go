package model

// Product is one catalog row. Name is stored lowercase; display layers
// re-capitalize.
type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Rule pairs an antecedent id set (LHS) with the consequent id set (RHS) it
// recommends. LHS is sorted and deduplicated at load.
type Rule struct {
	LHS []int
	RHS []int
}

// Suggestion is one fuzzy candidate for a typed product name.
type Suggestion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
