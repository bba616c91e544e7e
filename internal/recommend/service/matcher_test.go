package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"basket-service/internal/recommend/catalog"
	"basket-service/internal/recommend/model"
)

func index(rules ...model.Rule) catalog.RuleIndex {
	return catalog.BuildIndex(rules)
}

func TestMatch(t *testing.T) {
	t.Run("larger antecedent wins over smaller", func(t *testing.T) {
		idx := index(
			model.Rule{LHS: []int{1, 2}, RHS: []int{3}},
			model.Rule{LHS: []int{1}, RHS: []int{4}},
		)
		assert.Equal(t, []int{3}, Match([]int{1, 2}, idx))
	})

	t.Run("falls back to smaller subset", func(t *testing.T) {
		idx := index(model.Rule{LHS: []int{1}, RHS: []int{4}})
		assert.Equal(t, []int{4}, Match([]int{1, 2}, idx))
	})

	t.Run("empty index means no recommendation", func(t *testing.T) {
		assert.Nil(t, Match([]int{1, 2, 3}, index()))
	})

	t.Run("empty basket returns nil without touching the index", func(t *testing.T) {
		assert.Nil(t, Match(nil, nil))
		assert.Nil(t, Match([]int{}, index(model.Rule{LHS: []int{1}, RHS: []int{2}})))
	})

	t.Run("basket order and duplicates are irrelevant", func(t *testing.T) {
		idx := index(model.Rule{LHS: []int{1, 2}, RHS: []int{3}})
		assert.Equal(t, []int{3}, Match([]int{2, 1, 2, 1}, idx))
	})

	t.Run("equal-size ties break lexicographically by sorted ids", func(t *testing.T) {
		idx := index(
			model.Rule{LHS: []int{1, 3}, RHS: []int{8}},
			model.Rule{LHS: []int{1, 2}, RHS: []int{9}},
		)
		// both {1,2} and {1,3} key the index; {1,2} sorts first
		assert.Equal(t, []int{9}, Match([]int{3, 2, 1}, idx))
	})

	t.Run("idempotent against a read-only index", func(t *testing.T) {
		idx := index(model.Rule{LHS: []int{5, 7}, RHS: []int{11}})
		first := Match([]int{7, 5, 6}, idx)
		second := Match([]int{7, 5, 6}, idx)
		assert.Equal(t, first, second)
	})

	t.Run("result is a copy, not the index slice", func(t *testing.T) {
		idx := index(model.Rule{LHS: []int{1}, RHS: []int{4, 5}})
		got := Match([]int{1}, idx)
		got[0] = 99
		again, ok := idx.Lookup([]int{1})
		assert.True(t, ok)
		assert.Equal(t, []int{4, 5}, again)
	})

	t.Run("never returns a non-matching rule", func(t *testing.T) {
		idx := index(model.Rule{LHS: []int{10, 20}, RHS: []int{30}})
		assert.Nil(t, Match([]int{10, 21}, idx))
	})
}
