package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"basket-service/internal/recommend/catalog"
	"basket-service/internal/recommend/model"
)

func TestIDsToNames(t *testing.T) {
	cat := catalog.New(
		[]model.Product{
			{ID: 1, Name: "whole milk"},
			{ID: 2, Name: "banana"},
			{ID: 3, Name: "apple juice"},
		},
		[]model.Rule{{LHS: []int{1}, RHS: []int{2}}},
	)

	t.Run("single id round-trips to the title-cased stored name", func(t *testing.T) {
		assert.Equal(t, []string{"Whole Milk"}, IDsToNames([]int{1}, cat))
	})

	t.Run("order follows the product table, not the input", func(t *testing.T) {
		assert.Equal(t, []string{"Whole Milk", "Apple Juice"}, IDsToNames([]int{3, 1}, cat))
	})

	t.Run("unknown ids are skipped", func(t *testing.T) {
		assert.Equal(t, []string{"Banana"}, IDsToNames([]int{2, 42}, cat))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, IDsToNames(nil, cat))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Apple Juice", DisplayName("apple juice"))
	assert.Equal(t, "Banana", DisplayName("banana"))
}
