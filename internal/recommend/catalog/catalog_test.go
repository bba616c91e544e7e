package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basket-service/internal/recommend/model"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const productsCSV = `product_id,product_name
1,Apple
2,Apple Juice
3,Banana
4,Cereal
`

const rulesCSV = `LHS,RHS
"[1, 2]","[4]"
"[3]","[1]"
`

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	products := writeFixture(t, dir, "products.csv", productsCSV)
	rules := writeFixture(t, dir, "rules.csv", rulesCSV)

	cat, err := NewLoader(products, rules).Load()
	require.NoError(t, err)

	t.Run("names are lowercased at load", func(t *testing.T) {
		p, ok := cat.ProductByID(2)
		require.True(t, ok)
		assert.Equal(t, "apple juice", p.Name)
	})

	t.Run("rule index resolves antecedents", func(t *testing.T) {
		rhs, ok := cat.Index.Lookup([]int{2, 1})
		require.True(t, ok)
		assert.Equal(t, []int{4}, rhs)
	})

	t.Run("eligible universe is the union of antecedents", func(t *testing.T) {
		assert.True(t, cat.Eligible(1))
		assert.True(t, cat.Eligible(2))
		assert.True(t, cat.Eligible(3))
		assert.False(t, cat.Eligible(4))
		assert.Equal(t, []string{"apple", "apple juice", "banana"}, cat.EligibleNames())
	})

	t.Run("eligible products keep table order", func(t *testing.T) {
		eps := cat.EligibleProducts()
		require.Len(t, eps, 3)
		assert.Equal(t, 1, eps[0].ID)
		assert.Equal(t, 3, eps[2].ID)
	})

	t.Run("name lookup covers eligible products only", func(t *testing.T) {
		id, ok := cat.IDByEligibleName("banana")
		require.True(t, ok)
		assert.Equal(t, 3, id)
		_, ok = cat.IDByEligibleName("cereal")
		assert.False(t, ok)
	})
}

func TestLoaderMemoizes(t *testing.T) {
	dir := t.TempDir()
	products := writeFixture(t, dir, "products.csv", productsCSV)
	rules := writeFixture(t, dir, "rules.csv", rulesCSV)

	l := NewLoader(products, rules)
	first, err := l.Load()
	require.NoError(t, err)

	// sources gone: a second Load must serve the cached catalog
	require.NoError(t, os.Remove(products))
	require.NoError(t, os.Remove(rules))

	second, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	products := writeFixture(t, dir, "products.csv", productsCSV)

	t.Run("missing source is a LoadError with a cause", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "nope2.csv")).Load()
		require.Error(t, err)
		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.NotNil(t, le.Unwrap())
	})

	t.Run("malformed rule row fails the whole load and names the row", func(t *testing.T) {
		rules := writeFixture(t, dir, "bad-rules.csv", "LHS,RHS\n\"[1]\",\"[2]\"\n\"[1, x]\",\"[3]\"\n")
		_, err := NewLoader(products, rules).Load()
		require.Error(t, err)
		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, 2, le.Row)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("empty id set is malformed", func(t *testing.T) {
		rules := writeFixture(t, dir, "empty-rules.csv", "LHS,RHS\n\"[]\",\"[3]\"\n")
		_, err := NewLoader(products, rules).Load()
		require.Error(t, err)
	})

	t.Run("missing columns fail the load", func(t *testing.T) {
		rules := writeFixture(t, dir, "cols-rules.csv", "left,right\n\"[1]\",\"[2]\"\n")
		_, err := NewLoader(products, rules).Load()
		require.Error(t, err)
	})
}

func TestIDByEligibleNameDuplicateNamesFirstWins(t *testing.T) {
	cat := New(
		[]model.Product{
			{ID: 1, Name: "apple"},
			{ID: 5, Name: "apple"},
		},
		[]model.Rule{{LHS: []int{1, 5}, RHS: []int{9}}},
	)
	id, ok := cat.IDByEligibleName("apple")
	require.True(t, ok)
	assert.Equal(t, 1, id)
	// both rows stay in the eligible name list for the fuzzy matcher
	assert.Equal(t, []string{"apple", "apple"}, cat.EligibleNames())
}

func TestBuildIndexDuplicateLHSLastWins(t *testing.T) {
	idx := BuildIndex([]model.Rule{
		{LHS: []int{1}, RHS: []int{2}},
		{LHS: []int{1}, RHS: []int{3}},
	})
	rhs, ok := idx.Lookup([]int{1})
	require.True(t, ok)
	assert.Equal(t, []int{3}, rhs)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "1,2,3", Key([]int{3, 1, 2, 3}))
	assert.Equal(t, "7", Key([]int{7}))
	assert.Equal(t, "", Key(nil))
}

func TestEligibleIDs(t *testing.T) {
	idx := BuildIndex([]model.Rule{
		{LHS: []int{1, 2}, RHS: []int{9}},
		{LHS: []int{2, 5}, RHS: []int{9}},
	})
	got := idx.EligibleIDs()
	assert.Len(t, got, 3)
	for _, id := range []int{1, 2, 5} {
		assert.Contains(t, got, id)
	}
}

func TestParseIDSet(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []int
	}{
		{"[24852, 13176]", []int{13176, 24852}},
		{"{3, 1, 2}", []int{1, 2, 3}},
		{"(5)", []int{5}},
		{"7, 8", []int{7, 8}},
		{"[1, 1, 2]", []int{1, 2}},
		{"[24852.0]", []int{24852}},
	} {
		got, err := parseIDSet(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "[]", "[1, x]", "[1.5]", "[1;2]"} {
		_, err := parseIDSet(in)
		assert.Error(t, err, in)
	}
}
