// Package catalog loads the product table and the precomputed
// association-rule table once per process and serves them read-only.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"basket-service/internal/fileio"
	"basket-service/internal/recommend/model"
)

// Catalog bundles everything loaded at startup. Nothing here is mutated after
// Load returns; every accessor is safe for concurrent callers.
type Catalog struct {
	Products []model.Product // table order preserved
	Rules    []model.Rule
	Index    RuleIndex

	byID          map[int]model.Product
	idByName      map[string]int // lowercase eligible name -> id
	eligible      map[int]struct{}
	eligibleNames []string // lowercase, table order
}

// ProductByID looks a product up by id.
func (c *Catalog) ProductByID(id int) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Eligible reports whether id appears in at least one rule antecedent.
func (c *Catalog) Eligible(id int) bool {
	_, ok := c.eligible[id]
	return ok
}

// EligibleNames is the lowercase name list offered to the fuzzy matcher, in
// table order. Callers must not modify it.
func (c *Catalog) EligibleNames() []string { return c.eligibleNames }

// EligibleProducts returns the products restricted to the eligible universe,
// in table order.
func (c *Catalog) EligibleProducts() []model.Product {
	out := make([]model.Product, 0, len(c.eligibleNames))
	for _, p := range c.Products {
		if c.Eligible(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// IDByEligibleName resolves a lowercase name among eligible products. The
// first table occurrence wins for duplicate names.
func (c *Catalog) IDByEligibleName(name string) (int, bool) {
	id, ok := c.idByName[name]
	return id, ok
}

// Loader reads both sources exactly once per process; repeated Load calls
// return the cached catalog (or the cached error) without touching disk.
type Loader struct {
	productsPath string
	rulesPath    string

	once sync.Once
	cat  *Catalog
	err  error
}

func NewLoader(productsPath, rulesPath string) *Loader {
	return &Loader{productsPath: productsPath, rulesPath: rulesPath}
}

func (l *Loader) Load() (*Catalog, error) {
	l.once.Do(func() { l.cat, l.err = load(l.productsPath, l.rulesPath) })
	return l.cat, l.err
}

func load(productsPath, rulesPath string) (*Catalog, error) {
	products, err := loadProducts(productsPath)
	if err != nil {
		return nil, err
	}
	rules, err := loadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	return New(products, rules), nil
}

// New builds a catalog from already-parsed data. Product names must be
// lowercase; the loader guarantees that for file sources.
func New(products []model.Product, rules []model.Rule) *Catalog {
	c := &Catalog{
		Products: products,
		Rules:    rules,
		Index:    BuildIndex(rules),
		byID:     make(map[int]model.Product, len(products)),
		idByName: make(map[string]int),
	}
	c.eligible = c.Index.EligibleIDs()
	for _, p := range products {
		c.byID[p.ID] = p
		if !c.Eligible(p.ID) {
			continue
		}
		c.eligibleNames = append(c.eligibleNames, p.Name)
		if _, dup := c.idByName[p.Name]; !dup {
			c.idByName[p.Name] = p.ID
		}
	}
	return c
}

func loadProducts(path string) ([]model.Product, error) {
	rows, err := fileio.ReadFileMaps(path, 1)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Source: path, Err: errors.New("no product rows")}
	}
	idKey := resolveKey(rows[0], "product_id|id")
	nameKey := resolveKey(rows[0], "product_name|name")
	if idKey == "" || nameKey == "" {
		return nil, &LoadError{Source: path, Err: errors.New("missing product_id/product_name columns")}
	}

	out := make([]model.Product, 0, len(rows))
	for i, rec := range rows {
		id, err := parseID(rec[idKey])
		if err != nil {
			return nil, &LoadError{Source: path, Row: i + 1, Err: err}
		}
		name := strings.ToLower(strings.TrimSpace(rec[nameKey]))
		if name == "" {
			return nil, &LoadError{Source: path, Row: i + 1, Err: errors.New("empty product name")}
		}
		out = append(out, model.Product{ID: id, Name: name})
	}
	return out, nil
}

func loadRules(path string) ([]model.Rule, error) {
	rows, err := fileio.ReadFileMaps(path, 1)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Source: path, Err: errors.New("no rule rows")}
	}
	lhsKey := resolveKey(rows[0], "LHS|antecedent")
	rhsKey := resolveKey(rows[0], "RHS|consequent")
	if lhsKey == "" || rhsKey == "" {
		return nil, &LoadError{Source: path, Err: errors.New("missing LHS/RHS columns")}
	}

	out := make([]model.Rule, 0, len(rows))
	for i, rec := range rows {
		lhs, err := parseIDSet(rec[lhsKey])
		if err != nil {
			return nil, &LoadError{Source: path, Row: i + 1, Err: fmt.Errorf("LHS: %w", err)}
		}
		rhs, err := parseIDSet(rec[rhsKey])
		if err != nil {
			return nil, &LoadError{Source: path, Row: i + 1, Err: fmt.Errorf("RHS: %w", err)}
		}
		out = append(out, model.Rule{LHS: lhs, RHS: rhs})
	}
	return out, nil
}

// parseIDSet parses a bracketed, comma-delimited id list: "[1, 2]", "{1,2}"
// or "1,2". Malformed tokens and empty sets are load errors, not skips.
func parseIDSet(cell string) ([]int, error) {
	s := strings.TrimSpace(cell)
	if len(s) >= 2 {
		switch {
		case s[0] == '[' && s[len(s)-1] == ']',
			s[0] == '{' && s[len(s)-1] == '}',
			s[0] == '(' && s[len(s)-1] == ')':
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	if s == "" {
		return nil, errors.New("empty id set")
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return NormalizeIDs(ids), nil
}

func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	// Excel numeric cells sometimes render as "24852.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return int(f), nil
}

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the actual column name for want in a parsed record.
// Supports "a|b" alternates, then normalized equality ("Product ID" matches
// product_id), then substring containment for composite headers.
func resolveKey(rec map[string]string, want string) string {
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}
	norm := make([]string, len(alts))
	for i, a := range alts {
		norm[i] = normHeaderKey(a)
	}
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range norm {
			if nk == n {
				return k
			}
		}
	}
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range norm {
			if n != "" && strings.Contains(nk, n) {
				return k
			}
		}
	}
	return ""
}
