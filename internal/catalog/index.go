package catalog

import (
	"strings"

	"smartcart/internal/match"
)

// Index exposes name and SKU lookups over an immutable product snapshot.
type Index struct {
	products []Product
	byName   map[string]*Product
	bySKU    map[string]*Product
	names    []string
	scorer   *match.Scorer
}

func NewIndex(repo Repository, scorer *match.Scorer) *Index {
	products := repo.All()
	ix := &Index{
		products: products,
		byName:   make(map[string]*Product, len(products)),
		bySKU:    make(map[string]*Product, len(products)),
		names:    make([]string, 0, len(products)),
		scorer:   scorer,
	}
	for i := range products {
		p := &products[i]
		name := strings.ToLower(p.Name)
		ix.byName[name] = p
		ix.bySKU[p.SKU] = p
		ix.names = append(ix.names, name)
	}
	return ix
}

// Resolve finds the product for a free-text name: exact lower-cased match
// first, then the best approximate match if it clears the similarity
// threshold. Nothing is returned below threshold.
func (ix *Index) Resolve(name string) (*Product, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := ix.byName[key]; ok {
		return p, true
	}
	best, _, ok := ix.scorer.BestMatch(key, ix.names)
	if !ok {
		return nil, false
	}
	p, ok := ix.byName[best]
	return p, ok
}

// ResolveSKU is exact-match only.
func (ix *Index) ResolveSKU(sku string) (*Product, bool) {
	p, ok := ix.bySKU[sku]
	return p, ok
}

// Products returns the snapshot in catalog order.
func (ix *Index) Products() []Product {
	return ix.products
}
