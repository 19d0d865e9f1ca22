package store

import (
	"smartcart/internal/catalog"
)

// Suggestion is the full pickup recommendation for a cart.
type Suggestion struct {
	Store             *Details                   `json:"store"`
	PackedItems       []catalog.Product          `json:"packed_items"`
	MissingItems      []catalog.Product          `json:"missing_items"`
	NotFoundItems     []string                   `json:"not_found_items"`
	PickupCode        string                     `json:"pickup_code"`
	NearestForMissing map[string]NearestLocation `json:"nearest_stores_for_missing"`
}

// NearestLocation points at a fallback store for one missing item.
type NearestLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Service struct {
	index    *catalog.Index
	selector *Selector
}

func NewService(index *catalog.Index, selector *Selector) *Service {
	return &Service{index: index, selector: selector}
}

// Suggest resolves cart entries to SKUs (exact SKU, exact name, then fuzzy
// name), selects the best-covering store, and finds a fallback store per
// missing item. Entries that resolve to nothing are reported, not dropped
// silently, and never abort the rest.
func (s *Service) Suggest(items []string) *Suggestion {
	cartSKUs := make([]string, 0, len(items))
	notFound := make([]string, 0)

	for _, item := range items {
		if _, ok := s.index.ResolveSKU(item); ok {
			cartSKUs = append(cartSKUs, item)
			continue
		}
		if product, ok := s.index.Resolve(item); ok {
			cartSKUs = append(cartSKUs, product.SKU)
			continue
		}
		notFound = append(notFound, item)
	}

	selection := s.selector.Select(cartSKUs)

	suggestion := &Suggestion{
		PackedItems:       s.products(selection.Packed),
		MissingItems:      s.products(selection.Missing),
		NotFoundItems:     notFound,
		PickupCode:        NewPickupCode(),
		NearestForMissing: make(map[string]NearestLocation),
	}

	if selection.Store != nil {
		suggestion.Store = &Details{
			Name:    selection.Store.Name,
			Address: selection.Store.Address,
			Lat:     selection.Store.Lat,
			Lon:     selection.Store.Lon,
		}
		for _, missing := range suggestion.MissingItems {
			if nearest, ok := s.selector.NearestStocking(missing.SKU, selection.Store.Name); ok {
				suggestion.NearestForMissing[missing.Name] = NearestLocation{
					Name:    nearest.Name,
					Address: nearest.Address,
				}
			}
		}
	}

	return suggestion
}

func (s *Service) products(skus []string) []catalog.Product {
	products := make([]catalog.Product, 0, len(skus))
	for _, sku := range skus {
		if p, ok := s.index.ResolveSKU(sku); ok {
			products = append(products, *p)
		}
	}
	return products
}
