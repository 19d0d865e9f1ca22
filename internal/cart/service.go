package cart

import (
	"sort"
	"strings"

	"smartcart/internal/apperr"
	"smartcart/internal/catalog"
	"smartcart/internal/profile"
)

type Service struct {
	classifier *Classifier
	index      *catalog.Index
}

func NewService(classifier *Classifier, index *catalog.Index) *Service {
	return &Service{classifier: classifier, index: index}
}

// ProcessCart classifies every item independently. One item failing to
// resolve never aborts the rest; unresolved items simply come back Safe.
func (s *Service) ProcessCart(items []string, profileDoc any) []Entry {
	allergies, preferences := profile.Extract(profileDoc)

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, s.classifier.Classify(item, allergies, preferences))
	}
	return entries
}

type Alternative struct {
	Name   string   `json:"name"`
	SKU    string   `json:"sku"`
	Price  float64  `json:"price"`
	Tags   []string `json:"tags,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

type ScanResult struct {
	Product          catalog.Product `json:"product"`
	IsSafe           bool            `json:"is_safe"`
	FlaggedAllergens []string        `json:"flagged_allergens"`
	Alternatives     []Alternative   `json:"alternatives"`
}

// ScanSKU analyzes one product against the stored profile's top-level
// allergy set and collects up to two allergy-safe alternatives in catalog
// order.
func (s *Service) ScanSKU(sku string, doc profile.Document) (*ScanResult, error) {
	product, ok := s.index.ResolveSKU(sku)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Product not found for SKU")
	}

	allergies := topLevelSet(doc, "allergies")

	flagged := make([]string, 0)
	for _, allergen := range product.Allergens {
		if allergies[strings.ToLower(allergen)] {
			flagged = append(flagged, strings.ToLower(allergen))
		}
	}
	sort.Strings(flagged)

	alternatives := make([]Alternative, 0, 2)
	for _, alt := range s.index.Products() {
		if alt.SKU == product.SKU {
			continue
		}
		if anyAllergenIn(alt.Allergens, allergies) {
			continue
		}
		alternatives = append(alternatives, Alternative{
			Name:   alt.Name,
			SKU:    alt.SKU,
			Price:  alt.Price,
			Tags:   alt.Tags,
			Rating: alt.Rating,
		})
		if len(alternatives) >= 2 {
			break
		}
	}

	return &ScanResult{
		Product:          *product,
		IsSafe:           len(flagged) == 0,
		FlaggedAllergens: flagged,
		Alternatives:     alternatives,
	}, nil
}

func topLevelSet(doc profile.Document, key string) map[string]bool {
	set := make(map[string]bool)
	list, _ := doc[key].([]any)
	for _, item := range list {
		if s, ok := item.(string); ok {
			set[strings.ToLower(s)] = true
		}
	}
	return set
}

func anyAllergenIn(allergens []string, set map[string]bool) bool {
	for _, a := range allergens {
		if set[strings.ToLower(a)] {
			return true
		}
	}
	return false
}
