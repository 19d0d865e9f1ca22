package catalog

// Product is one catalog record. The catalog is loaded once at startup and
// never mutated afterwards.
type Product struct {
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	Price     float64  `json:"price"`
	Allergens []string `json:"allergens"`
	Tags      []string `json:"tags,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}
