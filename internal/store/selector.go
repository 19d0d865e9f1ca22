package store

// Selection partitions the resolved cart SKUs for the chosen store:
// Packed ∪ Missing equals the input set and the two are disjoint.
type Selection struct {
	Store   *Store
	Packed  []string
	Missing []string
}

type Selector struct {
	repo Repository
}

func NewSelector(repo Repository) *Selector {
	return &Selector{repo: repo}
}

// Select picks the store with the strictly greatest in-stock coverage of the
// cart. Stores are scanned in lexicographic name order and a later store must
// strictly beat the current best, so ties resolve to the lexicographically
// first store and selection is idempotent. A store is chosen even when it
// covers nothing, as long as any store exists.
func (s *Selector) Select(cartSKUs []string) Selection {
	var best *Store
	bestCount := -1
	var packed []string

	for _, candidate := range s.repo.All() {
		candidate := candidate
		available := skuSet(candidate.AvailableSKUs)
		packedHere := make([]string, 0, len(cartSKUs))
		for _, sku := range cartSKUs {
			if available[sku] {
				packedHere = append(packedHere, sku)
			}
		}
		if len(packedHere) > bestCount {
			best = &candidate
			bestCount = len(packedHere)
			packed = packedHere
		}
	}

	if best == nil {
		return Selection{Missing: append([]string(nil), cartSKUs...)}
	}

	available := skuSet(best.AvailableSKUs)
	missing := make([]string, 0)
	for _, sku := range cartSKUs {
		if !available[sku] {
			missing = append(missing, sku)
		}
	}

	return Selection{Store: best, Packed: packed, Missing: missing}
}

// NearestStocking finds the first other store, in lexicographic name order,
// that stocks the SKU. Coordinates are carried for clients but not used to
// rank fallbacks.
func (s *Selector) NearestStocking(sku string, excludeName string) (*Store, bool) {
	for _, candidate := range s.repo.All() {
		if candidate.Name == excludeName {
			continue
		}
		if skuSet(candidate.AvailableSKUs)[sku] {
			c := candidate
			return &c, true
		}
	}
	return nil, false
}

func skuSet(skus []string) map[string]bool {
	set := make(map[string]bool, len(skus))
	for _, sku := range skus {
		set[sku] = true
	}
	return set
}
