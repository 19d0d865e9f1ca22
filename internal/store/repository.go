package store

import (
	"encoding/json"
	"os"
	"sort"

	"smartcart/internal/apperr"
)

// Repository returns the store snapshot in lexicographic name order. The
// ordering is part of the contract: the selector depends on it for
// deterministic tie-breaks.
type Repository interface {
	All() []Store
}

type FileRepository struct {
	stores []Store
}

// NewFileRepository reads a JSON mapping of store name to
// {address, lat, lon, availableSKUs} once at startup.
func NewFileRepository(path string) (*FileRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "store data not readable", err)
	}

	var byName map[string]struct {
		Address       string   `json:"address"`
		Lat           float64  `json:"lat"`
		Lon           float64  `json:"lon"`
		AvailableSKUs []string `json:"availableSKUs"`
	}
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "store data is not valid JSON", err)
	}

	stores := make([]Store, 0, len(byName))
	for name, info := range byName {
		stores = append(stores, Store{
			Name:          name,
			Address:       info.Address,
			Lat:           info.Lat,
			Lon:           info.Lon,
			AvailableSKUs: info.AvailableSKUs,
		})
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })

	return &FileRepository{stores: stores}, nil
}

func (r *FileRepository) All() []Store {
	return r.stores
}

type InMemoryRepository struct {
	stores []Store
}

func NewInMemoryRepository(stores ...Store) *InMemoryRepository {
	sorted := make([]Store, len(stores))
	copy(sorted, stores)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &InMemoryRepository{stores: sorted}
}

func (r *InMemoryRepository) All() []Store {
	return r.stores
}
