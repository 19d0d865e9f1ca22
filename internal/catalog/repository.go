package catalog

import (
	"encoding/json"
	"os"

	"smartcart/internal/apperr"
)

// Repository provides the product snapshot the index is built from.
type Repository interface {
	All() []Product
}

type FileRepository struct {
	products []Product
}

// NewFileRepository reads a JSON array of products once. The slice is
// read-only for the life of the process.
func NewFileRepository(path string) (*FileRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "product catalog not readable", err)
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "product catalog is not valid JSON", err)
	}

	return &FileRepository{products: products}, nil
}

func (r *FileRepository) All() []Product {
	return r.products
}

type InMemoryRepository struct {
	products []Product
}

func NewInMemoryRepository(products ...Product) *InMemoryRepository {
	return &InMemoryRepository{products: products}
}

func (r *InMemoryRepository) All() []Product {
	return r.products
}
