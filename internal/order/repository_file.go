package order

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"smartcart/internal/apperr"
)

// FileRepository appends orders to a JSON array file. Appends rewrite the
// whole document through a temp file and rename, so a crash mid-write never
// leaves a truncated log.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Append(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.read()
	if err != nil {
		return err
	}
	orders = append(orders, o)

	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "orders-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

func (r *FileRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *FileRepository) read() ([]Order, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "order log is not valid JSON", err)
	}
	return orders, nil
}
