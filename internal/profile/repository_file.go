package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"smartcart/internal/apperr"
)

// FileRepository stores the profile as one JSON file. Writes go through a
// temp file and rename so readers never observe a partial document.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Save(doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "profile-*.json")
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

func (r *FileRepository) Load() (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "stored profile is not valid JSON", err)
	}
	return doc, nil
}

// Delete is idempotent; clearing an already-empty slot is not an error.
func (r *FileRepository) Delete() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
