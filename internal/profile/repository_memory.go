package profile

import "sync"

type InMemoryRepository struct {
	mu  sync.Mutex
	doc Document
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
	return nil
}

func (r *InMemoryRepository) Load() (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		return nil, ErrNoProfile
	}
	return r.doc, nil
}

func (r *InMemoryRepository) Delete() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = nil
	return nil
}
