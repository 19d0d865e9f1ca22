package search

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
)

// InMemoryIndex is a cosine-similarity index for tests and local runs
// without a vector backend.
type InMemoryIndex struct {
	mu      sync.Mutex
	vectors map[string]Vector
}

func NewInMemoryIndex() *InMemoryIndex {
	return &InMemoryIndex{vectors: make(map[string]Vector)}
}

func (ix *InMemoryIndex) Upsert(ctx context.Context, vectors []Vector) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, v := range vectors {
		ix.vectors[v.ID] = v
	}
	return nil
}

func (ix *InMemoryIndex) Query(ctx context.Context, vector []float64, filter Filter, topK int) ([]Match, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	matches := make([]Match, 0)
	for _, v := range ix.vectors {
		if !passes(v.Metadata, filter) {
			continue
		}
		matches = append(matches, Match{
			ID:       v.ID,
			Score:    cosine(vector, v.Values),
			Metadata: v.Metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func passes(metadata map[string]any, filter Filter) bool {
	if filter.Availability != "" {
		if avail, _ := metadata["availability"].(string); avail != filter.Availability {
			return false
		}
	}
	if filter.ExcludeAllergen != "" {
		if allergens, ok := metadata["allergens"].([]any); ok {
			for _, a := range allergens {
				if s, ok := a.(string); ok && strings.EqualFold(s, filter.ExcludeAllergen) {
					return false
				}
			}
		}
		if allergens, ok := metadata["allergens"].([]string); ok {
			for _, a := range allergens {
				if strings.EqualFold(a, filter.ExcludeAllergen) {
					return false
				}
			}
		}
	}
	return true
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
