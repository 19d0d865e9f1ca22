package search

import "context"

// Vector is one embedded record plus the metadata returned with matches.
type Vector struct {
	ID       string         `json:"id"`
	Values   []float64      `json:"values"`
	Metadata map[string]any `json:"metadata"`
}

// Match is one ranked query result.
type Match struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

// Filter narrows query results. Zero values mean no constraint.
type Filter struct {
	// Availability must equal this metadata value when set.
	Availability string
	// ExcludeAllergen drops records whose "allergens" metadata list
	// contains this term.
	ExcludeAllergen string
}

// Index is the similarity-search collaborator. It is an enrichment step
// only; nothing in the safety classifier depends on it.
type Index interface {
	Upsert(ctx context.Context, vectors []Vector) error
	Query(ctx context.Context, vector []float64, filter Filter, topK int) ([]Match, error)
}
