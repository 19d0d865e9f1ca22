package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smartcart/internal/apperr"
)

// RESTIndex talks to a hosted vector index over its HTTP API.
type RESTIndex struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTIndex(baseURL, apiKey string) *RESTIndex {
	return &RESTIndex{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *RESTIndex) Upsert(ctx context.Context, vectors []Vector) error {
	payload := map[string]any{"vectors": vectors}
	_, err := r.post(ctx, "/vectors/upsert", payload)
	return err
}

func (r *RESTIndex) Query(ctx context.Context, vector []float64, filter Filter, topK int) ([]Match, error) {
	payload := map[string]any{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	if f := encodeFilter(filter); len(f) > 0 {
		payload["filter"] = f
	}

	raw, err := r.post(ctx, "/query", payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Matches []Match `json:"matches"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "vector index response not decodable", err)
	}
	return result.Matches, nil
}

func encodeFilter(filter Filter) map[string]any {
	f := map[string]any{}
	if filter.Availability != "" {
		f["availability"] = map[string]any{"$eq": filter.Availability}
	}
	if filter.ExcludeAllergen != "" {
		f["allergens"] = map[string]any{"$nin": []string{filter.ExcludeAllergen}}
	}
	return f
}

func (r *RESTIndex) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Api-Key", r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "vector index call failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "vector index response not readable", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("vector index error: %s", string(raw)))
	}

	return raw, nil
}
