package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"smartcart/internal/apperr"
	"smartcart/internal/llm"
	"smartcart/internal/search"
	"smartcart/internal/storage"
)

// DefaultLatest is the placeholder before any image has been processed.
const DefaultLatest = "No image processed yet. Please upload an image first."

// Service detects allergens in a food image and enriches the answer with
// in-stock alternatives from the vector index. The index and uploader are
// optional; detection works without either.
type Service struct {
	llm     llm.Client
	index   search.Index
	storage storage.Uploader

	mu     sync.Mutex
	latest string
}

func NewService(client llm.Client, index search.Index, uploader storage.Uploader) *Service {
	return &Service{
		llm:     client,
		index:   index,
		storage: uploader,
		latest:  DefaultLatest,
	}
}

// Detect validates the upload, identifies allergens with a vision call,
// looks up alternatives per allergen, and asks the model for a combined
// summary. The result replaces the single latest-response slot.
func (s *Service) Detect(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", apperr.New(apperr.Validation, "Invalid file type. Please upload an image.")
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(imageData)); err != nil {
		return "", apperr.Wrap(apperr.Validation, "Could not process image file. It might be corrupted.", err)
	}

	// Audit copy; detection proceeds even if storage is down.
	if s.storage != nil {
		key := fmt.Sprintf("scans/%s", uuid.New().String())
		if _, err := s.storage.Upload(ctx, key, bytes.NewReader(imageData), mimeType); err != nil {
			log.Printf("vision: scan upload failed: %v", err)
		}
	}

	allergensText, err := s.llm.GenerateVision(ctx, llm.AllergenVisionPrompt, imageData, mimeType)
	if err != nil {
		return "", err
	}

	allergens := splitAllergens(allergensText)
	alternatives := s.alternativesFor(ctx, allergens)

	summary, err := s.llm.GenerateVision(
		ctx,
		llm.BuildAllergenSummaryPrompt(allergensText, alternatives),
		imageData,
		mimeType,
	)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.latest = summary
	s.mu.Unlock()

	return summary, nil
}

// Latest returns the most recent detection result.
func (s *Service) Latest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// alternativesFor is enrichment only: every failure degrades to "no
// alternatives found" rather than failing the request.
func (s *Service) alternativesFor(ctx context.Context, allergens []string) []string {
	if len(allergens) == 0 {
		return []string{"No specific allergens identified in the image."}
	}
	if s.index == nil {
		return []string{"No alternatives inventory configured."}
	}

	info := make([]string, 0, len(allergens))
	for _, allergen := range allergens {
		lines := s.queryAlternatives(ctx, allergen)
		if len(lines) == 0 {
			info = append(info, fmt.Sprintf("No in-stock alternatives found for '%s'.", allergen))
			continue
		}
		info = append(info, fmt.Sprintf(
			"For '%s' (identified as an allergen), consider these in-stock alternatives:\n%s",
			allergen, strings.Join(lines, "\n"),
		))
	}
	return info
}

func (s *Service) queryAlternatives(ctx context.Context, allergen string) []string {
	embedding, err := s.llm.EmbedText(ctx, "alternative to "+allergen)
	if err != nil {
		log.Printf("vision: embedding failed for %q: %v", allergen, err)
		return nil
	}

	matches, err := s.index.Query(ctx, embedding, search.Filter{
		Availability:    "in_stock",
		ExcludeAllergen: allergen,
	}, 5)
	if err != nil {
		log.Printf("vision: alternatives query failed for %q: %v", allergen, err)
		return nil
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		name, _ := m.Metadata["name"].(string)
		if name == "" {
			continue
		}
		description, _ := m.Metadata["description"].(string)
		lines = append(lines, fmt.Sprintf("- %s (%s). Contains: %s.",
			name, description, metadataAllergens(m.Metadata)))
	}
	return lines
}

func metadataAllergens(metadata map[string]any) string {
	switch v := metadata["allergens"].(type) {
	case []string:
		if len(v) > 0 {
			return strings.Join(v, ", ")
		}
	case []any:
		parts := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return "none"
}

func splitAllergens(text string) []string {
	parts := strings.Split(text, ",")
	allergens := make([]string, 0, len(parts))
	for _, p := range parts {
		if token := strings.ToLower(strings.TrimSpace(p)); token != "" {
			allergens = append(allergens, token)
		}
	}
	return allergens
}
