package profile

import (
	"context"

	"smartcart/internal/llm"
)

type Service struct {
	llm  llm.Client
	repo Repository
}

func NewService(client llm.Client, repo Repository) *Service {
	return &Service{llm: client, repo: repo}
}

// ParseAndSave turns free text into a structured profile via the model and
// replaces the current slot with the result. When existing is non-nil the
// model is asked for an incremental update instead of a fresh profile.
func (s *Service) ParseAndSave(ctx context.Context, userInput string, existing Document) (Document, error) {
	prompt := llm.BuildProfilePrompt(userInput, existing)

	text, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := llm.DecodeDocument(text)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) Current() (Document, error) {
	return s.repo.Load()
}

func (s *Service) Clear() error {
	return s.repo.Delete()
}
