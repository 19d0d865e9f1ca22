package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"smartcart/internal/apperr"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type GeminiClient struct {
	apiKey     string
	model      string
	embedModel string
	httpClient *http.Client
}

func NewGeminiClient() *GeminiClient {
	embedModel := os.Getenv("GEMINI_EMBED_MODEL")
	if embedModel == "" {
		embedModel = "embedding-001"
	}
	return &GeminiClient{
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      os.Getenv("GEMINI_MODEL"),
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, []geminiPart{{Text: prompt}})
}

func (g *GeminiClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return g.generate(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	})
}

func (g *GeminiClient) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if g.apiKey == "" {
		return "", apperr.New(apperr.Upstream, "missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", apperr.New(apperr.Upstream, "missing GEMINI_MODEL")
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, g.model, g.apiKey)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	raw, err := g.post(ctx, url, payload)
	if err != nil {
		return "", err
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", apperr.Wrap(apperr.Parse, "gemini response not decodable", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", apperr.New(apperr.Parse, "empty gemini response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiClient) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if g.apiKey == "" {
		return nil, apperr.New(apperr.Upstream, "missing GEMINI_API_KEY")
	}

	url := fmt.Sprintf("%s/%s:embedContent?key=%s", geminiBaseURL, g.embedModel, g.apiKey)

	payload := map[string]any{
		"content": map[string]any{
			"parts": []map[string]string{
				{"text": text},
			},
		},
	}

	raw, err := g.post(ctx, url, payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Embedding struct {
			Values []float64 `json:"values"`
		} `json:"embedding"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "gemini embedding response not decodable", err)
	}
	if len(result.Embedding.Values) == 0 {
		return nil, apperr.New(apperr.Parse, "empty gemini embedding")
	}

	return result.Embedding.Values, nil
}

func (g *GeminiClient) post(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "gemini call failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "gemini response not readable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("gemini api error: %s", string(raw)))
	}

	return raw, nil
}
