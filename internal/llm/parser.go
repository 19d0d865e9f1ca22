package llm

import (
	"encoding/json"
	"strings"

	"smartcart/internal/apperr"
)

// CleanJSON strips the decoration models wrap around JSON output: a markdown
// code fence around the whole reply, or prose before/after the document.
// The result is best-effort; callers must still validate it.
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		text = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	if json.Valid([]byte(text)) {
		return text
	}

	// Fall back to the outermost {...} substring.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	return text
}

// DecodeDocument cleans a model reply and decodes it as a JSON object of
// unconstrained shape. Non-JSON replies surface as a parse failure, never as
// a silent default.
func DecodeDocument(text string) (map[string]any, error) {
	cleaned := CleanJSON(text)
	if cleaned == "" {
		return nil, apperr.New(apperr.Parse, "model returned an empty response")
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "model returned non-JSON output", err)
	}
	return doc, nil
}
