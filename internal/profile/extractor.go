package profile

import "strings"

// Extract collects allergy and preference tokens from a profile document of
// unknown shape. Every nested container is visited; a key matching
// "allergies" or "preferences" (case-insensitive) whose value is a list
// contributes its string elements lower-cased, with the literal " allergy"
// suffix stripped from allergy tokens. Malformed input yields empty sets,
// never an error.
func Extract(doc any) (allergies, preferences map[string]bool) {
	allergies = make(map[string]bool)
	preferences = make(map[string]bool)
	walk(doc, allergies, preferences)
	return allergies, preferences
}

func walk(node any, allergies, preferences map[string]bool) {
	switch v := node.(type) {
	case Document:
		walk(map[string]any(v), allergies, preferences)
	case map[string]any:
		for key, child := range v {
			if list, ok := child.([]any); ok {
				switch {
				case strings.EqualFold(key, "allergies"):
					for _, item := range list {
						if s, ok := item.(string); ok {
							token := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), " allergy", ""))
							if token != "" {
								allergies[token] = true
							}
						}
					}
				case strings.EqualFold(key, "preferences"):
					for _, item := range list {
						if s, ok := item.(string); ok {
							preferences[strings.ToLower(s)] = true
						}
					}
				}
			}
			walk(child, allergies, preferences)
		}
	case []any:
		for _, item := range v {
			walk(item, allergies, preferences)
		}
	}
}
