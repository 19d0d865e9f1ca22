package cart

// Status is the safety verdict for one shopping-list item.
type Status string

const (
	StatusSafe        Status = "Safe"
	StatusWarn        Status = "Warn"
	StatusRisk        Status = "Risk"
	StatusSubstituted Status = "Substituted"
)

// Entry is the per-item classification result. It exists only within one
// request; nothing here is persisted. Status Substituted implies a non-nil
// SafeAlternative.
type Entry struct {
	Original        string  `json:"original"`
	Status          Status  `json:"status"`
	SafeAlternative *string `json:"safeAlternative"`
	Reason          string  `json:"reason"`
}

// NormalizeNames accepts the loose shopping-list shapes clients send: plain
// strings or objects with a "name" field. Anything else is skipped.
func NormalizeNames(raw []any) []string {
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			names = append(names, v)
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}
