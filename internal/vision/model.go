package vision

import (
	"encoding/json"
	"os"

	"smartcart/internal/apperr"
)

// Item is one record of the alternatives inventory that gets embedded into
// the vector index.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Allergens    []string `json:"allergens"`
	Availability string   `json:"availability"`
}

func LoadItems(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "alternatives inventory not readable", err)
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "alternatives inventory is not valid JSON", err)
	}
	return items, nil
}
