package cart

import (
	"encoding/json"
	"os"
	"strings"

	"smartcart/internal/apperr"
)

// SynonymTable maps a canonical allergy/restriction term to equivalent or
// related allergen terms.
type SynonymTable map[string][]string

func LoadSynonymTable(path string) (SynonymTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "allergen synonym table not readable", err)
	}
	var table SynonymTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "allergen synonym table is not valid JSON", err)
	}
	return table, nil
}

// Covers reports whether allergy is a known key whose synonym list contains
// allergen. Both sides are compared lower-cased.
func (t SynonymTable) Covers(allergy, allergen string) bool {
	for _, syn := range t[allergy] {
		if strings.ToLower(syn) == allergen {
			return true
		}
	}
	return false
}

type Substitution struct {
	SafeAlt string `json:"safeAlt"`
	Reason  string `json:"reason"`
}

// SubstitutionTable maps a lower-cased item name to its safe alternative.
// Lookup is exact-key only; fuzzy matching never applies on this side.
type SubstitutionTable map[string]Substitution

func LoadSubstitutionTable(path string) (SubstitutionTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "substitution table not readable", err)
	}
	var table SubstitutionTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "substitution table is not valid JSON", err)
	}
	return table, nil
}

func (t SubstitutionTable) Lookup(itemName string) (Substitution, bool) {
	sub, ok := t[strings.ToLower(itemName)]
	return sub, ok
}
