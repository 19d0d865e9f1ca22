package cart

import (
	"fmt"
	"sort"
	"strings"

	"smartcart/internal/catalog"
	"smartcart/internal/match"
)

// Classifier decides the safety status of a shopping-list item against a
// profile. It is a pure function of (item, catalog snapshot, profile sets,
// tables); no state is carried across calls.
type Classifier struct {
	index    *catalog.Index
	synonyms SynonymTable
	subs     SubstitutionTable
	scorer   *match.Scorer
}

func NewClassifier(index *catalog.Index, synonyms SynonymTable, subs SubstitutionTable, scorer *match.Scorer) *Classifier {
	return &Classifier{index: index, synonyms: synonyms, subs: subs, scorer: scorer}
}

// Classify resolves the item and applies, in priority order: allergy risk,
// preference warning, safe default. Items the catalog cannot resolve come
// back Safe: with no record there is nothing to flag against.
//
// Profile sets are iterated in sorted order so the first-match-wins rule is
// deterministic.
func (c *Classifier) Classify(item string, allergies, preferences map[string]bool) Entry {
	entry := Entry{Original: item, Status: StatusSafe}

	itemLower := strings.ToLower(item)
	product, ok := c.index.Resolve(item)
	if !ok {
		return entry
	}

	for _, allergy := range sortedKeys(allergies) {
		for _, allergen := range product.Allergens {
			allergenLower := strings.ToLower(allergen)
			if allergy == allergenLower ||
				c.synonyms.Covers(allergy, allergenLower) ||
				c.scorer.Match(allergy, allergenLower) {
				entry.Status = StatusRisk
				entry.Reason = fmt.Sprintf("Contains %s, which matches your allergy or restriction: %s.", allergen, allergy)
				break
			}
		}
		if entry.Status == StatusRisk {
			break
		}
	}

	if entry.Status != StatusRisk {
		for _, pref := range sortedKeys(preferences) {
			if prefHits(pref, product.Allergens, itemLower) {
				entry.Status = StatusWarn
				entry.Reason = fmt.Sprintf("You said you dislike or want to avoid %s.", item)
				break
			}
		}
	}

	// Substitution applies only to Risk, and only on an exact lower-cased
	// key. No fuzzy matching on this side.
	if entry.Status == StatusRisk {
		if sub, ok := c.subs.Lookup(itemLower); ok {
			alt := sub.SafeAlt
			entry.Status = StatusSubstituted
			entry.SafeAlternative = &alt
			entry.Reason = sub.Reason
		}
	}

	return entry
}

func prefHits(pref string, allergens []string, itemLower string) bool {
	if strings.Contains(itemLower, pref) {
		return true
	}
	for _, allergen := range allergens {
		if strings.Contains(strings.ToLower(allergen), pref) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
