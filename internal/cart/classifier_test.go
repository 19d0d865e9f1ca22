package cart

import (
	"strings"
	"testing"

	"smartcart/internal/catalog"
	"smartcart/internal/match"
)

func testClassifier() *Classifier {
	scorer := match.NewScorer(match.DefaultThreshold)
	repo := catalog.NewInMemoryRepository(
		catalog.Product{Name: "Peanut Butter", SKU: "P1", Price: 3.99, Allergens: []string{"peanuts"}},
		catalog.Product{Name: "Cheddar Cheese", SKU: "P6", Price: 5.29, Allergens: []string{"milk"}},
		catalog.Product{Name: "Organic Granola", SKU: "P11", Price: 6.49, Allergens: []string{"tree nuts"}},
	)
	index := catalog.NewIndex(repo, scorer)

	synonyms := SynonymTable{
		"dairy": {"milk", "lactose", "casein"},
	}
	subs := SubstitutionTable{
		"peanut butter": {SafeAlt: "Sunflower Seed Butter", Reason: "Same texture, no peanut content."},
	}

	return NewClassifier(index, synonyms, subs, scorer)
}

func set(tokens ...string) map[string]bool {
	s := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		s[t] = true
	}
	return s
}

func TestClassifyExactAllergenMatchThenSubstituted(t *testing.T) {
	c := testClassifier()

	entry := c.Classify("peanut butter", set("peanuts"), nil)

	if entry.Status != StatusSubstituted {
		t.Fatalf("expected Substituted, got %s", entry.Status)
	}
	if entry.SafeAlternative == nil || *entry.SafeAlternative != "Sunflower Seed Butter" {
		t.Fatalf("expected the table's alternative, got %v", entry.SafeAlternative)
	}
}

func TestClassifyRiskReasonMentionsAllergen(t *testing.T) {
	c := testClassifier()

	// Granola has no substitution entry, so Risk survives.
	entry := c.Classify("organic granola", set("tree nuts"), nil)

	if entry.Status != StatusRisk {
		t.Fatalf("expected Risk, got %s", entry.Status)
	}
	if !strings.Contains(entry.Reason, "tree nuts") {
		t.Fatalf("reason should mention the allergen: %q", entry.Reason)
	}
}

func TestClassifySynonymTableMatch(t *testing.T) {
	c := testClassifier()

	entry := c.Classify("cheddar cheese", set("dairy"), nil)

	if entry.Status != StatusRisk {
		t.Fatalf("expected Risk via synonym table, got %s", entry.Status)
	}
}

func TestClassifyFuzzyAllergenMatch(t *testing.T) {
	c := testClassifier()

	// "peanut" vs "peanuts" clears the similarity threshold without an
	// exact or synonym hit.
	entry := c.Classify("peanut butter", set("peanut"), nil)

	if entry.Status != StatusSubstituted {
		t.Fatalf("expected fuzzy match to flag and substitute, got %s", entry.Status)
	}
}

func TestClassifyPreferenceWarns(t *testing.T) {
	c := testClassifier()

	entry := c.Classify("organic granola", nil, set("organic"))

	if entry.Status != StatusWarn {
		t.Fatalf("expected Warn, got %s", entry.Status)
	}
}

func TestClassifyRiskBeatsPreference(t *testing.T) {
	c := testClassifier()

	entry := c.Classify("organic granola", set("tree nuts"), set("organic"))

	if entry.Status != StatusRisk {
		t.Fatalf("allergy risk must take priority over preference, got %s", entry.Status)
	}
}

func TestClassifyUnknownItemFailsOpen(t *testing.T) {
	c := testClassifier()

	// No catalog record means nothing to flag against; the item comes
	// back Safe.
	entry := c.Classify("dragonfruit salsa", set("peanuts"), set("organic"))

	if entry.Status != StatusSafe {
		t.Fatalf("unresolved item must classify Safe, got %s", entry.Status)
	}
}

func TestSubstituteRequiresExactKey(t *testing.T) {
	c := testClassifier()

	// "peanut buttr" still resolves to the product via fuzzy catalog
	// matching, and still flags Risk, but the substitution lookup is
	// exact-key only, so no upgrade happens.
	entry := c.Classify("peanut buttr", set("peanuts"), nil)

	if entry.Status != StatusRisk {
		t.Fatalf("expected Risk without substitution, got %s", entry.Status)
	}
	if entry.SafeAlternative != nil {
		t.Fatalf("no alternative expected, got %v", *entry.SafeAlternative)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := testClassifier()

	allergies := set("dairy", "peanuts", "tree nuts")
	first := c.Classify("cheddar cheese", allergies, nil)
	for i := 0; i < 10; i++ {
		again := c.Classify("cheddar cheese", allergies, nil)
		if again != first {
			t.Fatalf("classification varied across calls: %+v vs %+v", first, again)
		}
	}
}
