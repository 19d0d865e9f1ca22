package profile

import (
	"reflect"
	"testing"
)

func TestExtractTopLevel(t *testing.T) {
	doc := map[string]any{
		"allergies":   []any{"Peanuts", "Dairy Allergy"},
		"preferences": []any{"Organic", "budget"},
	}

	allergies, preferences := Extract(doc)

	wantAllergies := map[string]bool{"peanuts": true, "dairy": true}
	wantPreferences := map[string]bool{"organic": true, "budget": true}

	if !reflect.DeepEqual(allergies, wantAllergies) {
		t.Fatalf("allergies = %v, want %v", allergies, wantAllergies)
	}
	if !reflect.DeepEqual(preferences, wantPreferences) {
		t.Fatalf("preferences = %v, want %v", preferences, wantPreferences)
	}
}

func TestExtractIsDepthIndependent(t *testing.T) {
	shallow := map[string]any{
		"allergies":   []any{"peanuts"},
		"preferences": []any{"organic"},
	}
	deep := map[string]any{
		"user": map[string]any{
			"dietary": []any{
				map[string]any{
					"restrictions": map[string]any{
						"Allergies": []any{"peanuts"},
					},
				},
				map[string]any{
					"PREFERENCES": []any{"organic"},
				},
			},
		},
	}

	a1, p1 := Extract(shallow)
	a2, p2 := Extract(deep)

	if !reflect.DeepEqual(a1, a2) {
		t.Fatalf("allergy sets differ by nesting: %v vs %v", a1, a2)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("preference sets differ by nesting: %v vs %v", p1, p2)
	}
}

func TestExtractMalformedInputYieldsEmptySets(t *testing.T) {
	for _, doc := range []any{
		nil,
		"just a string",
		42,
		map[string]any{"allergies": "not a list"},
		map[string]any{"allergies": []any{7, true}},
	} {
		allergies, preferences := Extract(doc)
		if len(allergies) != 0 || len(preferences) != 0 {
			t.Fatalf("doc %v: expected empty sets, got %v / %v", doc, allergies, preferences)
		}
	}
}

func TestExtractAcceptsDocument(t *testing.T) {
	allergies, _ := Extract(Document{"allergies": []any{"peanuts"}})
	if !allergies["peanuts"] {
		t.Fatalf("expected peanuts, got %v", allergies)
	}
}

func TestExtractStripsAllergySuffix(t *testing.T) {
	allergies, _ := Extract(map[string]any{"allergies": []any{"Shellfish allergy"}})
	if !allergies["shellfish"] {
		t.Fatalf("expected bare token, got %v", allergies)
	}
}
