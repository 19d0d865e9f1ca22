package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smartcart/internal/catalog"
	"smartcart/internal/match"
	"smartcart/internal/profile"
)

func setupCartRouter(profiles profile.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	scorer := match.NewScorer(match.DefaultThreshold)
	repo := catalog.NewInMemoryRepository(
		catalog.Product{Name: "Peanut Butter", SKU: "P1", Price: 3.99, Allergens: []string{"peanuts"}},
		catalog.Product{Name: "Oat Milk", SKU: "P5", Price: 3.79},
	)
	index := catalog.NewIndex(repo, scorer)

	subs := SubstitutionTable{
		"peanut butter": {SafeAlt: "Sunflower Seed Butter", Reason: "Same texture, no peanut content."},
	}
	classifier := NewClassifier(index, SynonymTable{}, subs, scorer)
	handler := NewHandler(NewService(classifier, index), profiles)

	r.POST("/process-cart", handler.ProcessCart)
	r.POST("/scan-qr", handler.ScanSKU)

	return r
}

func TestProcessCartEndToEnd(t *testing.T) {
	router := setupCartRouter(profile.NewInMemoryRepository())

	body := bytes.NewBufferString(`{
		"shoppingList": ["Peanut Butter", {"name": "Oat Milk"}, 42],
		"profile": {"allergies": ["peanuts"]}
	}`)
	req, _ := http.NewRequest("POST", "/process-cart", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Cart []Entry `json:"cart"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	// The invalid element is skipped, not fatal.
	if len(resp.Cart) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Cart))
	}
	if resp.Cart[0].Status != StatusSubstituted {
		t.Fatalf("expected Substituted for peanut butter, got %s", resp.Cart[0].Status)
	}
	if resp.Cart[1].Status != StatusSafe {
		t.Fatalf("expected Safe for oat milk, got %s", resp.Cart[1].Status)
	}
}

func TestScanSKUWithoutProfile(t *testing.T) {
	router := setupCartRouter(profile.NewInMemoryRepository())

	body := bytes.NewBufferString(`{"sku": "P1"}`)
	req, _ := http.NewRequest("POST", "/scan-qr", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a stored profile, got %d", w.Code)
	}
}

func TestScanSKUFlagsAndSuggestsAlternatives(t *testing.T) {
	profiles := profile.NewInMemoryRepository()
	_ = profiles.Save(profile.Document{"allergies": []any{"peanuts"}})
	router := setupCartRouter(profiles)

	body := bytes.NewBufferString(`{"sku": "P1"}`)
	req, _ := http.NewRequest("POST", "/scan-qr", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result ScanResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.IsSafe {
		t.Fatalf("peanut butter must not be safe for a peanut allergy")
	}
	if len(result.FlaggedAllergens) != 1 || result.FlaggedAllergens[0] != "peanuts" {
		t.Fatalf("unexpected flagged allergens: %v", result.FlaggedAllergens)
	}
	if len(result.Alternatives) != 1 || result.Alternatives[0].SKU != "P5" {
		t.Fatalf("expected oat milk as the only safe alternative: %v", result.Alternatives)
	}
}

func TestScanUnknownSKU(t *testing.T) {
	profiles := profile.NewInMemoryRepository()
	_ = profiles.Save(profile.Document{"allergies": []any{}})
	router := setupCartRouter(profiles)

	body := bytes.NewBufferString(`{"sku": "P99"}`)
	req, _ := http.NewRequest("POST", "/scan-qr", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown SKU, got %d", w.Code)
	}
}
