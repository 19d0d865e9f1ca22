package meal

import (
	"context"
	"testing"

	"smartcart/internal/catalog"
	"smartcart/internal/match"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return []float64{0.1}, f.err
}

func testIndex() *catalog.Index {
	repo := catalog.NewInMemoryRepository(
		catalog.Product{Name: "Brown Rice", SKU: "P8", Price: 3.19},
		catalog.Product{Name: "Oat Milk", SKU: "P5", Price: 3.79},
	)
	return catalog.NewIndex(repo, match.NewScorer(match.DefaultThreshold))
}

func TestGeneratePricesResolvableIngredients(t *testing.T) {
	client := &fakeLLM{reply: "```json\n" + `{
		"meal_name": "Veggie Rice Bowl",
		"ingredients": [
			{"name": "Brown Rice", "quantity": "2 cups"},
			{"name": "Dragonfruit Salsa", "quantity": "1 jar"}
		],
		"instructions": ["cook rice", "top with salsa"]
	}` + "\n```"}

	service := NewService(client, testIndex())

	result, err := service.Generate(context.Background(), Request{Diet: "vegetarian", Servings: 2})
	if err != nil {
		t.Fatal(err)
	}

	if result.MealName != "Veggie Rice Bowl" {
		t.Fatalf("unexpected meal: %q", result.MealName)
	}
	if len(result.Ingredients) != 2 {
		t.Fatalf("the plan must keep unresolvable ingredients: %v", result.Ingredients)
	}
	if len(result.Cart) != 1 || result.Cart[0].Name != "Brown Rice" {
		t.Fatalf("only catalog items belong in the cart: %v", result.Cart)
	}
	if result.Total != 3.19 {
		t.Fatalf("expected total 3.19, got %f", result.Total)
	}
}

func TestGenerateSurfacesUnusablePlan(t *testing.T) {
	service := NewService(&fakeLLM{reply: "no json here"}, testIndex())

	if _, err := service.Generate(context.Background(), Request{Diet: "vegan", Servings: 1}); err == nil {
		t.Fatalf("expected a parse failure")
	}
}
