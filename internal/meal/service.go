package meal

import (
	"context"
	"encoding/json"

	"smartcart/internal/apperr"
	"smartcart/internal/catalog"
	"smartcart/internal/llm"
)

type Service struct {
	llm   llm.Client
	index *catalog.Index
}

func NewService(client llm.Client, index *catalog.Index) *Service {
	return &Service{llm: client, index: index}
}

// Generate asks the model for a meal plan within the given constraints and
// prices the ingredients the catalog can resolve. Unresolvable ingredients
// stay in the plan but not in the cart.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	prompt := llm.BuildMealPrompt(req.Diet, req.Servings, req.Budget, req.Restrictions, req.TimeLimit)

	text, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &plan); err != nil {
		return nil, apperr.Wrap(apperr.Parse, "model returned an unusable meal plan", err)
	}

	result := &Result{Plan: plan, Cart: []PricedIngredient{}}
	for _, ing := range plan.Ingredients {
		if product, ok := s.index.Resolve(ing.Name); ok {
			result.Cart = append(result.Cart, PricedIngredient{Ingredient: ing, Price: product.Price})
			result.Total += product.Price
		}
	}

	return result, nil
}
