package meal

// Request carries the meal-plan constraints from the client.
type Request struct {
	Diet         string `json:"diet"`
	Servings     int    `json:"servings"`
	Budget       string `json:"budget"`
	Restrictions string `json:"restrictions"`
	TimeLimit    string `json:"time_limit"`
}

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Plan is the model's meal plan, decoded from its strict-JSON reply.
type Plan struct {
	MealName     string       `json:"meal_name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

type PricedIngredient struct {
	Ingredient
	Price float64 `json:"price"`
}

// Result is the plan plus the catalog-priced subset of its ingredients.
type Result struct {
	Plan
	Cart  []PricedIngredient `json:"cart"`
	Total float64            `json:"total"`
}
