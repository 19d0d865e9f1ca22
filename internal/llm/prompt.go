package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

func BuildProfilePrompt(userInput string, existing map[string]any) string {
	var b strings.Builder

	b.WriteString(`You are an assistant that converts a user's free-form description of their
food preferences, allergies, and shopping habits into a structured JSON profile.

Return valid JSON only. All property names and string values must use double
quotes. No markdown, no explanations, no extra text.

Example output:
{
  "diet": ["vegetarian"],
  "allergies": ["peanuts"],
  "preferences": ["budget", "organic"],
  "shoppingFrequency": "weekly",
  "household": 2
}
`)

	if len(existing) > 0 {
		current, _ := json.Marshal(existing)
		b.WriteString("\nThe user already has this profile. Update it with the new input, keeping fields the input does not contradict:\n")
		b.Write(current)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nUser input: %q\n\nJSON profile:\n", userInput)
	return b.String()
}

func BuildMealPrompt(diet string, servings int, budget, restrictions, timeLimit string) string {
	return fmt.Sprintf(`Plan a %s dinner for %d under %s using only common grocery store
ingredients. Avoid %s. Must be cooked in under %s.
Respond ONLY with valid JSON:
{
  "meal_name": "...",
  "ingredients": [{"name": "...", "quantity": "..."}],
  "instructions": ["step1", "step2"]
}
`, diet, servings, budget, restrictions, timeLimit)
}

// AllergenVisionPrompt asks for a bare comma-separated list so the reply can
// be split without further parsing.
const AllergenVisionPrompt = "List out the potential allergens in the food shown in this image. " +
	"Be concise and list them clearly, separated by commas. " +
	"For example: 'gluten, dairy, nuts'."

func BuildAllergenSummaryPrompt(allergens string, alternatives []string) string {
	return fmt.Sprintf(`Based on the image, the identified allergens are: %s.

Here is information about potential in-stock alternatives from our store:
%s

Please provide a comprehensive response that lists the potential allergens in
the food shown in the image, and for each allergen, suggest alternative
ingredients or products from the provided in-stock list. If no suitable
in-stock alternative is found, suggest a general alternative. Be clear,
concise, and helpful.`, allergens, strings.Join(alternatives, "\n"))
}
