package recipe

import (
	"fmt"
	"strings"

	"github.com/pantrychef/v2/internal/domain/pantry"
	"github.com/pantrychef/v2/internal/domain/recipe"
)

// BuildPrompt renders the single-turn generation prompt from the user's pantry
// and the request constraints. Expired items stay in the list; the model is
// instructed to skip them, keeping expiry advisory rather than a hard filter.
func BuildPrompt(items []pantry.Item, constraints recipe.Constraints) (string, error) {
	if len(items) == 0 {
		return "", recipe.ErrEmptyPantry
	}

	servings := constraints.Servings
	if servings <= 0 {
		servings = 1
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a recipe in JSON format for %d servings, using a minimal selection of these ingredients to make a filling meal: %s.\n",
		servings, strings.Join(names, ", "))
	b.WriteString("Use as few ingredients as possible while still creating a satisfying dish.\n")
	b.WriteString("Prioritize ingredients closest to expiring, but don't use any that have already expired.\n")
	fmt.Fprintf(&b, "Consider these dietary restrictions: %s.\n", strings.Join(constraints.DietaryRestrictions, ", "))
	b.WriteString("Additional parameters to consider:\n")
	fmt.Fprintf(&b, "- Cuisine preference: %s\n", orDefault(constraints.Cuisine, "None"))
	fmt.Fprintf(&b, "- Preparation time: %s\n", orDefault(constraints.PrepTime, "No preference"))
	fmt.Fprintf(&b, "- Kitchen equipment limitations: %s\n", orDefault(constraints.KitchenEquipment, "None"))
	fmt.Fprintf(&b, "- Meal type: %s\n", orDefault(constraints.MealType, "Any"))
	fmt.Fprintf(&b, "- Flavor preferences: %s\n", orDefault(constraints.FlavorPreferences, "None"))
	fmt.Fprintf(&b, "- Additional notes: %s\n", orDefault(constraints.AdditionalNotes, "None"))
	b.WriteString("\n")
	b.WriteString(`IMPORTANT: Use EXACTLY the same names and same quantity unit for ingredients as provided in the pantry list. Do not modify, expand, or specify further details for ingredient names. For example, if "Chicken Thighs" is in the pantry, use "Chicken Thighs" in the recipe, not "Boneless Chicken Thighs" or any other variation. And if the pantry list specifies "200 g Chicken Thighs", use "200 g Chicken Thighs" in the recipe, not "2 pieces Chicken Thighs" or any other variation.`)
	b.WriteString("\n\nThe JSON should strictly adhere to this structure:\n")
	fmt.Fprintf(&b, `{
  "name": "Recipe Name",
  "servings": %d,
  "totalTime": 30,
  "ingredients": [
    { "name": "Ingredient 1", "quantity": 1, "unit": "cup" },
    { "name": "Ingredient 2", "quantity": 200, "unit": "g" }
  ],
  "instructions": [
    { "step": "Detailed instruction for step 1." },
    { "step": "Detailed instruction for step 2." }
  ],
  "nutritionPerServing": {
    "calories": 300,
    "protein": 20,
    "carbs": 30,
    "fat": 10
  },
  "additionalNotes": "Any additional notes"
}
`, servings)
	b.WriteString("Ensure all numeric values are integers.\n")
	b.WriteString("Provide accurate estimates for the nutritional information based on the ingredients and serving size.\n")
	b.WriteString("For any ingredient, specify the quantity consistently either in grams (e.g., 200 g chicken thighs) or in pieces (e.g., 2 pieces chicken thighs). Convert all quantities to either grams or pieces depending on the context of the recipe.\n")
	b.WriteString("Return only the JSON object, with no additional text before or after.\n")
	b.WriteString("Ensure the JSON is valid and can be parsed without errors.\n")

	return b.String(), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
