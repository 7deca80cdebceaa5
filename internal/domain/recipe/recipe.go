// Package recipe contains the types describing a model-generated recipe and
// the constraints fed to the generation step.
package recipe

// Generated is a structurally validated recipe returned by the generation
// call. All numeric fields are integers; a payload failing that is rejected
// at parse time, never silently defaulted.
type Generated struct {
	Name                string              `json:"name"`
	Servings            int                 `json:"servings"`
	TotalTime           int                 `json:"totalTime"`
	Ingredients         []Ingredient        `json:"ingredients"`
	Instructions        []string            `json:"instructions"`
	NutritionPerServing NutritionPerServing `json:"nutritionPerServing"`
	AdditionalNotes     string              `json:"additionalNotes"`
}

// Ingredient is one ingredient line of a generated recipe
type Ingredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// NutritionPerServing holds the per-serving macro estimate
type NutritionPerServing struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Constraints carries the caller's recipe request parameters. Optional text
// fields are rendered with explicit placeholders when absent.
type Constraints struct {
	Servings            int // defaults to 1 when <= 0
	Cuisine             string
	PrepTime            string
	KitchenEquipment    string
	MealType            string
	FlavorPreferences   string
	AdditionalNotes     string
	DietaryRestrictions []string
}
