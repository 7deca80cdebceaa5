package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/v2/pkg/errors"
)

const validPayload = `{
  "name": "Chicken Fried Rice",
  "servings": 2,
  "totalTime": 30,
  "ingredients": [
    { "name": "Chicken Breast", "quantity": 300, "unit": "g" },
    { "name": "Rice", "quantity": 2, "unit": "Cup" }
  ],
  "instructions": [
    { "step": "Cook the rice." },
    { "step": "Fry the chicken and combine." }
  ],
  "nutritionPerServing": {
    "calories": 450,
    "protein": 38,
    "carbs": 52,
    "fat": 9
  },
  "additionalNotes": "Season to taste."
}`

func TestParseRecipe_ValidPayload(t *testing.T) {
	got, err := ParseRecipe(validPayload)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Fried Rice", got.Name)
	assert.Equal(t, 2, got.Servings)
	assert.Equal(t, 30, got.TotalTime)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, 300, got.Ingredients[0].Quantity)
	require.Len(t, got.Instructions, 2)
	assert.Equal(t, "Cook the rice.", got.Instructions[0])
	assert.Equal(t, 38, got.NutritionPerServing.Protein)
	assert.Equal(t, "Season to taste.", got.AdditionalNotes)
}

func TestParseRecipe_StripsMarkdownFence(t *testing.T) {
	raw := "Here is your recipe:\n```json\n" + validPayload + "\n```\nEnjoy!"

	got, err := ParseRecipe(raw)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Fried Rice", got.Name)
}

func TestParseRecipe_ExtractsObjectFromProse(t *testing.T) {
	raw := "Sure! " + validPayload + " Let me know if you want variations."

	got, err := ParseRecipe(raw)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Fried Rice", got.Name)
}

func TestParseRecipe_PlainStringInstructions(t *testing.T) {
	raw := `{
  "name": "Toast",
  "servings": 1,
  "totalTime": 5,
  "ingredients": [{ "name": "Bread", "quantity": 2, "unit": "Slice" }],
  "instructions": ["Toast the bread."],
  "nutritionPerServing": { "calories": 150, "protein": 5, "carbs": 28, "fat": 2 }
}`

	got, err := ParseRecipe(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Toast the bread."}, got.Instructions)
	assert.Empty(t, got.AdditionalNotes)
}

func TestParseRecipe_NoJSONIsParseError(t *testing.T) {
	_, err := ParseRecipe("I'm sorry, I can't produce a recipe right now.")
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestParseRecipe_TruncatedJSONIsParseError(t *testing.T) {
	_, err := ParseRecipe(`{"name": "Soup", "servings": 2,`)
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestParseRecipe_MissingFieldIsParseError(t *testing.T) {
	raw := `{
  "name": "Soup",
  "servings": 2,
  "totalTime": 20,
  "instructions": ["Simmer."],
  "nutritionPerServing": { "calories": 100, "protein": 4, "carbs": 12, "fat": 3 }
}`

	_, err := ParseRecipe(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestParseRecipe_FractionalNumberIsSchemaError(t *testing.T) {
	raw := `{
  "name": "Soup",
  "servings": 2,
  "totalTime": 22.5,
  "ingredients": [{ "name": "Lentils", "quantity": 200, "unit": "g" }],
  "instructions": ["Simmer."],
  "nutritionPerServing": { "calories": 100, "protein": 4, "carbs": 12, "fat": 3 }
}`

	_, err := ParseRecipe(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
}

func TestParseRecipe_StringServingsIsSchemaError(t *testing.T) {
	raw := `{
  "name": "Soup",
  "servings": "two",
  "totalTime": 20,
  "ingredients": [{ "name": "Lentils", "quantity": 200, "unit": "g" }],
  "instructions": ["Simmer."],
  "nutritionPerServing": { "calories": 100, "protein": 4, "carbs": 12, "fat": 3 }
}`

	_, err := ParseRecipe(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
}

func TestParseRecipe_NonObjectNutritionIsSchemaError(t *testing.T) {
	raw := `{
  "name": "Soup",
  "servings": 2,
  "totalTime": 20,
  "ingredients": [{ "name": "Lentils", "quantity": 200, "unit": "g" }],
  "instructions": ["Simmer."],
  "nutritionPerServing": "about 100 calories"
}`

	_, err := ParseRecipe(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
}

func TestParseRecipe_EmptyIngredientsIsSchemaError(t *testing.T) {
	raw := `{
  "name": "Air",
  "servings": 1,
  "totalTime": 0,
  "ingredients": [],
  "instructions": ["Breathe."],
  "nutritionPerServing": { "calories": 0, "protein": 0, "carbs": 0, "fat": 0 }
}`

	_, err := ParseRecipe(raw)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaError, errors.GetCode(err))
}
