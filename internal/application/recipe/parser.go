package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pantrychef/v2/internal/domain/recipe"
	"github.com/pantrychef/v2/pkg/errors"
)

// ParseRecipe decodes a generation response into a validated recipe.
//
// Models wrap their output in markdown fences or prose despite instructions,
// so the parser extracts the outermost JSON object before decoding. Failures
// split into two kinds: no decodable JSON or an absent required field is a
// parse error, a field that is present but has the wrong shape is a schema
// error. Nothing is silently defaulted.
func ParseRecipe(raw string) (*recipe.Generated, error) {
	payload := extractJSONObject(raw)
	if payload == "" {
		return nil, errors.NewParseError(recipe.ErrNoJSONObject.Error())
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("invalid JSON: %v", err))
	}

	out := &recipe.Generated{}
	var err error

	if out.Name, err = requireString(obj, "name"); err != nil {
		return nil, err
	}
	if out.Servings, err = requireInt(obj, "servings"); err != nil {
		return nil, err
	}
	if out.TotalTime, err = requireInt(obj, "totalTime"); err != nil {
		return nil, err
	}
	if out.Ingredients, err = parseIngredients(obj); err != nil {
		return nil, err
	}
	if out.Instructions, err = parseInstructions(obj); err != nil {
		return nil, err
	}
	if out.NutritionPerServing, err = parseNutrition(obj); err != nil {
		return nil, err
	}

	// additionalNotes is the one optional field
	if v, ok := obj["additionalNotes"]; ok {
		notes, ok := v.(string)
		if !ok {
			return nil, errors.NewSchemaError("additionalNotes", "must be a string")
		}
		out.AdditionalNotes = notes
	}

	if len(out.Ingredients) == 0 {
		return nil, errors.NewSchemaError("ingredients", recipe.ErrEmptyIngredients.Error())
	}
	if len(out.Instructions) == 0 {
		return nil, errors.NewSchemaError("instructions", recipe.ErrEmptyInstructions.Error())
	}

	return out, nil
}

// extractJSONObject strips code fences and surrounding prose, returning the
// outermost {...} block or "".
func extractJSONObject(raw string) string {
	cleaned := raw
	if i := strings.Index(cleaned, "```"); i >= 0 {
		cleaned = cleaned[i+3:]
		cleaned = strings.TrimPrefix(cleaned, "json")
		if j := strings.Index(cleaned, "```"); j >= 0 {
			cleaned = cleaned[:j]
		}
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return ""
	}
	return cleaned[start : end+1]
}

func requireString(obj map[string]any, field string) (string, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return "", errors.NewParseError(fmt.Sprintf("missing required field %q", field))
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", errors.NewSchemaError(field, "must be a non-empty string")
	}
	return s, nil
}

func requireInt(obj map[string]any, field string) (int, error) {
	v, ok := obj[field]
	if !ok || v == nil {
		return 0, errors.NewParseError(fmt.Sprintf("missing required field %q", field))
	}
	return asInt(v, field)
}

// asInt accepts only whole JSON numbers. 12.5 is a schema violation, not
// something to round.
func asInt(v any, field string) (int, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, errors.NewSchemaError(field, "must be an integer")
	}
	n, err := num.Int64()
	if err != nil {
		return 0, errors.NewSchemaError(field, "must be an integer")
	}
	return int(n), nil
}

func parseIngredients(obj map[string]any) ([]recipe.Ingredient, error) {
	v, ok := obj["ingredients"]
	if !ok || v == nil {
		return nil, errors.NewParseError(`missing required field "ingredients"`)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.NewSchemaError("ingredients", "must be an array")
	}

	out := make([]recipe.Ingredient, 0, len(list))
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.NewSchemaError("ingredients", fmt.Sprintf("entry %d must be an object", i))
		}
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return nil, errors.NewSchemaError("ingredients", fmt.Sprintf("entry %d needs a name", i))
		}
		qty, err := asInt(m["quantity"], "ingredients")
		if err != nil {
			return nil, err
		}
		unit, _ := m["unit"].(string)
		out = append(out, recipe.Ingredient{Name: name, Quantity: qty, Unit: unit})
	}
	return out, nil
}

// parseInstructions accepts both the schema's {"step": ...} objects and bare
// strings, which smaller models emit despite the example.
func parseInstructions(obj map[string]any) ([]string, error) {
	v, ok := obj["instructions"]
	if !ok || v == nil {
		return nil, errors.NewParseError(`missing required field "instructions"`)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.NewSchemaError("instructions", "must be an array")
	}

	out := make([]string, 0, len(list))
	for i, entry := range list {
		switch step := entry.(type) {
		case string:
			out = append(out, step)
		case map[string]any:
			text, ok := step["step"].(string)
			if !ok {
				return nil, errors.NewSchemaError("instructions", fmt.Sprintf("entry %d needs a step string", i))
			}
			out = append(out, text)
		default:
			return nil, errors.NewSchemaError("instructions", fmt.Sprintf("entry %d has an unsupported shape", i))
		}
	}
	return out, nil
}

func parseNutrition(obj map[string]any) (recipe.NutritionPerServing, error) {
	var n recipe.NutritionPerServing

	v, ok := obj["nutritionPerServing"]
	if !ok || v == nil {
		return n, errors.NewParseError(`missing required field "nutritionPerServing"`)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return n, errors.NewSchemaError("nutritionPerServing", "must be an object")
	}

	var err error
	if n.Calories, err = asInt(m["calories"], "nutritionPerServing.calories"); err != nil {
		return n, err
	}
	if n.Protein, err = asInt(m["protein"], "nutritionPerServing.protein"); err != nil {
		return n, err
	}
	if n.Carbs, err = asInt(m["carbs"], "nutritionPerServing.carbs"); err != nil {
		return n, err
	}
	if n.Fat, err = asInt(m["fat"], "nutritionPerServing.fat"); err != nil {
		return n, err
	}
	return n, nil
}
