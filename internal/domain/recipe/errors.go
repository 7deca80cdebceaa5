package recipe

import "errors"

// Domain errors for recipe generation

var (
	ErrEmptyPantry       = errors.New("no pantry items found")
	ErrNoJSONObject      = errors.New("no JSON object found in generation output")
	ErrMissingField      = errors.New("required field missing from generated recipe")
	ErrWrongFieldShape   = errors.New("generated recipe field has the wrong shape")
	ErrEmptyIngredients  = errors.New("generated recipe has no ingredients")
	ErrEmptyInstructions = errors.New("generated recipe has no instructions")
)
