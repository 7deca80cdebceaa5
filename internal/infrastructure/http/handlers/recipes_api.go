package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/domain/recipe"
	"github.com/pantrychef/v2/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v2/internal/infrastructure/monitoring"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// RecipeHandlers handles recipe generation endpoints
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	metrics       *monitoring.Metrics
	logger        *zap.Logger
}

// NewRecipeHandlers creates new recipe handlers
func NewRecipeHandlers(recipeService inbound.RecipeService, metrics *monitoring.Metrics, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		metrics:       metrics,
		logger:        logger.Named("recipe-handlers"),
	}
}

type generateRecipeRequest struct {
	Servings            int      `json:"servings"`
	Cuisine             string   `json:"cuisine"`
	PrepTime            string   `json:"prepTime"`
	KitchenEquipment    string   `json:"kitchenEquipment"`
	MealType            string   `json:"mealType"`
	FlavorPreferences   string   `json:"flavorPreferences"`
	AdditionalNotes     string   `json:"additionalNotes"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// Generate handles POST /api/v1/recipes/generate
func (h *RecipeHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req generateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	start := time.Now()
	generated, err := h.recipeService.Generate(r.Context(), userID, recipe.Constraints{
		Servings:            req.Servings,
		Cuisine:             req.Cuisine,
		PrepTime:            req.PrepTime,
		KitchenEquipment:    req.KitchenEquipment,
		MealType:            req.MealType,
		FlavorPreferences:   req.FlavorPreferences,
		AdditionalNotes:     req.AdditionalNotes,
		DietaryRestrictions: req.DietaryRestrictions,
	})
	if err != nil {
		h.metrics.RecordGeneration(string(errors.GetCode(err)), time.Since(start))
		writeError(w, r, h.logger, err)
		return
	}
	h.metrics.RecordGeneration("success", time.Since(start))

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    generated,
		Message: "Recipe generated successfully",
	})
}
