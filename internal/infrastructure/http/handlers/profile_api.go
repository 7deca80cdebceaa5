package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// ProfileHandlers handles the authenticated user's profile. All identity
// comes from the access token; there is no user ID in the request surface.
type ProfileHandlers struct {
	userService inbound.UserService
	logger      *zap.Logger
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(userService inbound.UserService, logger *zap.Logger) *ProfileHandlers {
	return &ProfileHandlers{
		userService: userService,
		logger:      logger.Named("profile-handlers"),
	}
}

type updateProfileRequest struct {
	FirstName           *string     `json:"firstName"`
	LastName            *string     `json:"lastName"`
	Age                 *int        `json:"age"`
	Weight              *float64    `json:"weight"`
	HeightFeet          *float64    `json:"heightFeet"`
	HeightInches        *float64    `json:"heightInches"`
	Calories            *float64    `json:"calories"`
	Protein             *float64    `json:"protein"`
	CaloriesRange       *[2]float64 `json:"caloriesRange"`
	ProteinRange        *[2]float64 `json:"proteinRange"`
	DietaryRestrictions *[]string   `json:"dietaryRestrictions"`
	FoodPreferences     *[]string   `json:"foodPreferences"`
	Goal                *string     `json:"goal"`
	Gender              *string     `json:"gender"`
	ActivityLevel       *string     `json:"activityLevel"`
	System              *string     `json:"system"`
	WeightUnit          *string     `json:"weightUnit"`
	Challenge           *string     `json:"challenge"`
}

// Get handles GET /api/v1/profile
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	dto, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.userService.UpdateProfile(r.Context(), userID, inbound.UpdateProfileCommand{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Age:                 req.Age,
		Weight:              req.Weight,
		HeightFeet:          req.HeightFeet,
		HeightInches:        req.HeightInches,
		Calories:            req.Calories,
		Protein:             req.Protein,
		CaloriesRange:       req.CaloriesRange,
		ProteinRange:        req.ProteinRange,
		DietaryRestrictions: req.DietaryRestrictions,
		FoodPreferences:     req.FoodPreferences,
		Goal:                req.Goal,
		Gender:              req.Gender,
		ActivityLevel:       req.ActivityLevel,
		System:              req.System,
		WeightUnit:          req.WeightUnit,
		Challenge:           req.Challenge,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Profile updated successfully",
	})
}

// List handles GET /api/v1/users
func (h *ProfileHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: users})
}

// Delete handles DELETE /api/v1/profile
func (h *ProfileHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}
