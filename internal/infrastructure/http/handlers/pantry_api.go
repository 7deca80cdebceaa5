package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// PantryHandlers handles pantry inventory endpoints
type PantryHandlers struct {
	pantryService inbound.PantryService
	logger        *zap.Logger
}

// NewPantryHandlers creates new pantry handlers
func NewPantryHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		pantryService: pantryService,
		logger:        logger.Named("pantry-handlers"),
	}
}

type pantryItemRequest struct {
	Name          string `json:"name" validate:"required"`
	Quantity      string `json:"quantity" validate:"required"`
	Unit          string `json:"unit" validate:"required"`
	ExpiresInDays string `json:"expiresInDays"`
}

func (req pantryItemRequest) toCommand() inbound.PantryItemCommand {
	return inbound.PantryItemCommand{
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		ExpiresInDays: req.ExpiresInDays,
	}
}

// List handles GET /api/v1/pantry
func (h *PantryHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	items, err := h.pantryService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Add handles POST /api/v1/pantry
func (h *PantryHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req pantryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.pantryService.Add(r.Context(), userID, req.toCommand())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    items,
		Message: "Pantry item added successfully",
	})
}

// Upsert handles PUT /api/v1/pantry
func (h *PantryHandlers) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req pantryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.pantryService.UpsertByName(r.Context(), userID, req.toCommand())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Pantry item saved successfully",
	})
}

// Remove handles DELETE /api/v1/pantry/{name}
func (h *PantryHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		writeError(w, r, h.logger, errors.NewValidationError("item name is required"))
		return
	}

	items, err := h.pantryService.Remove(r.Context(), userID, name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Message: "Pantry item removed successfully",
	})
}
