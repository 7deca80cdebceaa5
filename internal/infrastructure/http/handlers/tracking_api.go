package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// TrackingHandlers handles the daily nutrition ledger endpoints
type TrackingHandlers struct {
	trackingService inbound.TrackingService
	logger          *zap.Logger
}

// NewTrackingHandlers creates new tracking handlers
func NewTrackingHandlers(trackingService inbound.TrackingService, logger *zap.Logger) *TrackingHandlers {
	return &TrackingHandlers{
		trackingService: trackingService,
		logger:          logger.Named("tracking-handlers"),
	}
}

type upsertTrackingRequest struct {
	Date          string   `json:"date" validate:"required"`
	Weight        *float64 `json:"weight"`
	CaloriesDelta float64  `json:"caloriesConsumed"`
	ProteinDelta  float64  `json:"proteinConsumed"`
}

// Upsert handles POST /api/v1/tracking
func (h *TrackingHandlers) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req upsertTrackingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	entry, err := h.trackingService.Upsert(r.Context(), inbound.UpsertTrackingCommand{
		UserID:        userID,
		Date:          date,
		Weight:        req.Weight,
		CaloriesDelta: req.CaloriesDelta,
		ProteinDelta:  req.ProteinDelta,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    entry,
		Message: "Daily tracking saved successfully",
	})
}

// Get handles GET /api/v1/tracking?date=YYYY-MM-DD
func (h *TrackingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	entry, err := h.trackingService.Get(r.Context(), userID, date)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: entry})
}

// Remove handles DELETE /api/v1/tracking?date=YYYY-MM-DD
func (h *TrackingHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.trackingService.Remove(r.Context(), userID, date); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Daily tracking removed successfully",
	})
}
