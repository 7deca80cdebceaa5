// Package tracking provides the application layer for the daily nutrition
// ledger: idempotent per-calendar-day upsert, read and delete.
package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v2/internal/domain/tracking"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/internal/ports/outbound"
	"github.com/pantrychef/v2/pkg/errors"
	"go.uber.org/zap"
)

// Service implements the ledger use cases
type Service struct {
	userRepo outbound.UserRepository
	logger   *zap.Logger
}

// NewService creates a new tracking service
func NewService(userRepo outbound.UserRepository, logger *zap.Logger) inbound.TrackingService {
	return &Service{
		userRepo: userRepo,
		logger:   logger.Named("tracking-service"),
	}
}

// Upsert creates or merges the ledger entry for the command's calendar day.
// An existing entry accumulates the consumption deltas and overwrites weight
// when provided; a fresh entry snapshots the user's current targets.
func (s *Service) Upsert(ctx context.Context, cmd inbound.UpsertTrackingCommand) (*inbound.TrackingEntryDTO, error) {
	if cmd.UserID == uuid.Nil {
		return nil, errors.NewValidationError("userId is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError(tracking.ErrDateRequired.Error())
	}
	if cmd.CaloriesDelta < 0 || cmd.ProteinDelta < 0 {
		return nil, errors.NewValidationError(tracking.ErrNegativeDelta.Error())
	}
	if cmd.Weight != nil && *cmd.Weight <= 0 {
		return nil, errors.NewValidationError(tracking.ErrInvalidWeight.Error())
	}

	u, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError(cmd.UserID.String())
	}

	day := tracking.NormalizeDate(cmd.Date)

	if idx, ok := u.FindTracking(day); ok {
		u.DailyTracking[idx].ApplyDelta(cmd.Weight, cmd.CaloriesDelta, cmd.ProteinDelta)
	} else {
		entry := tracking.NewEntry(day, cmd.Weight, cmd.CaloriesDelta, cmd.ProteinDelta, u.Calories, u.Protein)
		u.DailyTracking = append(u.DailyTracking, entry)
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("save daily tracking", err)
	}

	idx, _ := u.FindTracking(day)
	dto := entryToDTO(u.DailyTracking[idx])

	s.logger.Info("Daily tracking upserted",
		zap.String("user_id", cmd.UserID.String()),
		zap.Time("date", day),
		zap.Float64("calories_consumed", dto.CaloriesConsumed),
		zap.Float64("protein_consumed", dto.ProteinConsumed),
	)

	return &dto, nil
}

// Get returns the entry for an exact calendar-date match
func (s *Service) Get(ctx context.Context, userID uuid.UUID, date time.Time) (*inbound.TrackingEntryDTO, error) {
	if userID == uuid.Nil {
		return nil, errors.NewValidationError("userId is required")
	}
	if date.IsZero() {
		return nil, errors.NewValidationError(tracking.ErrDateRequired.Error())
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	idx, ok := u.FindTracking(date)
	if !ok {
		return nil, errors.NewEntryNotFoundError(tracking.NormalizeDate(date).Format("2006-01-02"))
	}

	dto := entryToDTO(u.DailyTracking[idx])
	return &dto, nil
}

// Remove deletes every entry on the given calendar day. Removing a date with
// no entry succeeds without changing the ledger.
func (s *Service) Remove(ctx context.Context, userID uuid.UUID, date time.Time) error {
	if userID == uuid.Nil {
		return errors.NewValidationError("userId is required")
	}
	if date.IsZero() {
		return errors.NewValidationError(tracking.ErrDateRequired.Error())
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.NewDatabaseError("find user", err)
	}
	if u == nil {
		return errors.NewUserNotFoundError(userID.String())
	}

	before := len(u.DailyTracking)
	u.RemoveTracking(date)

	if err := s.userRepo.Save(ctx, u); err != nil {
		return errors.NewDatabaseError("save daily tracking", err)
	}

	s.logger.Info("Daily tracking removed",
		zap.String("user_id", userID.String()),
		zap.Time("date", tracking.NormalizeDate(date)),
		zap.Int("entries_removed", before-len(u.DailyTracking)),
	)

	return nil
}

func entryToDTO(e tracking.Entry) inbound.TrackingEntryDTO {
	return inbound.TrackingEntryDTO{
		Date:             e.Date,
		Weight:           e.Weight,
		CaloriesConsumed: e.CaloriesConsumed,
		ProteinConsumed:  e.ProteinConsumed,
		CaloriesNeeded:   e.CaloriesNeeded,
		ProteinNeeded:    e.ProteinNeeded,
	}
}
