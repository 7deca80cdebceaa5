// Package pantry provides the application layer for pantry inventory
// management: list, add, upsert-by-name and remove.
package pantry

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/domain/pantry"
	"github.com/pantrychef/v2/internal/domain/user"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/internal/ports/outbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// Service implements the pantry use cases
type Service struct {
	userRepo outbound.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new pantry service
func NewService(userRepo outbound.UserRepository, logger *zap.Logger) inbound.PantryService {
	return &Service{
		userRepo: userRepo,
		logger:   logger.Named("pantry-service"),
		now:      time.Now,
	}
}

// List returns the user's full pantry
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return itemsToDTOs(u.PantryItems), nil
}

// Add appends a new item to the pantry. Names are not deduplicated here;
// duplicates are legal and UpsertByName is the merge path.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	item, err := s.itemFromCommand(cmd)
	if err != nil {
		return nil, err
	}

	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.PantryItems = append(u.PantryItems, item)

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("save pantry", err)
	}

	s.logger.Info("Pantry item added",
		zap.String("user_id", userID.String()),
		zap.String("item", item.Name),
		zap.Float64("quantity", item.Quantity),
	)

	return itemsToDTOs(u.PantryItems), nil
}

// UpsertByName replaces the first item with a matching name, or appends when
// no match exists. The stored item is rebuilt from the command, so omitting
// ExpiresInDays clears any previous expiration date.
func (s *Service) UpsertByName(ctx context.Context, userID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	item, err := s.itemFromCommand(cmd)
	if err != nil {
		return nil, err
	}

	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := u.FindPantryItem(item.Name); idx >= 0 {
		u.PantryItems[idx] = item
	} else {
		u.PantryItems = append(u.PantryItems, item)
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("save pantry", err)
	}

	s.logger.Info("Pantry item upserted",
		zap.String("user_id", userID.String()),
		zap.String("item", item.Name),
	)

	return itemsToDTOs(u.PantryItems), nil
}

// Remove deletes every pantry entry with an exact name match. Removing a name
// that is not present succeeds and leaves the pantry unchanged.
func (s *Service) Remove(ctx context.Context, userID uuid.UUID, name string) ([]inbound.PantryItemDTO, error) {
	if name == "" {
		return nil, errors.NewValidationError(pantry.ErrNameRequired.Error())
	}

	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.RemovePantryItems(name)

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("save pantry", err)
	}

	s.logger.Info("Pantry item removed",
		zap.String("user_id", userID.String()),
		zap.String("item", name),
	)

	return itemsToDTOs(u.PantryItems), nil
}

func (s *Service) findUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	if userID == uuid.Nil {
		return nil, errors.NewValidationError("userId is required")
	}
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}
	return u, nil
}

// itemFromCommand validates and converts the text-typed command fields.
// Quantity must parse as a positive number, ExpiresInDays as a positive
// integer when present.
func (s *Service) itemFromCommand(cmd inbound.PantryItemCommand) (pantry.Item, error) {
	if cmd.Name == "" {
		return pantry.Item{}, errors.NewValidationError(pantry.ErrNameRequired.Error())
	}

	qty, err := strconv.ParseFloat(cmd.Quantity, 64)
	if err != nil || qty <= 0 {
		return pantry.Item{}, errors.NewValidationError(pantry.ErrInvalidQuantity.Error())
	}

	unit := pantry.MeasurementUnit(cmd.Unit)
	if !unit.Valid() {
		return pantry.Item{}, errors.NewValidationError(pantry.ErrInvalidUnit.Error())
	}

	item := pantry.Item{
		Name:     cmd.Name,
		Quantity: qty,
		Unit:     unit,
	}

	if cmd.ExpiresInDays != "" {
		days, err := strconv.Atoi(cmd.ExpiresInDays)
		if err != nil || days <= 0 {
			return pantry.Item{}, errors.NewValidationError(pantry.ErrInvalidExpiresIn.Error())
		}
		exp := pantry.ExpirationFrom(s.now(), days)
		item.ExpirationDate = &exp
	}

	return item, nil
}

func itemsToDTOs(items []pantry.Item) []inbound.PantryItemDTO {
	dtos := make([]inbound.PantryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, inbound.PantryItemDTO{
			Name:           item.Name,
			Quantity:       item.Quantity,
			Unit:           string(item.Unit),
			ExpirationDate: item.ExpirationDate,
		})
	}
	return dtos
}
