// Package user provides the application layer for accounts: registration,
// login, profile reads and the typed profile update.
package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/domain/user"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/internal/ports/outbound"
	"github.com/pantrychef/v2/pkg/errors"
)

// Service implements the account use cases
type Service struct {
	userRepo outbound.UserRepository
	hasher   outbound.PasswordHasher
	tokens   outbound.TokenService
	logger   *zap.Logger
}

// NewService creates a new user service
func NewService(
	userRepo outbound.UserRepository,
	hasher outbound.PasswordHasher,
	tokens outbound.TokenService,
	logger *zap.Logger,
) inbound.UserService {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.Named("user-service"),
	}
}

// Register creates a new account with default nutrition targets
func (s *Service) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.UserDTO, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	email := normalizeEmail(cmd.Email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(email)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	u, err := user.New(email, cmd.FirstName, cmd.LastName, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
	)

	dto := toDTO(u)
	return &dto, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*inbound.LoginResult, error) {
	if email == "" || password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if u == nil || !s.hasher.Verify(password, u.PasswordHash) {
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.Active {
		return nil, errors.NewUnauthorizedError("Account is deactivated")
	}

	token, expiresIn, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	s.logger.Info("User logged in", zap.String("user_id", u.ID.String()))

	return &inbound.LoginResult{
		User:        toDTO(u),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// GetByID returns a single profile
func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}

// List returns every profile
func (s *Service) List(ctx context.Context) ([]inbound.UserDTO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list users", err)
	}

	dtos := make([]inbound.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	return dtos, nil
}

// UpdateProfile applies the present fields of the command. Each field has its
// own validation and unknown fields cannot exist by construction; validation
// runs fully before the first mutation.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd inbound.UpdateProfileCommand) (*inbound.UserDTO, error) {
	if err := validateUpdate(cmd); err != nil {
		return nil, err
	}

	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(u, cmd)

	if err := s.userRepo.Save(ctx, u); err != nil {
		return nil, errors.NewDatabaseError("save user", err)
	}

	s.logger.Info("Profile updated", zap.String("user_id", userID.String()))

	dto := toDTO(u)
	return &dto, nil
}

// Delete removes the account and everything it owns
func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, u.ID); err != nil {
		return errors.NewDatabaseError("delete user", err)
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
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

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateUpdate(cmd inbound.UpdateProfileCommand) error {
	if cmd.FirstName != nil && *cmd.FirstName == "" {
		return errors.NewValidationError("firstName cannot be empty")
	}
	if cmd.Age != nil && (*cmd.Age <= 0 || *cmd.Age > 150) {
		return errors.NewValidationError("age must be between 1 and 150")
	}
	for name, v := range map[string]*float64{
		"weight":       cmd.Weight,
		"heightFeet":   cmd.HeightFeet,
		"heightInches": cmd.HeightInches,
		"calories":     cmd.Calories,
		"protein":      cmd.Protein,
	} {
		if v != nil && *v <= 0 {
			return errors.NewValidationError(name + " must be positive")
		}
	}
	if cmd.CaloriesRange != nil && cmd.CaloriesRange[0] > cmd.CaloriesRange[1] {
		return errors.NewValidationError("caloriesRange minimum exceeds maximum")
	}
	if cmd.ProteinRange != nil && cmd.ProteinRange[0] > cmd.ProteinRange[1] {
		return errors.NewValidationError("proteinRange minimum exceeds maximum")
	}
	if cmd.Goal != nil && !user.Goal(*cmd.Goal).Valid() {
		return errors.NewValidationError("unknown goal")
	}
	if cmd.Gender != nil && !user.Gender(*cmd.Gender).Valid() {
		return errors.NewValidationError("unknown gender")
	}
	if cmd.ActivityLevel != nil && !user.ActivityLevel(*cmd.ActivityLevel).Valid() {
		return errors.NewValidationError("unknown activity level")
	}
	if cmd.System != nil && !user.MeasurementSystem(*cmd.System).Valid() {
		return errors.NewValidationError("unknown measurement system")
	}
	if cmd.WeightUnit != nil && !user.WeightUnit(*cmd.WeightUnit).Valid() {
		return errors.NewValidationError("unknown weight unit")
	}
	if cmd.Challenge != nil && !user.Challenge(*cmd.Challenge).Valid() {
		return errors.NewValidationError("unknown challenge")
	}
	return nil
}

func applyUpdate(u *user.User, cmd inbound.UpdateProfileCommand) {
	if cmd.FirstName != nil {
		u.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		u.LastName = *cmd.LastName
	}
	if cmd.Age != nil {
		u.Age = cmd.Age
	}
	if cmd.Weight != nil {
		u.Weight = cmd.Weight
	}
	if cmd.HeightFeet != nil {
		u.HeightFeet = cmd.HeightFeet
	}
	if cmd.HeightInches != nil {
		u.HeightInches = cmd.HeightInches
	}
	if cmd.Calories != nil {
		u.Calories = *cmd.Calories
	}
	if cmd.Protein != nil {
		u.Protein = *cmd.Protein
	}
	if cmd.CaloriesRange != nil {
		u.CaloriesRange = *cmd.CaloriesRange
	}
	if cmd.ProteinRange != nil {
		u.ProteinRange = *cmd.ProteinRange
	}
	if cmd.DietaryRestrictions != nil {
		u.DietaryRestrictions = *cmd.DietaryRestrictions
	}
	if cmd.FoodPreferences != nil {
		u.FoodPreferences = *cmd.FoodPreferences
	}
	if cmd.Goal != nil {
		u.Goal = user.Goal(*cmd.Goal)
	}
	if cmd.Gender != nil {
		u.Gender = user.Gender(*cmd.Gender)
	}
	if cmd.ActivityLevel != nil {
		u.ActivityLevel = user.ActivityLevel(*cmd.ActivityLevel)
	}
	if cmd.System != nil {
		u.System = user.MeasurementSystem(*cmd.System)
	}
	if cmd.WeightUnit != nil {
		u.WeightUnit = user.WeightUnit(*cmd.WeightUnit)
	}
	if cmd.Challenge != nil {
		u.Challenge = user.Challenge(*cmd.Challenge)
	}
}

func toDTO(u *user.User) inbound.UserDTO {
	return inbound.UserDTO{
		ID:                  u.ID,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		DateJoined:          u.DateJoined,
		Active:              u.Active,
		Calories:            u.Calories,
		Protein:             u.Protein,
		CaloriesRange:       u.CaloriesRange,
		ProteinRange:        u.ProteinRange,
		DietaryRestrictions: u.DietaryRestrictions,
		FoodPreferences:     u.FoodPreferences,
		Goal:                string(u.Goal),
		Gender:              string(u.Gender),
		ActivityLevel:       string(u.ActivityLevel),
		System:              string(u.System),
		WeightUnit:          string(u.WeightUnit),
		Challenge:           string(u.Challenge),
		Weight:              u.Weight,
		HeightFeet:          u.HeightFeet,
		HeightInches:        u.HeightInches,
		Age:                 u.Age,
	}
}
