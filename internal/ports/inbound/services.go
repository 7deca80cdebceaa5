// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). These are the use cases the HTTP layer calls into.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v2/internal/domain/recipe"
)

// PantryService defines the use cases for a user's pantry inventory
type PantryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
	Add(ctx context.Context, userID uuid.UUID, cmd PantryItemCommand) ([]PantryItemDTO, error)
	UpsertByName(ctx context.Context, userID uuid.UUID, cmd PantryItemCommand) ([]PantryItemDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, name string) ([]PantryItemDTO, error)
}

// TrackingService defines the use cases for the daily nutrition ledger
type TrackingService interface {
	Upsert(ctx context.Context, cmd UpsertTrackingCommand) (*TrackingEntryDTO, error)
	Get(ctx context.Context, userID uuid.UUID, date time.Time) (*TrackingEntryDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// RecipeService defines the recipe generation workflow
type RecipeService interface {
	Generate(ctx context.Context, userID uuid.UUID, constraints recipe.Constraints) (*recipe.Generated, error)
}

// UserService defines the profile and authentication use cases
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UserDTO, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Command objects

// PantryItemCommand carries caller-supplied pantry item fields. Quantity and
// ExpiresInDays arrive as text and are validated as positive numbers.
type PantryItemCommand struct {
	Name          string
	Quantity      string
	Unit          string
	ExpiresInDays string // optional; positive day count
}

// UpsertTrackingCommand carries one meal-logging call. Deltas default to zero
// when absent so weight-only updates are possible.
type UpsertTrackingCommand struct {
	UserID        uuid.UUID
	Date          time.Time
	Weight        *float64
	CaloriesDelta float64
	ProteinDelta  float64
}

// RegisterCommand contains data for creating a new user
type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateProfileCommand enumerates every updatable profile field explicitly.
// A nil pointer leaves the field unchanged; each present field is validated
// by its own rule before any mutation is applied.
type UpdateProfileCommand struct {
	FirstName           *string
	LastName            *string
	Age                 *int
	Weight              *float64
	HeightFeet          *float64
	HeightInches        *float64
	Calories            *float64
	Protein             *float64
	CaloriesRange       *[2]float64
	ProteinRange        *[2]float64
	DietaryRestrictions *[]string
	FoodPreferences     *[]string
	Goal                *string
	Gender              *string
	ActivityLevel       *string
	System              *string
	WeightUnit          *string
	Challenge           *string
}

// Response DTOs

// PantryItemDTO is the transfer object for pantry entries
type PantryItemDTO struct {
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// TrackingEntryDTO is the transfer object for ledger entries
type TrackingEntryDTO struct {
	Date             time.Time `json:"date"`
	Weight           *float64  `json:"weight,omitempty"`
	CaloriesConsumed float64   `json:"caloriesConsumed"`
	ProteinConsumed  float64   `json:"proteinConsumed"`
	CaloriesNeeded   float64   `json:"caloriesNeeded"`
	ProteinNeeded    float64   `json:"proteinNeeded"`
}

// UserDTO is the transfer object for user profiles. The password hash is
// never part of it.
type UserDTO struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	DateJoined          time.Time  `json:"dateJoined"`
	Active              bool       `json:"active"`
	Calories            float64    `json:"calories"`
	Protein             float64    `json:"protein"`
	CaloriesRange       [2]float64 `json:"caloriesRange"`
	ProteinRange        [2]float64 `json:"proteinRange"`
	DietaryRestrictions []string   `json:"dietaryRestrictions"`
	FoodPreferences     []string   `json:"foodPreferences"`
	Goal                string     `json:"goal"`
	Gender              string     `json:"gender,omitempty"`
	ActivityLevel       string     `json:"activityLevel"`
	System              string     `json:"system"`
	WeightUnit          string     `json:"weightUnit"`
	Challenge           string     `json:"challenge"`
	Weight              *float64   `json:"weight,omitempty"`
	HeightFeet          *float64   `json:"heightFeet,omitempty"`
	HeightInches        *float64   `json:"heightInches,omitempty"`
	Age                 *int       `json:"age,omitempty"`
}

// LoginResult carries the authenticated profile and its access token
type LoginResult struct {
	User        UserDTO `json:"user"`
	AccessToken string  `json:"accessToken"`
	ExpiresIn   int64   `json:"expiresIn"`
}
