// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users. The pantry and the daily
// ledger are owned JSON documents on the user row, so every mutation of
// either is a single-row read-modify-write.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"default:true"`
	DateJoined   time.Time

	Calories    float64 `gorm:"default:2000"`
	Protein     float64 `gorm:"default:80"`
	CaloriesMin float64 `gorm:"column:calories_min"`
	CaloriesMax float64 `gorm:"column:calories_max"`
	ProteinMin  float64 `gorm:"column:protein_min"`
	ProteinMax  float64 `gorm:"column:protein_max"`

	DietaryRestrictions StringSlice `gorm:"type:json"`
	FoodPreferences     StringSlice `gorm:"type:json"`
	Goal                string      `gorm:"type:varchar(50)"`
	Gender              string      `gorm:"type:varchar(20)"`
	ActivityLevel       string      `gorm:"type:varchar(50)"`
	System              string      `gorm:"type:varchar(20)"`
	WeightUnit          string      `gorm:"type:varchar(10)"`
	Challenge           string      `gorm:"type:varchar(20)"`
	Weight              *float64
	HeightFeet          *float64
	HeightInches        *float64
	Age                 *int

	PantryItems   PantryItemsJSON     `gorm:"type:json"`
	DailyTracking TrackingEntriesJSON `gorm:"type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for the user model
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate generates a UUID if not set
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// PantryItemRecord is the JSON shape of one stored pantry entry
type PantryItemRecord struct {
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// TrackingEntryRecord is the JSON shape of one stored ledger entry
type TrackingEntryRecord struct {
	Date             time.Time `json:"date"`
	Weight           *float64  `json:"weight,omitempty"`
	CaloriesConsumed float64   `json:"caloriesConsumed"`
	ProteinConsumed  float64   `json:"proteinConsumed"`
	CaloriesNeeded   float64   `json:"caloriesNeeded"`
	ProteinNeeded    float64   `json:"proteinNeeded"`
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

// PantryItemsJSON stores the pantry as a JSON array column
type PantryItemsJSON []PantryItemRecord

// Scan implements the sql.Scanner interface
func (p *PantryItemsJSON) Scan(value interface{}) error {
	if value == nil {
		*p = PantryItemsJSON{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PantryItemsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (p PantryItemsJSON) Value() (driver.Value, error) {
	if p == nil {
		p = PantryItemsJSON{}
	}
	return json.Marshal(p)
}

// TrackingEntriesJSON stores the daily ledger as a JSON array column
type TrackingEntriesJSON []TrackingEntryRecord

// Scan implements the sql.Scanner interface
func (t *TrackingEntriesJSON) Scan(value interface{}) error {
	if value == nil {
		*t = TrackingEntriesJSON{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into TrackingEntriesJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (t TrackingEntriesJSON) Value() (driver.Value, error) {
	if t == nil {
		t = TrackingEntriesJSON{}
	}
	return json.Marshal(t)
}
