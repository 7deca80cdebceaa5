// Mapping between domain entities and GORM models
package gorm

import (
	"github.com/pantrychef/v2/internal/domain/pantry"
	"github.com/pantrychef/v2/internal/domain/tracking"
	"github.com/pantrychef/v2/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	model := &UserModel{
		ID:                  u.ID,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PasswordHash:        u.PasswordHash,
		IsActive:            u.Active,
		DateJoined:          u.DateJoined,
		Calories:            u.Calories,
		Protein:             u.Protein,
		CaloriesMin:         u.CaloriesRange[0],
		CaloriesMax:         u.CaloriesRange[1],
		ProteinMin:          u.ProteinRange[0],
		ProteinMax:          u.ProteinRange[1],
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

	model.PantryItems = make(PantryItemsJSON, 0, len(u.PantryItems))
	for _, item := range u.PantryItems {
		model.PantryItems = append(model.PantryItems, PantryItemRecord{
			Name:           item.Name,
			Quantity:       item.Quantity,
			Unit:           string(item.Unit),
			ExpirationDate: item.ExpirationDate,
		})
	}

	model.DailyTracking = make(TrackingEntriesJSON, 0, len(u.DailyTracking))
	for _, e := range u.DailyTracking {
		model.DailyTracking = append(model.DailyTracking, TrackingEntryRecord{
			Date:             e.Date,
			Weight:           e.Weight,
			CaloriesConsumed: e.CaloriesConsumed,
			ProteinConsumed:  e.ProteinConsumed,
			CaloriesNeeded:   e.CaloriesNeeded,
			ProteinNeeded:    e.ProteinNeeded,
		})
	}

	return model
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	u := &user.User{
		ID:                  m.ID,
		Email:               m.Email,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		PasswordHash:        m.PasswordHash,
		Active:              m.IsActive,
		DateJoined:          m.DateJoined,
		Calories:            m.Calories,
		Protein:             m.Protein,
		CaloriesRange:       [2]float64{m.CaloriesMin, m.CaloriesMax},
		ProteinRange:        [2]float64{m.ProteinMin, m.ProteinMax},
		DietaryRestrictions: m.DietaryRestrictions,
		FoodPreferences:     m.FoodPreferences,
		Goal:                user.Goal(m.Goal),
		Gender:              user.Gender(m.Gender),
		ActivityLevel:       user.ActivityLevel(m.ActivityLevel),
		System:              user.MeasurementSystem(m.System),
		WeightUnit:          user.WeightUnit(m.WeightUnit),
		Challenge:           user.Challenge(m.Challenge),
		Weight:              m.Weight,
		HeightFeet:          m.HeightFeet,
		HeightInches:        m.HeightInches,
		Age:                 m.Age,
	}

	u.PantryItems = make([]pantry.Item, 0, len(m.PantryItems))
	for _, rec := range m.PantryItems {
		u.PantryItems = append(u.PantryItems, pantry.Item{
			Name:           rec.Name,
			Quantity:       rec.Quantity,
			Unit:           pantry.MeasurementUnit(rec.Unit),
			ExpirationDate: rec.ExpirationDate,
		})
	}

	u.DailyTracking = make([]tracking.Entry, 0, len(m.DailyTracking))
	for _, rec := range m.DailyTracking {
		u.DailyTracking = append(u.DailyTracking, tracking.Entry{
			Date:             rec.Date,
			Weight:           rec.Weight,
			CaloriesConsumed: rec.CaloriesConsumed,
			ProteinConsumed:  rec.ProteinConsumed,
			CaloriesNeeded:   rec.CaloriesNeeded,
			ProteinNeeded:    rec.ProteinNeeded,
		})
	}

	return u
}
