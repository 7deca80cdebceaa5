// Package user contains the user aggregate: profile, nutrition targets,
// pantry inventory and the daily tracking ledger.
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/v2/internal/domain/pantry"
	"github.com/pantrychef/v2/internal/domain/tracking"
)

// Default nutrition targets applied at registration
const (
	DefaultCalories = 2000.0
	DefaultProtein  = 80.0
)

// User is the aggregate root owning the pantry and the daily ledger.
// Every pantry/ledger operation is a read-modify-write cycle against this
// single record; concurrent updates are last-write-wins.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	DateJoined   time.Time
	Active       bool

	// Nutrition targets
	Calories      float64
	Protein       float64
	CaloriesRange [2]float64
	ProteinRange  [2]float64

	// Profile
	DietaryRestrictions []string
	FoodPreferences     []string
	Goal                Goal
	Gender              Gender
	ActivityLevel       ActivityLevel
	System              MeasurementSystem
	WeightUnit          WeightUnit
	Challenge           Challenge
	Weight              *float64
	HeightFeet          *float64
	HeightInches        *float64
	Age                 *int

	// Owned collections
	PantryItems   []pantry.Item
	DailyTracking []tracking.Entry
}

// New creates a user with validated identity fields and default targets
func New(email, firstName, lastName, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if passwordHash == "" {
		return nil, ErrPasswordRequired
	}

	return &User{
		ID:            uuid.New(),
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		PasswordHash:  passwordHash,
		DateJoined:    time.Now(),
		Active:        true,
		Calories:      DefaultCalories,
		Protein:       DefaultProtein,
		CaloriesRange: [2]float64{DefaultCalories, DefaultCalories},
		ProteinRange:  [2]float64{DefaultProtein, DefaultProtein},
		Goal:          GoalMaintainMuscle,
		ActivityLevel: ActivityModeratelyActive,
		System:        SystemMetric,
		WeightUnit:    WeightUnitKilogram,
		Challenge:     ChallengeOneWeek,
	}, nil
}

// FindTracking returns the ledger entry for the given calendar day, if any
func (u *User) FindTracking(date time.Time) (int, bool) {
	for i := range u.DailyTracking {
		if tracking.SameCalendarDay(u.DailyTracking[i].Date, date) {
			return i, true
		}
	}
	return -1, false
}

// RemoveTracking drops every ledger entry matching the calendar day.
// Removing a date with no entry is a no-op.
func (u *User) RemoveTracking(date time.Time) {
	kept := u.DailyTracking[:0]
	for _, e := range u.DailyTracking {
		if !tracking.SameCalendarDay(e.Date, date) {
			kept = append(kept, e)
		}
	}
	u.DailyTracking = kept
}

// FindPantryItem returns the index of the first pantry entry with an exact
// name match, or -1.
func (u *User) FindPantryItem(name string) int {
	for i := range u.PantryItems {
		if u.PantryItems[i].Name == name {
			return i
		}
	}
	return -1
}

// RemovePantryItems filters out all entries with an exact name match
func (u *User) RemovePantryItems(name string) {
	kept := u.PantryItems[:0]
	for _, item := range u.PantryItems {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	u.PantryItems = kept
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Goal represents the user's fitness goal
type Goal string

const (
	GoalLoseFat           Goal = "Lose Fat"
	GoalGainMuscle        Goal = "Gain Muscle"
	GoalMaintainMuscle    Goal = "Maintain Muscle"
	GoalMaintainWeight    Goal = "Maintain Weight"
	GoalGainMuscleLoseFat Goal = "Gain Muscle & Lose Fat"
)

// Valid reports whether the goal is a known value
func (g Goal) Valid() bool {
	switch g {
	case GoalLoseFat, GoalGainMuscle, GoalMaintainMuscle, GoalMaintainWeight, GoalGainMuscleLoseFat:
		return true
	}
	return false
}

// Gender represents the user's gender
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether the gender is a known value
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ActivityLevel represents how active the user is
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly active"
	ActivityModeratelyActive ActivityLevel = "Moderately active"
	ActivityVeryActive       ActivityLevel = "Very active"
	ActivitySuperActive      ActivityLevel = "Super active"
)

// Valid reports whether the activity level is a known value
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivitySuperActive:
		return true
	}
	return false
}

// MeasurementSystem represents the user's preferred unit system
type MeasurementSystem string

const (
	SystemMetric   MeasurementSystem = "Metric"
	SystemImperial MeasurementSystem = "Imperial"
)

// Valid reports whether the system is a known value
func (m MeasurementSystem) Valid() bool {
	return m == SystemMetric || m == SystemImperial
}

// WeightUnit represents the user's preferred weight unit
type WeightUnit string

const (
	WeightUnitKilogram WeightUnit = "kg"
	WeightUnitPound    WeightUnit = "lbs"
)

// Valid reports whether the weight unit is a known value
func (w WeightUnit) Valid() bool {
	return w == WeightUnitKilogram || w == WeightUnitPound
}

// Challenge represents the user's selected challenge duration
type Challenge string

const (
	ChallengeOneWeek       Challenge = "1 week"
	ChallengeTwoWeeks      Challenge = "2 weeks"
	ChallengeThreeWeeks    Challenge = "3 weeks"
	ChallengeFourWeeks     Challenge = "4 weeks"
	ChallengeEightWeeks    Challenge = "8 weeks"
	ChallengeSixteenWeeks  Challenge = "16 weeks"
	ChallengeTwentySix     Challenge = "26 weeks"
	ChallengeFiftyTwoWeeks Challenge = "52 weeks"
)

// Valid reports whether the challenge is a known value
func (c Challenge) Valid() bool {
	switch c {
	case ChallengeOneWeek, ChallengeTwoWeeks, ChallengeThreeWeeks, ChallengeFourWeeks,
		ChallengeEightWeeks, ChallengeSixteenWeeks, ChallengeTwentySix, ChallengeFiftyTwoWeeks:
		return true
	}
	return false
}
