package testutils

import (
	"time"

	"github.com/google/uuid"

	"github.com/pantrychef/v2/internal/domain/pantry"
	"github.com/pantrychef/v2/internal/domain/tracking"
	"github.com/pantrychef/v2/internal/domain/user"
)

// NewTestUser builds a valid user with default targets and empty collections
func NewTestUser() *user.User {
	return &user.User{
		ID:            uuid.New(),
		Email:         "test@example.com",
		FirstName:     "Test",
		LastName:      "User",
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		DateJoined:    time.Now().UTC(),
		Active:        true,
		Calories:      user.DefaultCalories,
		Protein:       user.DefaultProtein,
		CaloriesRange: [2]float64{user.DefaultCalories, user.DefaultCalories},
		ProteinRange:  [2]float64{user.DefaultProtein, user.DefaultProtein},
		Goal:          user.GoalMaintainMuscle,
		ActivityLevel: user.ActivityModeratelyActive,
		System:        user.SystemMetric,
		WeightUnit:    user.WeightUnitKilogram,
		Challenge:     user.ChallengeOneWeek,
	}
}

// NewTestUserWithPantry builds a user stocked with a few valid pantry items
func NewTestUserWithPantry() *user.User {
	u := NewTestUser()
	u.PantryItems = []pantry.Item{
		{Name: "Chicken Breast", Quantity: 500, Unit: pantry.UnitGram},
		{Name: "Rice", Quantity: 2, Unit: pantry.UnitCup},
		{Name: "Eggs", Quantity: 6, Unit: pantry.UnitPiece},
	}
	return u
}

// NewTestUserWithTracking builds a user with one ledger entry on the given day
func NewTestUserWithTracking(date time.Time) *user.User {
	u := NewTestUser()
	u.DailyTracking = []tracking.Entry{
		tracking.NewEntry(date, nil, 500, 30, u.Calories, u.Protein),
	}
	return u
}

// Float64Ptr returns a pointer to the given float64
func Float64Ptr(v float64) *float64 {
	return &v
}

// TimePtr returns a pointer to the given time
func TimePtr(t time.Time) *time.Time {
	return &t
}
