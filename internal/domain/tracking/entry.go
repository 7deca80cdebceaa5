// Package tracking contains the core domain logic for the daily nutrition ledger.
// Each entry is one user's nutrition record for a single calendar day.
package tracking

import "time"

// Entry represents a per-date tracking record. Date is the identity key within
// a user's ledger; comparison is by calendar day, never by timestamp.
type Entry struct {
	Date             time.Time
	Weight           *float64 // overwritten on update, not accumulated
	CaloriesConsumed float64  // accumulated across updates for the day
	ProteinConsumed  float64  // accumulated across updates for the day
	CaloriesNeeded   float64  // snapshot of the user's target at creation time
	ProteinNeeded    float64  // snapshot of the user's target at creation time
}

// NewEntry creates a ledger entry for a calendar day, snapshotting the user's
// current targets. The snapshots are never recomputed on later updates.
func NewEntry(date time.Time, weight *float64, caloriesDelta, proteinDelta, caloriesTarget, proteinTarget float64) Entry {
	return Entry{
		Date:             NormalizeDate(date),
		Weight:           weight,
		CaloriesConsumed: caloriesDelta,
		ProteinConsumed:  proteinDelta,
		CaloriesNeeded:   caloriesTarget,
		ProteinNeeded:    proteinTarget,
	}
}

// ApplyDelta merges a new log into an existing entry: weight is overwritten
// when provided, consumption deltas accumulate, target snapshots stay untouched.
func (e *Entry) ApplyDelta(weight *float64, caloriesDelta, proteinDelta float64) {
	if weight != nil {
		e.Weight = weight
	}
	e.CaloriesConsumed += caloriesDelta
	e.ProteinConsumed += proteinDelta
}

// NormalizeDate truncates a timestamp to its UTC calendar day.
// Every ledger comparison goes through this single normalization.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether two timestamps fall on the same UTC calendar day
func SameCalendarDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}
