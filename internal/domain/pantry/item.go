// Package pantry contains the core domain logic for a user's pantry inventory.
package pantry

import "time"

// Item represents a named, quantified ingredient a user currently possesses,
// with an optional expiration. Name is the identity key within a user's pantry.
type Item struct {
	Name           string
	Quantity       float64
	Unit           MeasurementUnit
	ExpirationDate *time.Time // nil means the item does not expire
}

// Validate checks the item against domain rules
func (i Item) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !i.Unit.Valid() {
		return ErrInvalidUnit
	}
	return nil
}

// IsExpired reports whether the item has expired as of now.
// Items without an expiration date never expire.
func (i Item) IsExpired(now time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return i.ExpirationDate.Before(now)
}

// ExpirationFrom computes an expiration date a number of days from now
func ExpirationFrom(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}

// MeasurementUnit represents the fixed set of pantry measurement units
type MeasurementUnit string

const (
	UnitPiece      MeasurementUnit = "Piece"
	UnitGram       MeasurementUnit = "g"
	UnitKilogram   MeasurementUnit = "kg"
	UnitOunce      MeasurementUnit = "oz"
	UnitPound      MeasurementUnit = "lb"
	UnitSlice      MeasurementUnit = "Slice"
	UnitCup        MeasurementUnit = "Cup"
	UnitTablespoon MeasurementUnit = "tbsp"
	UnitTeaspoon   MeasurementUnit = "tsp"
	UnitMilliliter MeasurementUnit = "ml"
	UnitLiter      MeasurementUnit = "l"
	UnitFluidOunce MeasurementUnit = "fl oz"
)

// Units lists every valid measurement unit
func Units() []MeasurementUnit {
	return []MeasurementUnit{
		UnitPiece, UnitGram, UnitKilogram, UnitOunce, UnitPound, UnitSlice,
		UnitCup, UnitTablespoon, UnitTeaspoon, UnitMilliliter, UnitLiter, UnitFluidOunce,
	}
}

// Valid reports whether the unit is in the fixed enumerated set
func (u MeasurementUnit) Valid() bool {
	switch u {
	case UnitPiece, UnitGram, UnitKilogram, UnitOunce, UnitPound, UnitSlice,
		UnitCup, UnitTablespoon, UnitTeaspoon, UnitMilliliter, UnitLiter, UnitFluidOunce:
		return true
	}
	return false
}
