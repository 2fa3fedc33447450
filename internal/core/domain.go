// Package core contains the domain types and validation rules for the travel
// planner. It is pure: no I/O, no persistence, no presentation. Every other
// internal package depends on it.
package core

import (
	"errors"
	"strings"
)

type (
	// Trip is the top-level record: a journey with a date span and an
	// optional budget. The trip id is the key of the persisted mapping and
	// is not repeated inside the record.
	Trip struct {
		Destination string `json:"destination"`
		StartDate   Date   `json:"start_date"`
		EndDate     Date   `json:"end_date"`
		Budget      *Money `json:"budget,omitempty"` // nil when not set
	}

	// ItineraryEntry is a dated activity belonging to one trip. The entry
	// references its trip by id only; deleting the trip does not cascade.
	ItineraryEntry struct {
		TripID   string `json:"trip_id"`
		Date     Date   `json:"date"`
		Activity string `json:"activity"`
	}

	// Expense is a cost record belonging to one trip.
	Expense struct {
		TripID      string `json:"trip_id"`
		Amount      Money  `json:"amount"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}

	// PackingItem is a per-trip packing-list entry.
	PackingItem struct {
		TripID   string `json:"trip_id"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Packed   bool   `json:"packed"`
	}
)

// Rows pair a record with its id for callers that need both, in particular
// ordered listings and summary views.
type (
	TripRow struct {
		ID   string
		Trip Trip
	}

	ItineraryRow struct {
		ID    string
		Entry ItineraryEntry
	}

	ExpenseRow struct {
		ID      string
		Expense Expense
	}

	PackingRow struct {
		ID   string
		Item PackingItem
	}
)

// Validation failure taxonomy. Managers wrap these with context via
// fmt.Errorf("...: %w", ...); callers branch with errors.Is.
var (
	ErrDuplicateID  = errors.New("id already in use")
	ErrInvalidID    = errors.New("invalid id")
	ErrNotFound     = errors.New("record not found")
	ErrTripNotFound = errors.New("trip not found")
	ErrEmptyField   = errors.New("field must not be empty")
	ErrBadDate      = errors.New("invalid date")
	ErrDateOrder    = errors.New("end date before start date")
	ErrOutOfRange   = errors.New("date outside trip dates")
	ErrBadAmount    = errors.New("invalid amount")
	ErrBadBudget    = errors.New("invalid budget")
	ErrBadQuantity  = errors.New("invalid quantity")
)

// NonEmpty reports whether s contains anything besides whitespace.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
