package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"viaggio/internal/amqp"
	"viaggio/internal/core"
	"viaggio/internal/storage"
)

// ExpenseService owns the expenses record set.
type ExpenseService struct {
	store    storage.RecordStore
	notifier *amqp.Client
}

func NewExpenseService(store storage.RecordStore, notifier *amqp.Client) *ExpenseService {
	return &ExpenseService{store: store, notifier: notifier}
}

// Create validates and persists a new expense.
func (s *ExpenseService) Create(ctx context.Context, id, tripID, amount, category, description string) (core.ExpenseRow, error) {
	expenses, err := storage.LoadSet[core.Expense](ctx, s.store, storage.SetExpenses)
	if err != nil {
		return core.ExpenseRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.ExpenseRow{}, err
	}
	if expenses.Has(canonical) {
		return core.ExpenseRow{}, fmt.Errorf("%w: expense %q", core.ErrDuplicateID, canonical)
	}
	if err := s.tripExists(ctx, tripID); err != nil {
		return core.ExpenseRow{}, err
	}
	cents, err := core.ParseAmountToCents(amount)
	if err != nil {
		return core.ExpenseRow{}, fmt.Errorf("%w: %v", core.ErrBadAmount, err)
	}
	if !core.NonEmpty(category) {
		return core.ExpenseRow{}, fmt.Errorf("%w: category", core.ErrEmptyField)
	}
	if !core.NonEmpty(description) {
		return core.ExpenseRow{}, fmt.Errorf("%w: description", core.ErrEmptyField)
	}

	expense := core.Expense{
		TripID:      strings.TrimSpace(tripID),
		Amount:      core.Money{Cents: cents},
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
	}
	expenses.Put(canonical, expense)
	if err := storage.SaveSet(ctx, s.store, storage.SetExpenses, expenses); err != nil {
		return core.ExpenseRow{}, err
	}
	notify(ctx, s.notifier, storage.SetExpenses, canonical, amqp.ActionCreate)
	return core.ExpenseRow{ID: canonical, Expense: expense}, nil
}

// Update merges non-blank fields. A non-numeric amount keeps the previous
// value with a warning instead of failing the whole update.
func (s *ExpenseService) Update(ctx context.Context, id, tripID, amount, category, description string) (core.ExpenseRow, error) {
	expenses, err := storage.LoadSet[core.Expense](ctx, s.store, storage.SetExpenses)
	if err != nil {
		return core.ExpenseRow{}, err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return core.ExpenseRow{}, err
	}
	expense, ok := expenses.Get(canonical)
	if !ok {
		return core.ExpenseRow{}, fmt.Errorf("%w: expense %q", core.ErrNotFound, canonical)
	}

	if core.NonEmpty(tripID) {
		if err := s.tripExists(ctx, tripID); err != nil {
			return core.ExpenseRow{}, err
		}
		expense.TripID = strings.TrimSpace(tripID)
	}
	if core.NonEmpty(amount) {
		cents, err := core.ParseAmountToCents(amount)
		if err != nil {
			slog.WarnContext(ctx, "Keeping previous amount, new value is not numeric",
				"id", canonical,
				"amount", amount,
				"error", err)
		} else {
			expense.Amount = core.Money{Cents: cents}
		}
	}
	if core.NonEmpty(category) {
		expense.Category = strings.TrimSpace(category)
	}
	if core.NonEmpty(description) {
		expense.Description = strings.TrimSpace(description)
	}

	expenses.Put(canonical, expense)
	if err := storage.SaveSet(ctx, s.store, storage.SetExpenses, expenses); err != nil {
		return core.ExpenseRow{}, err
	}
	notify(ctx, s.notifier, storage.SetExpenses, canonical, amqp.ActionUpdate)
	return core.ExpenseRow{ID: canonical, Expense: expense}, nil
}

// Delete removes the expense.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	expenses, err := storage.LoadSet[core.Expense](ctx, s.store, storage.SetExpenses)
	if err != nil {
		return err
	}
	canonical, err := core.CanonicalID(id)
	if err != nil {
		return err
	}
	if !expenses.Delete(canonical) {
		return fmt.Errorf("%w: expense %q", core.ErrNotFound, canonical)
	}
	if err := storage.SaveSet(ctx, s.store, storage.SetExpenses, expenses); err != nil {
		return err
	}
	notify(ctx, s.notifier, storage.SetExpenses, canonical, amqp.ActionDelete)
	return nil
}

// List returns all expenses in persisted insertion order.
func (s *ExpenseService) List(ctx context.Context) ([]core.ExpenseRow, error) {
	expenses, err := storage.LoadSet[core.Expense](ctx, s.store, storage.SetExpenses)
	if err != nil {
		return nil, err
	}
	rows := make([]core.ExpenseRow, 0, expenses.Len())
	for _, id := range expenses.IDs() {
		expense, _ := expenses.Get(id)
		rows = append(rows, core.ExpenseRow{ID: id, Expense: expense})
	}
	return rows, nil
}

func (s *ExpenseService) tripExists(ctx context.Context, tripID string) error {
	trips, err := storage.LoadSet[core.Trip](ctx, s.store, storage.SetTrips)
	if err != nil {
		return err
	}
	if !trips.Has(strings.TrimSpace(tripID)) {
		return fmt.Errorf("%w: %q", core.ErrTripNotFound, strings.TrimSpace(tripID))
	}
	return nil
}
