package ui

import (
	"fmt"

	"github.com/fatih/color"

	"viaggio/internal/core"
)

var (
	titleStyle = color.New(color.FgCyan, color.Bold)
	okStyle    = color.New(color.FgGreen)
	errStyle   = color.New(color.FgRed)
	dimStyle   = color.New(color.Faint)
)

func (u *UI) title(s string) {
	titleStyle.Fprintln(u.out, s)
}

func (u *UI) showOK(format string, args ...any) {
	okStyle.Fprintf(u.out, format+"\n", args...)
}

func (u *UI) showError(err error) {
	errStyle.Fprintf(u.out, "Error: %v\n", err)
}

func budgetString(b *core.Money) string {
	if b == nil {
		return "not set"
	}
	return b.String()
}

func moneyString(m core.Money) string {
	if !m.Valid() {
		return "not available"
	}
	return m.String()
}

func (u *UI) renderTrips(rows []core.TripRow) {
	if len(rows) == 0 {
		dimStyle.Fprintln(u.out, "No trips recorded.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s: %s (%s to %s), budget %s\n",
			r.ID, r.Trip.Destination, r.Trip.StartDate, r.Trip.EndDate,
			budgetString(r.Trip.Budget))
	}
}

func (u *UI) renderEntries(rows []core.ItineraryRow) {
	if len(rows) == 0 {
		dimStyle.Fprintln(u.out, "No itinerary entries recorded.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s: [trip %s] %s - %s\n",
			r.ID, r.Entry.TripID, r.Entry.Date, r.Entry.Activity)
	}
}

func (u *UI) renderExpenses(rows []core.ExpenseRow) {
	if len(rows) == 0 {
		dimStyle.Fprintln(u.out, "No expenses recorded.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(u.out, "%s: [trip %s] %s - %s (%s)\n",
			r.ID, r.Expense.TripID, moneyString(r.Expense.Amount),
			r.Expense.Category, r.Expense.Description)
	}
}

func (u *UI) renderPacking(rows []core.PackingRow) {
	if len(rows) == 0 {
		dimStyle.Fprintln(u.out, "No packing items recorded.")
		return
	}
	for _, r := range rows {
		mark := "[ ]"
		if r.Item.Packed {
			mark = "[x]"
		}
		fmt.Fprintf(u.out, "%s: %s [trip %s] %s x%d\n",
			r.ID, mark, r.Item.TripID, r.Item.Name, r.Item.Quantity)
	}
}

func (u *UI) renderSummary(s core.Summary) {
	if len(s.Trips) == 0 {
		dimStyle.Fprintln(u.out, "No trips to summarize.")
	}
	for _, t := range s.Trips {
		u.title(fmt.Sprintf("Trip %s: %s", t.TripID, t.Destination))
		fmt.Fprintf(u.out, "  Dates: %s to %s\n", t.StartDate, t.EndDate)
		fmt.Fprintf(u.out, "  Budget: %s\n", budgetString(t.Budget))
		fmt.Fprintf(u.out, "  Total expenses: %s\n", moneyString(t.TotalExpenses))
		if t.RemainingBudget != nil {
			fmt.Fprintf(u.out, "  Remaining budget: %s\n", moneyString(*t.RemainingBudget))
		} else {
			fmt.Fprintln(u.out, "  Remaining budget: not available")
		}
		fmt.Fprintf(u.out, "  Itinerary entries: %d\n", len(t.Entries))
		for _, e := range t.Entries {
			fmt.Fprintf(u.out, "    %s: %s\n", e.Entry.Date, e.Entry.Activity)
		}
		fmt.Fprintf(u.out, "  Expenses: %d\n", len(t.Expenses))
		for _, e := range t.Expenses {
			fmt.Fprintf(u.out, "    %s - %s (%s)\n",
				moneyString(e.Expense.Amount), e.Expense.Category, e.Expense.Description)
		}
		fmt.Fprintf(u.out, "  Packing: %d/%d packed\n", t.PackedCount, len(t.Packing))
	}

	if len(s.OrphanedEntries) > 0 || len(s.OrphanedExpenses) > 0 || len(s.OrphanedPacking) > 0 {
		dimStyle.Fprintf(u.out, "Records referencing deleted trips: %d entries, %d expenses, %d packing items\n",
			len(s.OrphanedEntries), len(s.OrphanedExpenses), len(s.OrphanedPacking))
	}
}
