package core

// TripSummary is the derived per-trip view: the trip's own fields joined
// with its itinerary entries, expenses, and packing items, plus computed
// spend figures.
type TripSummary struct {
	TripID      string
	Destination string
	StartDate   Date
	EndDate     Date
	Budget      *Money // nil when not set

	Entries  []ItineraryRow
	Expenses []ExpenseRow
	Packing  []PackingRow

	PackedCount int

	// TotalExpenses sums the amounts of all matched expenses. Amounts that
	// failed numeric coercion are excluded, not fatal.
	TotalExpenses Money

	// RemainingBudget is Budget minus TotalExpenses; nil when the trip has
	// no budget. It can go negative when the trip is overspent.
	RemainingBudget *Money
}

// Summary joins the record sets by trip id. The join is a left join from
// trips outward: a trip with no dependents still appears with empty slices.
// Dependents whose trip no longer exists are collected into the orphan
// lists and do not contribute to any trip row.
type Summary struct {
	Trips []TripSummary

	OrphanedEntries  []ItineraryRow
	OrphanedExpenses []ExpenseRow
	OrphanedPacking  []PackingRow
}

// BuildSummary computes the cross-referenced summary of all four record
// sets. It is pure; callers load the sets first.
func BuildSummary(trips *RecordSet[Trip], entries *RecordSet[ItineraryEntry], expenses *RecordSet[Expense], packing *RecordSet[PackingItem]) Summary {
	entriesByTrip := make(map[string][]ItineraryRow)
	for _, id := range entries.IDs() {
		e, _ := entries.Get(id)
		entriesByTrip[e.TripID] = append(entriesByTrip[e.TripID], ItineraryRow{ID: id, Entry: e})
	}
	expensesByTrip := make(map[string][]ExpenseRow)
	for _, id := range expenses.IDs() {
		e, _ := expenses.Get(id)
		expensesByTrip[e.TripID] = append(expensesByTrip[e.TripID], ExpenseRow{ID: id, Expense: e})
	}
	packingByTrip := make(map[string][]PackingRow)
	for _, id := range packing.IDs() {
		p, _ := packing.Get(id)
		packingByTrip[p.TripID] = append(packingByTrip[p.TripID], PackingRow{ID: id, Item: p})
	}

	var sum Summary
	for _, tripID := range trips.IDs() {
		trip, _ := trips.Get(tripID)
		row := TripSummary{
			TripID:      tripID,
			Destination: trip.Destination,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			Budget:      trip.Budget,
			Entries:     entriesByTrip[tripID],
			Expenses:    expensesByTrip[tripID],
			Packing:     packingByTrip[tripID],
		}
		delete(entriesByTrip, tripID)
		delete(expensesByTrip, tripID)
		delete(packingByTrip, tripID)

		var total int64
		for _, e := range row.Expenses {
			if e.Expense.Amount.Valid() && e.Expense.Amount.Cents >= 0 {
				total += e.Expense.Amount.Cents
			}
		}
		row.TotalExpenses = Money{Cents: total}

		if trip.Budget != nil && trip.Budget.Valid() {
			remaining := trip.Budget.Sub(row.TotalExpenses)
			row.RemainingBudget = &remaining
		}
		for _, p := range row.Packing {
			if p.Item.Packed {
				row.PackedCount++
			}
		}
		sum.Trips = append(sum.Trips, row)
	}

	// Whatever is left in the indexes references deleted trips.
	for _, id := range entries.IDs() {
		e, _ := entries.Get(id)
		if rows, ok := entriesByTrip[e.TripID]; ok {
			sum.OrphanedEntries = append(sum.OrphanedEntries, rows...)
			delete(entriesByTrip, e.TripID)
		}
	}
	for _, id := range expenses.IDs() {
		e, _ := expenses.Get(id)
		if rows, ok := expensesByTrip[e.TripID]; ok {
			sum.OrphanedExpenses = append(sum.OrphanedExpenses, rows...)
			delete(expensesByTrip, e.TripID)
		}
	}
	for _, id := range packing.IDs() {
		p, _ := packing.Get(id)
		if rows, ok := packingByTrip[p.TripID]; ok {
			sum.OrphanedPacking = append(sum.OrphanedPacking, rows...)
			delete(packingByTrip, p.TripID)
		}
	}
	return sum
}
