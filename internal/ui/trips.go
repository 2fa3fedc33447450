package ui

import (
	"context"
	"fmt"
)

func (u *UI) tripsMenu(ctx context.Context) error {
	for {
		u.title("--- Manage Trips ---")
		fmt.Fprintln(u.out, "1. Add Trip")
		fmt.Fprintln(u.out, "2. View Trips")
		fmt.Fprintln(u.out, "3. Update Trip")
		fmt.Fprintln(u.out, "4. Delete Trip")
		fmt.Fprintln(u.out, "5. Back")

		choice, err := u.promptLine("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.addTrip(ctx)
		case "2":
			err = u.viewTrips(ctx)
		case "3":
			err = u.updateTrip(ctx)
		case "4":
			err = u.deleteTrip(ctx)
		case "5":
			return nil
		default:
			u.showError(fmt.Errorf("invalid option, please choose again"))
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (u *UI) addTrip(ctx context.Context) error {
	id, err := u.promptRequired("Trip ID: ")
	if err != nil {
		return err
	}
	destination, err := u.promptRequired("Destination: ")
	if err != nil {
		return err
	}
	start, err := u.promptDate("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := u.promptDate("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	budget, err := u.promptLine("Budget (blank for none): ")
	if err != nil {
		return err
	}
	row, cerr := u.trips.Create(ctx, id, destination, start, end, budget)
	if cerr != nil {
		return u.report(cerr)
	}
	u.showOK("Trip %s to %s added.", row.ID, row.Trip.Destination)
	return nil
}

func (u *UI) viewTrips(ctx context.Context) error {
	rows, err := u.trips.List(ctx)
	if err != nil {
		return u.report(err)
	}
	u.renderTrips(rows)
	return nil
}

func (u *UI) updateTrip(ctx context.Context) error {
	id, err := u.promptRequired("Trip ID to update: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "Leave a field blank to keep its current value.")
	destination, err := u.promptLine("New destination: ")
	if err != nil {
		return err
	}
	start, err := u.promptLine("New start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := u.promptLine("New end date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	budget, err := u.promptLine("New budget: ")
	if err != nil {
		return err
	}
	row, uerr := u.trips.Update(ctx, id, destination, start, end, budget)
	if uerr != nil {
		return u.report(uerr)
	}
	u.showOK("Trip %s updated.", row.ID)
	return nil
}

func (u *UI) deleteTrip(ctx context.Context) error {
	id, err := u.promptRequired("Trip ID to delete: ")
	if err != nil {
		return err
	}
	if derr := u.trips.Delete(ctx, id); derr != nil {
		return u.report(derr)
	}
	u.showOK("Trip %s deleted. Related records are kept and reported in the summary.", id)
	return nil
}
