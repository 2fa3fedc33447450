package ui

import (
	"context"
	"fmt"
)

func (u *UI) itineraryMenu(ctx context.Context) error {
	for {
		u.title("--- Manage Itinerary ---")
		fmt.Fprintln(u.out, "1. Add Entry")
		fmt.Fprintln(u.out, "2. View Entries")
		fmt.Fprintln(u.out, "3. Update Entry")
		fmt.Fprintln(u.out, "4. Delete Entry")
		fmt.Fprintln(u.out, "5. Back")

		choice, err := u.promptLine("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.addEntry(ctx)
		case "2":
			err = u.viewEntries(ctx)
		case "3":
			err = u.updateEntry(ctx)
		case "4":
			err = u.deleteEntry(ctx)
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

func (u *UI) addEntry(ctx context.Context) error {
	id, err := u.promptID("Entry ID: ")
	if err != nil {
		return err
	}
	tripID, err := u.promptRequired("Trip ID: ")
	if err != nil {
		return err
	}
	date, err := u.promptDate("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	activity, err := u.promptRequired("Activity: ")
	if err != nil {
		return err
	}
	row, cerr := u.itinerary.Create(ctx, id, tripID, date, activity)
	if cerr != nil {
		return u.report(cerr)
	}
	u.showOK("Entry %s added for trip %s.", row.ID, row.Entry.TripID)
	return nil
}

func (u *UI) viewEntries(ctx context.Context) error {
	rows, err := u.itinerary.List(ctx)
	if err != nil {
		return u.report(err)
	}
	u.renderEntries(rows)
	return nil
}

func (u *UI) updateEntry(ctx context.Context) error {
	id, err := u.promptID("Entry ID to update: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "Leave a field blank to keep its current value.")
	tripID, err := u.promptLine("New trip ID: ")
	if err != nil {
		return err
	}
	date, err := u.promptLine("New date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	activity, err := u.promptLine("New activity: ")
	if err != nil {
		return err
	}
	row, uerr := u.itinerary.Update(ctx, id, tripID, date, activity)
	if uerr != nil {
		return u.report(uerr)
	}
	u.showOK("Entry %s updated.", row.ID)
	return nil
}

func (u *UI) deleteEntry(ctx context.Context) error {
	id, err := u.promptID("Entry ID to delete: ")
	if err != nil {
		return err
	}
	if derr := u.itinerary.Delete(ctx, id); derr != nil {
		return u.report(derr)
	}
	u.showOK("Entry %s deleted.", id)
	return nil
}
