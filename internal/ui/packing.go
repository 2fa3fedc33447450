package ui

import (
	"context"
	"fmt"
)

func (u *UI) packingMenu(ctx context.Context) error {
	for {
		u.title("--- Manage Packing List ---")
		fmt.Fprintln(u.out, "1. Add Item")
		fmt.Fprintln(u.out, "2. View Items")
		fmt.Fprintln(u.out, "3. Update Item")
		fmt.Fprintln(u.out, "4. Toggle Packed")
		fmt.Fprintln(u.out, "5. Delete Item")
		fmt.Fprintln(u.out, "6. Back")

		choice, err := u.promptLine("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.addItem(ctx)
		case "2":
			err = u.viewItems(ctx)
		case "3":
			err = u.updateItem(ctx)
		case "4":
			err = u.toggleItem(ctx)
		case "5":
			err = u.deleteItem(ctx)
		case "6":
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

func (u *UI) addItem(ctx context.Context) error {
	id, err := u.promptID("Item ID: ")
	if err != nil {
		return err
	}
	tripID, err := u.promptRequired("Trip ID: ")
	if err != nil {
		return err
	}
	name, err := u.promptRequired("Item name: ")
	if err != nil {
		return err
	}
	quantity, err := u.promptRequired("Quantity: ")
	if err != nil {
		return err
	}
	row, cerr := u.packing.Create(ctx, id, tripID, name, quantity)
	if cerr != nil {
		return u.report(cerr)
	}
	u.showOK("Item %s (%s x%d) added for trip %s.", row.ID, row.Item.Name, row.Item.Quantity, row.Item.TripID)
	return nil
}

func (u *UI) viewItems(ctx context.Context) error {
	rows, err := u.packing.List(ctx)
	if err != nil {
		return u.report(err)
	}
	u.renderPacking(rows)
	return nil
}

func (u *UI) updateItem(ctx context.Context) error {
	id, err := u.promptID("Item ID to update: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "Leave a field blank to keep its current value.")
	tripID, err := u.promptLine("New trip ID: ")
	if err != nil {
		return err
	}
	name, err := u.promptLine("New item name: ")
	if err != nil {
		return err
	}
	quantity, err := u.promptLine("New quantity: ")
	if err != nil {
		return err
	}
	row, uerr := u.packing.Update(ctx, id, tripID, name, quantity)
	if uerr != nil {
		return u.report(uerr)
	}
	u.showOK("Item %s updated.", row.ID)
	return nil
}

func (u *UI) toggleItem(ctx context.Context) error {
	id, err := u.promptID("Item ID to toggle: ")
	if err != nil {
		return err
	}
	row, terr := u.packing.TogglePacked(ctx, id)
	if terr != nil {
		return u.report(terr)
	}
	state := "unpacked"
	if row.Item.Packed {
		state = "packed"
	}
	u.showOK("Item %s marked %s.", row.ID, state)
	return nil
}

func (u *UI) deleteItem(ctx context.Context) error {
	id, err := u.promptID("Item ID to delete: ")
	if err != nil {
		return err
	}
	if derr := u.packing.Delete(ctx, id); derr != nil {
		return u.report(derr)
	}
	u.showOK("Item %s deleted.", id)
	return nil
}
