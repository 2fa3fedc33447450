package ui

import (
	"context"
	"fmt"
)

func (u *UI) expensesMenu(ctx context.Context) error {
	for {
		u.title("--- Track Expenses ---")
		fmt.Fprintln(u.out, "1. Add Expense")
		fmt.Fprintln(u.out, "2. View Expenses")
		fmt.Fprintln(u.out, "3. Update Expense")
		fmt.Fprintln(u.out, "4. Delete Expense")
		fmt.Fprintln(u.out, "5. Back")

		choice, err := u.promptLine("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.addExpense(ctx)
		case "2":
			err = u.viewExpenses(ctx)
		case "3":
			err = u.updateExpense(ctx)
		case "4":
			err = u.deleteExpense(ctx)
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

func (u *UI) addExpense(ctx context.Context) error {
	id, err := u.promptID("Expense ID: ")
	if err != nil {
		return err
	}
	tripID, err := u.promptRequired("Trip ID: ")
	if err != nil {
		return err
	}
	amount, err := u.promptAmount("Amount: ")
	if err != nil {
		return err
	}
	category, err := u.promptRequired("Category: ")
	if err != nil {
		return err
	}
	description, err := u.promptRequired("Description: ")
	if err != nil {
		return err
	}
	row, cerr := u.expenses.Create(ctx, id, tripID, amount, category, description)
	if cerr != nil {
		return u.report(cerr)
	}
	u.showOK("Expense %s of %s recorded for trip %s.", row.ID, row.Expense.Amount, row.Expense.TripID)
	return nil
}

func (u *UI) viewExpenses(ctx context.Context) error {
	rows, err := u.expenses.List(ctx)
	if err != nil {
		return u.report(err)
	}
	u.renderExpenses(rows)
	return nil
}

func (u *UI) updateExpense(ctx context.Context) error {
	id, err := u.promptID("Expense ID to update: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(u.out, "Leave a field blank to keep its current value.")
	tripID, err := u.promptLine("New trip ID: ")
	if err != nil {
		return err
	}
	amount, err := u.promptLine("New amount: ")
	if err != nil {
		return err
	}
	category, err := u.promptLine("New category: ")
	if err != nil {
		return err
	}
	description, err := u.promptLine("New description: ")
	if err != nil {
		return err
	}
	row, uerr := u.expenses.Update(ctx, id, tripID, amount, category, description)
	if uerr != nil {
		return u.report(uerr)
	}
	u.showOK("Expense %s updated.", row.ID)
	return nil
}

func (u *UI) deleteExpense(ctx context.Context) error {
	id, err := u.promptID("Expense ID to delete: ")
	if err != nil {
		return err
	}
	if derr := u.expenses.Delete(ctx, id); derr != nil {
		return u.report(derr)
	}
	u.showOK("Expense %s deleted.", id)
	return nil
}
