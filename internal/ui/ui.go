// Package ui is the interactive console for the planner. It owns all
// prompting and rendering; every decision comes from structured results
// and sentinel errors returned by the services layer.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"viaggio/internal/services"
	"viaggio/internal/storage"
)

// UI drives the menu loop against the five services.
type UI struct {
	in  *bufio.Scanner
	out io.Writer

	trips     *services.TripService
	itinerary *services.ItineraryService
	expenses  *services.ExpenseService
	packing   *services.PackingService
	summary   *services.SummaryService
}

func New(in io.Reader, out io.Writer,
	trips *services.TripService,
	itinerary *services.ItineraryService,
	expenses *services.ExpenseService,
	packing *services.PackingService,
	summary *services.SummaryService,
) *UI {
	return &UI{
		in:        bufio.NewScanner(in),
		out:       out,
		trips:     trips,
		itinerary: itinerary,
		expenses:  expenses,
		packing:   packing,
		summary:   summary,
	}
}

// errQuit unwinds the menu loop when input ends.
var errQuit = errors.New("quit")

// Run loops on the main menu until the user exits or input ends. The only
// error it returns is a fatal one, in practice corrupted storage.
func (u *UI) Run(ctx context.Context) error {
	for {
		u.title("--- Travel Itinerary Planner ---")
		fmt.Fprintln(u.out, "1. Manage Trips")
		fmt.Fprintln(u.out, "2. Manage Itinerary")
		fmt.Fprintln(u.out, "3. Track Expenses")
		fmt.Fprintln(u.out, "4. Manage Packing List")
		fmt.Fprintln(u.out, "5. Trip Summary")
		fmt.Fprintln(u.out, "6. Exit")

		choice, err := u.promptLine("Choose an option: ")
		if err != nil {
			return quietQuit(err)
		}

		var menuErr error
		switch choice {
		case "1":
			menuErr = u.tripsMenu(ctx)
		case "2":
			menuErr = u.itineraryMenu(ctx)
		case "3":
			menuErr = u.expensesMenu(ctx)
		case "4":
			menuErr = u.packingMenu(ctx)
		case "5":
			menuErr = u.showSummary(ctx)
		case "6":
			fmt.Fprintln(u.out, "Exiting the application. Goodbye!")
			return nil
		default:
			u.showError(errors.New("invalid option, please choose again"))
		}
		if menuErr != nil {
			return quietQuit(menuErr)
		}
	}
}

func quietQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// report renders a validation failure and keeps going; anything touching
// corrupted storage is fatal and propagates.
func (u *UI) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrCorrupted) {
		return err
	}
	u.showError(err)
	return nil
}
