package ui

import (
	"fmt"
	"io"
	"strings"

	"viaggio/internal/core"
)

// promptLine prints the prompt and reads one trimmed line. It returns
// errQuit when the input stream ends.
func (u *UI) promptLine(prompt string) (string, error) {
	fmt.Fprint(u.out, prompt)
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil && err != io.EOF {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(u.in.Text()), nil
}

// promptRequired re-asks until the line is non-blank.
func (u *UI) promptRequired(prompt string) (string, error) {
	for {
		s, err := u.promptLine(prompt)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		u.showError(fmt.Errorf("a value is required"))
	}
}

// promptDate re-asks until the line parses as YYYY-MM-DD.
func (u *UI) promptDate(prompt string) (string, error) {
	for {
		s, err := u.promptRequired(prompt)
		if err != nil {
			return "", err
		}
		if _, perr := core.ParseDate(s); perr != nil {
			u.showError(perr)
			continue
		}
		return s, nil
	}
}

// promptAmount re-asks until the line parses as a money amount.
func (u *UI) promptAmount(prompt string) (string, error) {
	for {
		s, err := u.promptRequired(prompt)
		if err != nil {
			return "", err
		}
		if _, perr := core.ParseAmountToCents(s); perr != nil {
			u.showError(perr)
			continue
		}
		return s, nil
	}
}

// promptID re-asks until the line is a well-formed record id.
func (u *UI) promptID(prompt string) (string, error) {
	for {
		s, err := u.promptRequired(prompt)
		if err != nil {
			return "", err
		}
		if _, perr := core.CanonicalID(s); perr != nil {
			u.showError(perr)
			continue
		}
		return s, nil
	}
}
