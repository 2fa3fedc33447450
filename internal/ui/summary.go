package ui

import "context"

func (u *UI) showSummary(ctx context.Context) error {
	u.title("--- Trip Summary ---")
	s, err := u.summary.Build(ctx)
	if err != nil {
		return u.report(err)
	}
	u.renderSummary(s)
	return nil
}
