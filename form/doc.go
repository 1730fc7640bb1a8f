// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form orchestrates one contribution session.

A Session owns the form values. Input components never touch the session
directly: each is handed a Binding scoped to its own subtree.

	s := form.NewSession("jeju", apiClient,
		form.WithOnSuccess(func(r *models.ContributionResponse) { closePanel() }),
		form.WithOnError(func(err error) { slog.Error("submit failed", "error", err) }),
	)
	in := form.NewInputs(s)
	in.Score.Select(7)
	in.Cafe.SetLaptopFriendly(true)
	resp, err := s.Submit(ctx)

# States

	Editing -> Validating -> Submitting -> Success
	                      \-> Editing      \-> Failed -> Editing

Validation errors and empty payloads return to Editing without sending
anything. A failed submission also returns to Editing with every value kept;
it is not retried. Success is terminal.

Close aborts an in-flight submission through its context.
*/
package form
