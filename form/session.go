// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/monthlog/models"
	"github.com/danielhkuo/monthlog/schema"
)

var (
	ErrEmptyContribution  = errors.New("contribution has no answered fields")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrNotEditable        = errors.New("form is not editable while submitting")
	ErrSessionClosed      = errors.New("contribution session is closed")
)

// State of a contribution session
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Submitter sends an assembled payload for the city with the given slug.
// *client.Client satisfies it.
type Submitter interface {
	SubmitContribution(ctx context.Context, citySlug string, payload models.ContributionPayload) (*models.ContributionResponse, error)
}

// Session owns the form state for one contribution to one city
type Session struct {
	mu        sync.Mutex
	citySlug  string
	values    schema.Contribution
	state     State
	closed    bool
	cancel    context.CancelFunc
	submitter Submitter
	onSuccess func(*models.ContributionResponse)
	onError   func(error)
	logger    *slog.Logger
}

type Option func(*Session)

// WithValues pre-populates the form
func WithValues(c schema.Contribution) Option {
	return func(s *Session) { s.values = c }
}

// WithOnSuccess registers a callback fired once the contribution is accepted
func WithOnSuccess(fn func(*models.ContributionResponse)) Option {
	return func(s *Session) { s.onSuccess = fn }
}

// WithOnError registers a callback fired when a submission fails
func WithOnError(fn func(error)) Option {
	return func(s *Session) { s.onError = fn }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// NewSession starts an editing session with an unanswered form
func NewSession(citySlug string, submitter Submitter, opts ...Option) *Session {
	s := &Session{
		citySlug:  citySlug,
		values:    schema.DefaultContribution(),
		state:     StateEditing,
		submitter: submitter,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Values returns a copy of the whole form
func (s *Session) Values() schema.Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyContribution(s.values)
}

// Submit validates the form, diffs it against the defaults and sends the
// payload. On failure the session returns to editing with its values intact.
func (s *Session) Submit(ctx context.Context) (*models.ContributionResponse, error) {
	s.mu.Lock()
	switch {
	case s.closed || s.state == StateSuccess:
		s.mu.Unlock()
		return nil, ErrSessionClosed
	case s.state != StateEditing:
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.state = StateValidating
	values := copyContribution(s.values)
	s.mu.Unlock()

	if err := schema.Validate(values); err != nil {
		s.setState(StateEditing)
		return nil, err
	}

	payload, err := values.Payload()
	if err != nil {
		s.setState(StateEditing)
		return nil, err
	}
	if len(payload) == 0 {
		s.setState(StateEditing)
		return nil, ErrEmptyContribution
	}

	s.mu.Lock()
	if s.closed {
		s.state = StateEditing
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StateSubmitting
	s.mu.Unlock()

	s.logger.Info("submitting contribution", "city", s.citySlug, "categories", payload.Categories())
	resp, err := s.submitter.SubmitContribution(ctx, s.citySlug, payload)
	cancel()

	s.mu.Lock()
	s.cancel = nil
	closed := s.closed
	if err != nil {
		s.state = StateFailed
		s.mu.Unlock()

		s.logger.Error("contribution failed", "city", s.citySlug, "error", err)
		if s.onError != nil && !closed {
			s.onError(err)
		}
		s.setState(StateEditing)
		return nil, fmt.Errorf("failed to submit contribution: %w", err)
	}
	s.state = StateSuccess
	s.mu.Unlock()

	s.logger.Info("contribution accepted", "city", s.citySlug, "contribution_id", resp.ContributionID)
	if s.onSuccess != nil && !closed {
		s.onSuccess(resp)
	}
	return resp, nil
}

// Close tears the session down and aborts an in-flight submission.
// Callbacks do not fire after Close.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// editable reports why the form cannot be changed right now, if it cannot.
// Caller holds s.mu.
func (s *Session) editable() error {
	if s.closed || s.state == StateSuccess {
		return ErrSessionClosed
	}
	if s.state != StateEditing {
		return ErrNotEditable
	}
	return nil
}

func copyContribution(c schema.Contribution) schema.Contribution {
	schema.CoworkingSpaceField.Set(&c, schema.CoworkingSpaceField.Get(&c))
	schema.MembershipField.Set(&c, schema.MembershipField.Get(&c))
	return c
}
