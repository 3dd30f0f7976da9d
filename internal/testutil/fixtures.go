package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dferenc/hireflow/internal/domain"
)

// SessionOption customizes a test session.
type SessionOption func(*domain.Session)

// NewTestSession builds a session in the ANALYZING phase with an empty
// context, suitable for repository and service tests.
func NewTestSession(opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Session{
		ID:        uuid.NewString(),
		Phase:     domain.PhaseAnalyzing,
		Context:   domain.NewHiringContext(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPhase sets the session phase.
func WithPhase(p domain.Phase) SessionOption {
	return func(s *domain.Session) { s.Phase = p }
}

// WithKnownSlot marks a context slot as known with the given value.
func WithKnownSlot(name domain.SlotName, value string) SessionOption {
	return func(s *domain.Session) {
		s.Context.Slots[name] = domain.Slot{State: domain.SlotKnown, Value: value, Confidence: 0.8}
	}
}

// WithTurn appends a conversation turn.
func WithTurn(role domain.TurnRole, text string) SessionOption {
	return func(s *domain.Session) {
		s.Turns = append(s.Turns, domain.Turn{
			ID:        uuid.NewString(),
			SessionID: s.ID,
			Role:      role,
			Text:      text,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		})
	}
}

// WithAsked records question ids as already asked.
func WithAsked(ids ...string) SessionOption {
	return func(s *domain.Session) { s.RecordAsked(ids) }
}

// WithArtifacts attaches generated artifacts.
func WithArtifacts(a *domain.Artifacts) SessionOption {
	return func(s *domain.Session) { s.Artifacts = a }
}

// WithArchived marks the session archived.
func WithArchived() SessionOption {
	return func(s *domain.Session) { s.Archived = true }
}
