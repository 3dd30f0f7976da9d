package repository

import (
	"context"

	"github.com/dferenc/hireflow/internal/domain"
)

// SessionSummary is a lightweight listing view of a session, carrying only
// what the session list needs.
type SessionSummary struct {
	ID        string
	Phase     domain.Phase
	LastScore float64
	TurnCount int
	Archived  bool
	UpdatedAt string
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// Save persists the session snapshot and any turns not yet stored.
	Save(ctx context.Context, s *domain.Session) error
	List(ctx context.Context, includeArchived bool) ([]SessionSummary, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
