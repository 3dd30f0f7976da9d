package contract

import "github.com/dferenc/hireflow/internal/domain"

// SessionListItem is one row in the session list view.
type SessionListItem struct {
	ID        string
	Phase     domain.Phase
	Score     float64
	TurnCount int
	Archived  bool
	UpdatedAt string
}

// SessionDetail is the full view of one session for inspection.
type SessionDetail struct {
	ID        string
	Phase     domain.Phase
	Score     float64
	Context   domain.HiringContext
	AskedIDs  []string
	Turns     []domain.Turn
	Artifacts *domain.Artifacts
	Archived  bool
}
