package service

import (
	"context"

	"github.com/dferenc/hireflow/internal/contract"
)

type ConversationService interface {
	// ProcessTurn advances a session by one user message. An empty
	// SessionID starts a new session.
	ProcessTurn(ctx context.Context, req contract.TurnRequest) (*contract.TurnResponse, error)
}

type AdminService interface {
	List(ctx context.Context, includeArchived bool) ([]contract.SessionListItem, error)
	Get(ctx context.Context, id string) (*contract.SessionDetail, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}
