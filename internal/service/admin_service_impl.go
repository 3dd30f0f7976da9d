package service

import (
	"context"
	"fmt"

	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/repository"
)

type adminService struct {
	sessions repository.SessionRepo
}

func NewAdminService(sessions repository.SessionRepo) AdminService {
	return &adminService{sessions: sessions}
}

func (s *adminService) List(ctx context.Context, includeArchived bool) ([]contract.SessionListItem, error) {
	summaries, err := s.sessions.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	items := make([]contract.SessionListItem, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, contract.SessionListItem{
			ID:        sum.ID,
			Phase:     sum.Phase,
			Score:     sum.LastScore,
			TurnCount: sum.TurnCount,
			Archived:  sum.Archived,
			UpdatedAt: sum.UpdatedAt,
		})
	}
	return items, nil
}

func (s *adminService) Get(ctx context.Context, id string) (*contract.SessionDetail, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &contract.SessionDetail{
		ID:        sess.ID,
		Phase:     sess.Phase,
		Score:     sess.LastScore,
		Context:   sess.Context,
		AskedIDs:  sess.AskedIDs,
		Turns:     sess.Turns,
		Artifacts: sess.Artifacts,
		Archived:  sess.Archived,
	}, nil
}

func (s *adminService) Archive(ctx context.Context, id string) error {
	return s.sessions.Archive(ctx, id)
}

func (s *adminService) Unarchive(ctx context.Context, id string) error {
	return s.sessions.Unarchive(ctx, id)
}

func (s *adminService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		sess, err := s.sessions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !sess.Archived {
			return fmt.Errorf("session must be archived before deletion (use --force to override)")
		}
	}
	return s.sessions.Delete(ctx, id)
}
