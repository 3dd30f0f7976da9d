package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dferenc/hireflow/internal/classify"
	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/db"
	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/engine"
	"github.com/dferenc/hireflow/internal/llm"
	"github.com/dferenc/hireflow/internal/repository"
)

// emptyInputReprompt is shown when a message carries nothing to extract.
const emptyInputReprompt = "Tell me a bit about the role you're hiring for — even a rough description helps."

type conversationService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	machine  *engine.Machine
	observer UseCaseObserver
}

func NewConversationService(
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	machine *engine.Machine,
	observers ...UseCaseObserver,
) ConversationService {
	return &conversationService{
		sessions: sessions,
		uow:      uow,
		machine:  machine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *conversationService) ProcessTurn(ctx context.Context, req contract.TurnRequest) (*contract.TurnResponse, error) {
	start := time.Now()
	resp, err := s.processTurn(ctx, req, start)

	sessionID := req.SessionID
	if resp != nil {
		sessionID = resp.SessionID
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "process_turn",
		SessionID: sessionID,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
	})
	return resp, err
}

func (s *conversationService) processTurn(ctx context.Context, req contract.TurnRequest, start time.Time) (*contract.TurnResponse, error) {
	now := start.UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	sess, isNew, err := s.loadOrCreate(ctx, req.SessionID, now)
	if err != nil {
		return nil, err
	}

	input := strings.TrimSpace(req.Message)
	if input != "" {
		sess.Turns = append(sess.Turns, domain.Turn{
			ID:        uuid.NewString(),
			SessionID: sess.ID,
			Role:      domain.TurnUser,
			Text:      input,
			CreatedAt: now,
		})
	}

	result, err := s.machine.ProcessTurn(ctx, sess, input)
	if err != nil {
		return s.handleTurnError(ctx, sess, isNew, now, err)
	}

	s.appendAssistantTurn(sess, result, now)
	sess.UpdatedAt = now

	if err := s.persist(ctx, sess, isNew); err != nil {
		return nil, &contract.TurnError{
			Code:      contract.ErrPersistenceFailure,
			Message:   "could not save the session: " + err.Error(),
			Retryable: true,
		}
	}

	return buildTurnResponse(sess, result, now), nil
}

// handleTurnError maps engine errors onto the contract taxonomy. Persistence
// depends on the class of failure: invariant violations and extraction
// misses leave the stored session untouched, while a failed generation
// attempt is saved so the retry budget survives the process.
func (s *conversationService) handleTurnError(ctx context.Context, sess *domain.Session, isNew bool, now time.Time, err error) (*contract.TurnResponse, error) {
	if engine.IsInvariant(err) {
		return nil, &contract.TurnError{
			Code:    contract.ErrInvariantViolation,
			Message: err.Error(),
		}
	}

	if errors.Is(err, classify.ErrEmptyInput) {
		// Nothing extracted, nothing persisted. The user turn is dropped
		// and the session re-prompts from its prior state. An unsaved new
		// session reports no id so the client starts over.
		id := sess.ID
		if isNew {
			id = ""
		}
		return &contract.TurnResponse{
			SessionID:   id,
			Phase:       sess.Phase,
			Score:       sess.LastScore,
			Reprompt:    emptyInputReprompt,
			GeneratedAt: now,
		}, nil
	}

	if errors.Is(err, engine.ErrGenerationFailed) {
		// The attempt counts: save the session in GENERATING so a later
		// turn resumes generation instead of replaying the conversation.
		sess.UpdatedAt = now
		if perr := s.persist(ctx, sess, isNew); perr != nil {
			return nil, &contract.TurnError{
				Code:      contract.ErrPersistenceFailure,
				Message:   "could not save the session: " + perr.Error(),
				Retryable: true,
			}
		}

		code := contract.ErrGenerationFailure
		if errors.Is(err, llm.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			code = contract.ErrGenerationTimeout
		}
		return nil, &contract.TurnError{
			Code:      code,
			Message:   err.Error(),
			Retryable: true,
		}
	}

	return nil, &contract.TurnError{
		Code:    contract.ErrInternalError,
		Message: err.Error(),
	}
}

func (s *conversationService) loadOrCreate(ctx context.Context, id string, now time.Time) (*domain.Session, bool, error) {
	if id == "" {
		return &domain.Session{
			ID:        uuid.NewString(),
			Phase:     domain.PhaseAnalyzing,
			Context:   domain.NewHiringContext(),
			CreatedAt: now,
			UpdatedAt: now,
		}, true, nil
	}

	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, &contract.TurnError{
				Code:    contract.ErrSessionNotFound,
				Message: "no session with id " + id,
			}
		}
		return nil, false, &contract.TurnError{
			Code:      contract.ErrPersistenceFailure,
			Message:   "could not load the session: " + err.Error(),
			Retryable: true,
		}
	}
	return sess, false, nil
}

// appendAssistantTurn records what the assistant did this turn, so the
// stored history reads as a conversation.
func (s *conversationService) appendAssistantTurn(sess *domain.Session, result *engine.StepResult, now time.Time) {
	var text string
	switch {
	case len(result.Questions) > 0:
		prompts := make([]string, len(result.Questions))
		for i, q := range result.Questions {
			prompts[i] = q.Prompt
		}
		text = strings.Join(prompts, "\n")
	case result.Artifacts != nil:
		text = "Generated the job description, checklist, and timeline."
	default:
		return
	}

	sess.Turns = append(sess.Turns, domain.Turn{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Role:      domain.TurnAssistant,
		Text:      text,
		CreatedAt: now,
	})
}

// persist writes the session snapshot and turns in one transaction.
func (s *conversationService) persist(ctx context.Context, sess *domain.Session, isNew bool) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		if isNew {
			return repo.Create(ctx, sess)
		}
		return repo.Save(ctx, sess)
	})
}

func buildTurnResponse(sess *domain.Session, result *engine.StepResult, now time.Time) *contract.TurnResponse {
	resp := &contract.TurnResponse{
		SessionID:   sess.ID,
		Phase:       result.Phase,
		Score:       result.Completeness.Score,
		Sufficient:  result.Completeness.Sufficient,
		Artifacts:   result.Artifacts,
		GeneratedAt: now,
	}
	for _, q := range result.Questions {
		resp.Questions = append(resp.Questions, contract.AskedQuestion{ID: q.ID, Prompt: q.Prompt})
	}
	return resp
}
