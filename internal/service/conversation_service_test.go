package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferenc/hireflow/internal/classify"
	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/engine"
	"github.com/dferenc/hireflow/internal/generation"
	"github.com/dferenc/hireflow/internal/llm"
	"github.com/dferenc/hireflow/internal/questionbank"
	"github.com/dferenc/hireflow/internal/repository"
	"github.com/dferenc/hireflow/internal/testutil"
)

// stubGenerator returns canned artifacts, or fails until its error budget
// runs out.
type stubGenerator struct {
	arts  *domain.Artifacts
	err   error
	failN int
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ domain.HiringContext) (*domain.Artifacts, error) {
	g.calls++
	if g.err != nil && (g.failN == 0 || g.calls <= g.failN) {
		return nil, g.err
	}
	if g.arts != nil {
		copied := *g.arts
		return &copied, nil
	}
	return &domain.Artifacts{JobDescription: "jd", Checklist: "cl", Timeline: "tl"}, nil
}

type convHarness struct {
	svc  ConversationService
	repo *repository.SQLiteSessionRepo
	gen  *stubGenerator
}

func newConvHarness(t *testing.T, gen *stubGenerator) *convHarness {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)

	bank, err := questionbank.Load()
	require.NoError(t, err)

	machine := engine.NewMachine(
		classify.NewPatternClassifier(),
		bank,
		gen,
		generation.NewFallbackGenerator(),
	)

	return &convHarness{
		svc:  NewConversationService(repo, uow, machine),
		repo: repo,
		gen:  gen,
	}
}

func TestProcessTurn_RichBriefCompletesImmediately(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseComplete, resp.Phase)
	assert.True(t, resp.Sufficient)
	assert.Empty(t, resp.Questions)
	require.NotNil(t, resp.Artifacts)
	assert.Equal(t, "jd", resp.Artifacts.JobDescription)

	saved, err := h.repo.GetByID(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseComplete, saved.Phase)
	require.NotNil(t, saved.Artifacts)
	// One user turn plus the assistant completion note.
	assert.Len(t, saved.Turns, 2)
}

func TestProcessTurn_VagueBriefAsksQuestions(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("", "I need to hire someone technical"))
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseAwaitingAnswer, resp.Phase)
	assert.False(t, resp.Sufficient)
	require.NotEmpty(t, resp.Questions)
	assert.LessOrEqual(t, len(resp.Questions), 3)
	assert.Nil(t, resp.Artifacts)

	saved, err := h.repo.GetByID(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingAnswer, saved.Phase)
	assert.NotEmpty(t, saved.AskedIDs)
}

func TestProcessTurn_AnswerAdvancesToComplete(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	first, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("", "I need to hire someone technical"))
	require.NoError(t, err)
	require.Equal(t, domain.PhaseAwaitingAnswer, first.Phase)

	second, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest(first.SessionID,
		"We're Series A, budget is $130k, need them in 6 weeks"))
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseComplete, second.Phase)
	require.NotNil(t, second.Artifacts)

	saved, err := h.repo.GetByID(ctx, second.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseComplete, saved.Phase)
	// Two user turns and two assistant turns.
	assert.Len(t, saved.Turns, 4)
}

func TestProcessTurn_EmptyInputReprompts(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("", "   "))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Reprompt)
	assert.Empty(t, resp.SessionID, "unsaved session should not hand out an id")

	list, err := h.repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, list, "nothing should be persisted for an empty first message")
}

func TestProcessTurn_EmptyInputOnExistingSession(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	first, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("", "I need to hire someone technical"))
	require.NoError(t, err)

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest(first.SessionID, ""))
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, resp.SessionID)
	assert.NotEmpty(t, resp.Reprompt)

	// The dropped turn must not appear in storage.
	saved, err := h.repo.GetByID(ctx, first.SessionID)
	require.NoError(t, err)
	assert.Len(t, saved.Turns, 2)
}

func TestProcessTurn_UnknownSession(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})

	_, err := h.svc.ProcessTurn(context.Background(), contract.NewTurnRequest("ghost", "hello"))
	require.Error(t, err)

	var terr *contract.TurnError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, contract.ErrSessionNotFound, terr.Code)
}

func TestProcessTurn_TerminalSessionRejected(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{})
	ctx := context.Background()

	done, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.NoError(t, err)
	require.Equal(t, domain.PhaseComplete, done.Phase)

	_, err = h.svc.ProcessTurn(ctx, contract.NewTurnRequest(done.SessionID, "one more thing"))
	require.Error(t, err)

	var terr *contract.TurnError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, contract.ErrInvariantViolation, terr.Code)
	assert.False(t, terr.Retryable)

	// The rejected turn is not persisted.
	saved, err := h.repo.GetByID(ctx, done.SessionID)
	require.NoError(t, err)
	assert.Len(t, saved.Turns, 2)
}

func TestProcessTurn_GenerationFailureIsRetryable(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{err: errors.New("model exploded")})
	ctx := context.Background()

	_, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.Error(t, err)

	var terr *contract.TurnError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, contract.ErrGenerationFailure, terr.Code)
	assert.True(t, terr.Retryable)

	// The session is saved mid-generation with the attempt recorded.
	list, err := h.repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)

	saved, err := h.repo.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseGenerating, saved.Phase)
	assert.Equal(t, 1, saved.GenerateTries)
}

func TestProcessTurn_TimeoutMapsToTimeoutCode(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{err: llm.ErrTimeout})

	_, err := h.svc.ProcessTurn(context.Background(), contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.Error(t, err)

	var terr *contract.TurnError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, contract.ErrGenerationTimeout, terr.Code)
}

func TestProcessTurn_DegradesAfterRetryBudget(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{err: errors.New("model down")})
	ctx := context.Background()

	_, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.Error(t, err)

	list, err := h.repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	// Second attempt fails too; third exhausts the budget and falls back.
	_, err = h.svc.ProcessTurn(ctx, contract.NewTurnRequest(id, "try again"))
	require.Error(t, err)

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest(id, "try again"))
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseDegradedComplete, resp.Phase)
	require.NotNil(t, resp.Artifacts)
	assert.True(t, resp.Artifacts.Degraded)

	saved, err := h.repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseDegradedComplete, saved.Phase)
}

func TestProcessTurn_RecoveryAfterOneFailure(t *testing.T) {
	h := newConvHarness(t, &stubGenerator{err: errors.New("blip"), failN: 1})
	ctx := context.Background()

	_, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.Error(t, err)

	list, err := h.repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)

	resp, err := h.svc.ProcessTurn(ctx, contract.NewTurnRequest(list[0].ID, "retry"))
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseComplete, resp.Phase)
	assert.False(t, resp.Artifacts.Degraded)
}
