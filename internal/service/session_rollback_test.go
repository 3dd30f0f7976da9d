package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferenc/hireflow/internal/classify"
	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/engine"
	"github.com/dferenc/hireflow/internal/generation"
	"github.com/dferenc/hireflow/internal/questionbank"
	"github.com/dferenc/hireflow/internal/repository"
	"github.com/dferenc/hireflow/internal/testutil"
)

// TestProcessTurn_PersistFailureRollsBack injects a write failure mid-save
// and verifies nothing of the turn was committed: no session row, no turns.
func TestProcessTurn_PersistFailureRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)

	bank, err := questionbank.Load()
	require.NoError(t, err)
	machine := engine.NewMachine(
		classify.NewPatternClassifier(),
		bank,
		&stubGenerator{},
		generation.NewFallbackGenerator(),
	)

	// The session insert fails before the turns are written.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: errors.New("disk full")}
	svc := NewConversationService(repo, uow, machine)

	_, err = svc.ProcessTurn(context.Background(), contract.NewTurnRequest("",
		"I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP"))
	require.Error(t, err)

	var terr *contract.TurnError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, contract.ErrPersistenceFailure, terr.Code)
	assert.True(t, terr.Retryable)

	list, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, list)

	var turnCount int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM turns`).Scan(&turnCount))
	assert.Equal(t, 0, turnCount)
}

// TestProcessTurn_PartialTurnWriteRollsBack fails on the turn insert after
// the session row was written inside the same transaction.
func TestProcessTurn_PartialTurnWriteRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)

	bank, err := questionbank.Load()
	require.NoError(t, err)
	machine := engine.NewMachine(
		classify.NewPatternClassifier(),
		bank,
		&stubGenerator{},
		generation.NewFallbackGenerator(),
	)

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewConversationService(repo, uow, machine)

	_, err = svc.ProcessTurn(context.Background(), contract.NewTurnRequest("",
		"I need to hire someone technical"))
	require.Error(t, err)

	list, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, list, "session row must roll back with the failed turn write")
}
