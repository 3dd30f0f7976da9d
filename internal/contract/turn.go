package contract

import (
	"time"

	"github.com/dferenc/hireflow/internal/domain"
)

// TurnRequest carries one user message into the conversation service.
// SessionID empty means start a new session.
type TurnRequest struct {
	SessionID string
	Message   string
	Now       *time.Time
}

func NewTurnRequest(sessionID, message string) TurnRequest {
	return TurnRequest{
		SessionID: sessionID,
		Message:   message,
	}
}

// AskedQuestion is one question presented to the user, in priority order.
type AskedQuestion struct {
	ID     string
	Prompt string
}

// TurnResponse is the outcome of processing one conversation turn.
type TurnResponse struct {
	SessionID   string
	Phase       domain.Phase
	Score       float64
	Sufficient  bool
	Questions   []AskedQuestion
	Artifacts   *domain.Artifacts
	Reprompt    string
	GeneratedAt time.Time
}

type TurnErrorCode string

const (
	ErrExtractionFailure  TurnErrorCode = "EXTRACTION_FAILURE"
	ErrPersistenceFailure TurnErrorCode = "PERSISTENCE_FAILURE"
	ErrGenerationTimeout  TurnErrorCode = "GENERATION_TIMEOUT"
	ErrGenerationFailure  TurnErrorCode = "GENERATION_FAILURE"
	ErrInvariantViolation TurnErrorCode = "INVARIANT_VIOLATION"
	ErrSessionNotFound    TurnErrorCode = "SESSION_NOT_FOUND"
	ErrInternalError      TurnErrorCode = "INTERNAL_ERROR"
)

type TurnError struct {
	Code    TurnErrorCode
	Message string
	// Retryable reports whether re-sending the same request can succeed.
	Retryable bool
}

func (e *TurnError) Error() string {
	return string(e.Code) + ": " + e.Message
}
