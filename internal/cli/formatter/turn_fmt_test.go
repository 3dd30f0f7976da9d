package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/domain"
)

func TestFormatTurnResponse_Questions(t *testing.T) {
	resp := &contract.TurnResponse{
		SessionID: "abc",
		Phase:     domain.PhaseAwaitingAnswer,
		Score:     0.45,
		Questions: []contract.AskedQuestion{
			{ID: "stage.which", Prompt: "What stage is your company at?"},
			{ID: "budget.range", Prompt: "What is the compensation range?"},
		},
	}

	out := FormatTurnResponse(resp)

	assert.Contains(t, out, "A FEW QUESTIONS FIRST")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "What stage is your company at?")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "What is the compensation range?")
	assert.Contains(t, out, "45%")
}

func TestFormatTurnResponse_Reprompt(t *testing.T) {
	resp := &contract.TurnResponse{
		Reprompt: "Tell me a bit about the role you want to fill.",
	}

	out := FormatTurnResponse(resp)

	assert.Contains(t, out, "Tell me a bit about the role")
	assert.NotContains(t, out, "QUESTIONS")
}

func TestFormatTurnResponse_Artifacts(t *testing.T) {
	resp := &contract.TurnResponse{
		Phase: domain.PhaseComplete,
		Score: 0.8,
		Artifacts: &domain.Artifacts{
			JobDescription: "# Senior Engineer",
			Checklist:      "- [ ] Write job post",
			Timeline:       "Weeks 1-2: Sourcing",
			InterviewGuide: "## Key Questions",
		},
	}

	out := FormatTurnResponse(resp)

	assert.Contains(t, out, "JOB DESCRIPTION")
	assert.Contains(t, out, "# Senior Engineer")
	assert.Contains(t, out, "HIRING CHECKLIST")
	assert.Contains(t, out, "- [ ] Write job post")
	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "Weeks 1-2: Sourcing")
	assert.Contains(t, out, "INTERVIEW GUIDE")
	assert.Contains(t, out, "## Key Questions")
	assert.NotContains(t, out, "templates")
}

func TestFormatArtifacts_NoGuideSkipsSection(t *testing.T) {
	out := FormatArtifacts(&domain.Artifacts{
		JobDescription: "jd",
		Checklist:      "cl",
		Timeline:       "tl",
	})

	assert.NotContains(t, out, "INTERVIEW GUIDE")
}

func TestFormatArtifacts_DegradedShowsNotice(t *testing.T) {
	out := FormatArtifacts(&domain.Artifacts{
		JobDescription: "jd",
		Checklist:      "cl",
		Timeline:       "tl",
		Degraded:       true,
	})

	assert.Contains(t, out, "Generated from templates")
}

func TestFormatTurnError_RetryableShowsHint(t *testing.T) {
	out := FormatTurnError(&contract.TurnError{
		Code:      contract.ErrGenerationTimeout,
		Message:   "artifact generation timed out",
		Retryable: true,
	})

	assert.Contains(t, out, "artifact generation timed out")
	assert.Contains(t, out, "retry")
}

func TestFormatTurnError_NonRetryable(t *testing.T) {
	out := FormatTurnError(&contract.TurnError{
		Code:    contract.ErrSessionNotFound,
		Message: "session not found",
	})

	assert.Contains(t, out, "session not found")
	assert.NotContains(t, out, "retry")
}
