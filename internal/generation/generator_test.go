package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/llm"
)

func knownContext() domain.HiringContext {
	hc := domain.NewHiringContext()
	hc.Slots[domain.SlotRoleType] = domain.Slot{State: domain.SlotKnown, Value: "engineering", Confidence: 0.9}
	hc.Slots[domain.SlotCompanyStage] = domain.Slot{State: domain.SlotKnown, Value: "series_a", Confidence: 0.8}
	hc.Slots[domain.SlotSeniority] = domain.Slot{State: domain.SlotKnown, Value: "senior", Confidence: 0.8}
	hc.Slots[domain.SlotBudget] = domain.Slot{State: domain.SlotKnown, Value: "$140k", Confidence: 0.9}
	hc.Slots[domain.SlotUrgencyLevel] = domain.Slot{State: domain.SlotKnown, Value: "high", Confidence: 0.8}
	return hc
}

func fakeOllama(t *testing.T, handler func(prompt string) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": handler(req.Prompt),
		})
	}))
}

func newTestGenerator(endpoint string) *LLMGenerator {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return NewLLMGenerator(llm.NewOllamaClient(cfg, llm.NoopObserver{}))
}

func TestLLMGenerator_Generate(t *testing.T) {
	var seenPrompt string
	srv := fakeOllama(t, func(prompt string) string {
		if strings.Contains(prompt, "interview guide") {
			return "# Interview Guide from model"
		}
		seenPrompt = prompt
		return `{"job_description":"# Senior Engineer","checklist":"- [ ] source","timeline":"6 weeks"}`
	})
	defer srv.Close()

	arts, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	require.NoError(t, err)

	assert.Equal(t, "# Senior Engineer", arts.JobDescription)
	assert.Equal(t, "- [ ] source", arts.Checklist)
	assert.Equal(t, "6 weeks", arts.Timeline)
	assert.Equal(t, "# Interview Guide from model", arts.InterviewGuide)
	assert.False(t, arts.Degraded)

	// The briefing carries the known slots and the derived skill list.
	assert.Contains(t, seenPrompt, "Role: engineering")
	assert.Contains(t, seenPrompt, "Budget: $140k")
	assert.Contains(t, seenPrompt, "Required skills")
	assert.NotContains(t, seenPrompt, "Location")
}

func TestLLMGenerator_InterviewGuideFallsBack(t *testing.T) {
	// An empty interview response must not fail generation; the template
	// guide stands in.
	srv := fakeOllama(t, func(prompt string) string {
		if strings.Contains(prompt, "interview guide") {
			return ""
		}
		return `{"job_description":"jd","checklist":"cl","timeline":"tl"}`
	})
	defer srv.Close()

	arts, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	require.NoError(t, err)
	assert.Contains(t, arts.InterviewGuide, "# Interview Guide: Senior Engineer")
	assert.Contains(t, arts.InterviewGuide, "## Evaluation")
}

func TestLLMGenerator_CodeFencedResponse(t *testing.T) {
	srv := fakeOllama(t, func(string) string {
		return "```json\n{\"job_description\":\"jd\",\"checklist\":\"cl\",\"timeline\":\"tl\"}\n```"
	})
	defer srv.Close()

	arts, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	require.NoError(t, err)
	assert.Equal(t, "jd", arts.JobDescription)
}

func TestLLMGenerator_MissingField(t *testing.T) {
	srv := fakeOllama(t, func(string) string {
		return `{"job_description":"jd","checklist":"cl"}`
	})
	defer srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Contains(t, err.Error(), "timeline")
}

func TestLLMGenerator_NonJSONResponse(t *testing.T) {
	srv := fakeOllama(t, func(string) string {
		return "Sure! Here is your job description as plain text."
	})
	defer srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestLLMGenerator_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestGenerator(srv.URL).Generate(context.Background(), knownContext())
	require.Error(t, err)
}

func TestBuildArtifactsPrompt_AmbiguousSlotFlagged(t *testing.T) {
	hc := domain.NewHiringContext()
	hc.Slots[domain.SlotCompanyStage] = domain.Slot{State: domain.SlotAmbiguous, Value: "growth", Confidence: 0.4}

	prompt := buildArtifactsPrompt(hc)
	assert.Contains(t, prompt, "Company stage: unclear")
	assert.Contains(t, prompt, "candidate reading: growth")
}

func TestBuildArtifactsPrompt_SlotOrderStable(t *testing.T) {
	hc := knownContext()
	first := buildArtifactsPrompt(hc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, buildArtifactsPrompt(hc))
	}
	assert.Less(t, strings.Index(first, "Role:"), strings.Index(first, "Budget:"))
}
