// Package generation produces the final hiring artifacts from a finished
// context snapshot. The primary generator delegates to a language model;
// the fallback composer produces deterministic placeholder artifacts when
// the model is unavailable or out of retry budget.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/llm"
)

// LLMGenerator requests structured hiring artifacts from a language model:
// one call for the core artifacts, one for the interview guide. The response
// content is treated as opaque text; only its JSON shape is validated.
type LLMGenerator struct {
	client llm.LLMClient
}

// NewLLMGenerator creates a generator backed by the given LLM client.
func NewLLMGenerator(client llm.LLMClient) *LLMGenerator {
	return &LLMGenerator{client: client}
}

// artifactsPayload mirrors the JSON object the model is asked to emit.
type artifactsPayload struct {
	JobDescription string `json:"job_description"`
	Checklist      string `json:"checklist"`
	Timeline       string `json:"timeline"`
}

func validateArtifacts(p artifactsPayload) error {
	if strings.TrimSpace(p.JobDescription) == "" {
		return fmt.Errorf("missing job_description")
	}
	if strings.TrimSpace(p.Checklist) == "" {
		return fmt.Errorf("missing checklist")
	}
	if strings.TrimSpace(p.Timeline) == "" {
		return fmt.Errorf("missing timeline")
	}
	return nil
}

func (g *LLMGenerator) Generate(ctx context.Context, hc domain.HiringContext) (*domain.Artifacts, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskArtifacts,
		SystemPrompt: artifactsSystemPrompt,
		UserPrompt:   buildArtifactsPrompt(hc),
	})
	if err != nil {
		return nil, fmt.Errorf("generating artifacts: %w", err)
	}

	payload, err := llm.ExtractJSON[artifactsPayload](resp.Text, validateArtifacts)
	if err != nil {
		return nil, fmt.Errorf("parsing artifacts: %w", err)
	}

	return &domain.Artifacts{
		JobDescription: payload.JobDescription,
		Checklist:      payload.Checklist,
		Timeline:       payload.Timeline,
		InterviewGuide: g.interviewGuide(ctx, hc),
	}, nil
}

// interviewGuide requests an interview guide in a second call. The guide
// enriches the core artifacts rather than gating them, so a failed or empty
// response falls back to the template guide instead of failing generation.
func (g *LLMGenerator) interviewGuide(ctx context.Context, hc domain.HiringContext) string {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInterviewGuide,
		SystemPrompt: interviewSystemPrompt,
		UserPrompt:   buildInterviewPrompt(hc),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return fallbackInterviewGuide(hc)
	}
	return resp.Text
}
