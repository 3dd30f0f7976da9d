// Package questionbank loads the static clarification question bank.
// The bank is read once at process start and is immutable afterwards;
// lookups are keyed by (role_type, company_stage).
package questionbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dferenc/hireflow/internal/domain"
)

//go:embed questions.json
var defaultBankJSON []byte

type bankFile struct {
	Questions []domain.Question `json:"questions"`
}

// Bank is an immutable set of candidate clarification questions.
type Bank struct {
	questions []domain.Question
	byID      map[string]domain.Question
}

// Load returns the embedded default bank, or the bank from the file named
// by the HIREFLOW_QUESTIONS env var when set.
func Load() (*Bank, error) {
	if path := os.Getenv("HIREFLOW_QUESTIONS"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading question bank %s: %w", path, err)
		}
		return Parse(data)
	}
	return Parse(defaultBankJSON)
}

// Parse decodes and validates a question bank from JSON.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding question bank: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}

	byID := make(map[string]domain.Question, len(f.Questions))
	for i, q := range f.Questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: missing id", i)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}
		if q.Prompt == "" {
			return nil, fmt.Errorf("question %q: missing prompt", q.ID)
		}
		if len(q.TargetSlots) == 0 {
			return nil, fmt.Errorf("question %q: no target slots", q.ID)
		}
		if q.InfoGain < 0 || q.InfoGain > 1 {
			return nil, fmt.Errorf("question %q: info_gain must be in [0,1], got %v", q.ID, q.InfoGain)
		}
		if q.Burden < 0 || q.Burden > 1 {
			return nil, fmt.Errorf("question %q: burden must be in [0,1], got %v", q.ID, q.Burden)
		}
		for _, r := range q.Roles {
			if !domain.ValidRoleTypes[string(r)] {
				return nil, fmt.Errorf("question %q: unknown role %q", q.ID, r)
			}
		}
		for _, s := range q.Stages {
			if !domain.ValidCompanyStages[string(s)] {
				return nil, fmt.Errorf("question %q: unknown stage %q", q.ID, s)
			}
		}
		byID[q.ID] = q
	}

	return &Bank{questions: f.Questions, byID: byID}, nil
}

// ApplicableQuestions returns the questions applicable to the given role and
// stage, in bank order. The returned slice is a copy.
func (b *Bank) ApplicableQuestions(role domain.RoleType, stage domain.CompanyStage) []domain.Question {
	var out []domain.Question
	for _, q := range b.questions {
		if q.AppliesTo(role, stage) {
			out = append(out, q)
		}
	}
	return out
}

// Get returns the question with the given id.
func (b *Bank) Get(id string) (domain.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Len returns the total number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}
