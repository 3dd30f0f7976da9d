package engine

import (
	"context"
	"fmt"

	"github.com/dferenc/hireflow/internal/classify"
	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/questionbank"
)

// Generator produces final hiring artifacts from a context snapshot. The
// call is the only blocking operation in a turn and the sole cancellation
// point; implementations wrap it with a timeout.
type Generator interface {
	Generate(ctx context.Context, hc domain.HiringContext) (*domain.Artifacts, error)
}

// Machine drives one session through the conversation phases. A session is
// processed strictly sequentially: ProcessTurn fully resolves one turn
// before the next is accepted. The machine holds no per-session state of
// its own and may be shared across sessions.
type Machine struct {
	classifier  classify.Classifier
	bank        *questionbank.Bank
	thresholds  Thresholds
	weights     Weights
	prioritizer Prioritizer
	generator   Generator
	fallback    Generator
	maxTries    int
}

// Option configures a Machine.
type Option func(*Machine)

// WithThresholds overrides the default threshold table.
func WithThresholds(t Thresholds) Option {
	return func(m *Machine) { m.thresholds = t }
}

// WithWeights overrides the default penalty weights.
func WithWeights(w Weights) Option {
	return func(m *Machine) { m.weights = w }
}

// WithMaxGenerateTries overrides how many failed generation attempts are
// allowed before the session degrades to fallback content.
func WithMaxGenerateTries(n int) Option {
	return func(m *Machine) { m.maxTries = n }
}

// NewMachine wires a conversation state machine. fallback must be a
// generator that cannot fail; it supplies placeholder content when the
// primary generator exhausts its attempts.
func NewMachine(classifier classify.Classifier, bank *questionbank.Bank, generator, fallback Generator, opts ...Option) *Machine {
	m := &Machine{
		classifier:  classifier,
		bank:        bank,
		thresholds:  DefaultThresholds(),
		weights:     DefaultWeights(),
		prioritizer: NewPrioritizer(),
		generator:   generator,
		fallback:    fallback,
		maxTries:    3,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StepResult is the tagged outcome of one turn. Only the fields valid for
// the resulting phase are set: Questions for AWAITING_ANSWER, Artifacts for
// the terminal phases.
type StepResult struct {
	Phase        domain.Phase
	Completeness Completeness
	Questions    []domain.Question
	Artifacts    *domain.Artifacts
}

// ProcessTurn advances the session by one user turn. The session is
// mutated in place; callers persist it only when ProcessTurn returns
// without an InvariantError.
func (m *Machine) ProcessTurn(ctx context.Context, s *domain.Session, input string) (*StepResult, error) {
	if s.Phase.Terminal() {
		return nil, &InvariantError{Msg: fmt.Sprintf("turn received for session %s in terminal phase %s", s.ID, s.Phase)}
	}

	if s.Phase != domain.PhaseGenerating {
		delta, err := m.classifier.Classify(input, s.Context)
		if err != nil {
			// Context stays unchanged; the caller re-prompts.
			return nil, fmt.Errorf("extracting context: %w", err)
		}
		s.Context = classify.Apply(s.Context, delta)
	}

	comp := EvaluateCompleteness(s.Context, m.thresholds, m.weights)
	s.LastScore = comp.Score

	if s.Phase == domain.PhaseGenerating || comp.Sufficient {
		s.Phase = domain.PhaseGenerating
		return m.generate(ctx, s, comp)
	}

	batch := m.prioritizer.NextBatch(s.Context, s.AskedIDs, m.bank)
	if len(batch) == 0 {
		// No applicable unanswered questions remain. Generate with
		// best-effort context rather than hang.
		s.Phase = domain.PhaseGenerating
		return m.generate(ctx, s, comp)
	}

	for _, q := range batch {
		if s.Asked(q.ID) {
			return nil, &InvariantError{Msg: "prioritizer re-selected asked question " + q.ID}
		}
	}

	s.Phase = domain.PhaseQuestioning
	ids := make([]string, len(batch))
	for i, q := range batch {
		ids[i] = q.ID
	}
	s.RecordAsked(ids)
	s.Phase = domain.PhaseAwaitingAnswer

	return &StepResult{
		Phase:        domain.PhaseAwaitingAnswer,
		Completeness: comp,
		Questions:    batch,
	}, nil
}

func (m *Machine) generate(ctx context.Context, s *domain.Session, comp Completeness) (*StepResult, error) {
	arts, err := m.generator.Generate(ctx, s.Context)
	if err == nil {
		s.Artifacts = arts
		s.Phase = domain.PhaseComplete
		if arts.Degraded {
			s.Phase = domain.PhaseDegradedComplete
		}
		return &StepResult{Phase: s.Phase, Completeness: comp, Artifacts: arts}, nil
	}

	if ctx.Err() != nil {
		// Cancelled mid-generation: the session stays in GENERATING and
		// the attempt does not count against the retry budget.
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	s.GenerateTries++
	if s.GenerateTries >= m.maxTries {
		fb, fbErr := m.fallback.Generate(ctx, s.Context)
		if fbErr != nil {
			return nil, fmt.Errorf("%w: fallback also failed: %v", ErrGenerationFailed, fbErr)
		}
		fb.Degraded = true
		s.Artifacts = fb
		s.Phase = domain.PhaseDegradedComplete
		return &StepResult{Phase: s.Phase, Completeness: comp, Artifacts: fb}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}
