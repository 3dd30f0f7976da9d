package engine

import (
	"sort"

	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/questionbank"
)

// Prioritizer selects the next batch of clarifying questions.
type Prioritizer struct {
	// MaxBatch bounds the number of questions per turn.
	MaxBatch int
}

// NewPrioritizer returns a prioritizer with the default batch size.
func NewPrioritizer() Prioritizer {
	return Prioritizer{MaxBatch: 3}
}

// NextBatch returns an ordered batch of at most MaxBatch unanswered,
// applicable questions.
//
// A question is a candidate when it applies to the detected role and stage,
// its id is not in the asked set, and it targets at least one slot that is
// still unknown or ambiguous. An asked id is never re-selected even if its
// target slot stayed unresolved; the conversation proceeds with the slot
// unknown instead of looping on an unanswerable question.
//
// Ordering: information gain restricted to unresolved critical target slots
// first, then overall information gain, then ascending burden, then id for
// a stable order.
func (p Prioritizer) NextBatch(hc domain.HiringContext, asked []string, bank *questionbank.Bank) []domain.Question {
	role := hc.RoleType()
	stage := hc.CompanyStage()
	urgency := hc.Urgency()

	askedSet := make(map[string]bool, len(asked))
	for _, id := range asked {
		askedSet[id] = true
	}

	critical := make(map[domain.SlotName]bool)
	for _, name := range CriticalSlots(role, stage, urgency) {
		if hc.State(name) != domain.SlotKnown {
			critical[name] = true
		}
	}

	type ranked struct {
		q            domain.Question
		criticalGain float64
	}
	var candidates []ranked
	for _, q := range bank.ApplicableQuestions(role, stage) {
		if askedSet[q.ID] {
			continue
		}
		if !targetsUnresolved(hc, q) {
			continue
		}
		cg := 0.0
		for _, slot := range q.TargetSlots {
			if critical[slot] && q.InfoGain > cg {
				cg = q.InfoGain
			}
		}
		candidates = append(candidates, ranked{q: q, criticalGain: cg})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.criticalGain != b.criticalGain {
			return a.criticalGain > b.criticalGain
		}
		if a.q.InfoGain != b.q.InfoGain {
			return a.q.InfoGain > b.q.InfoGain
		}
		if a.q.Burden != b.q.Burden {
			return a.q.Burden < b.q.Burden
		}
		return a.q.ID < b.q.ID
	})

	max := p.MaxBatch
	if max <= 0 {
		max = 3
	}
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]domain.Question, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.q)
	}
	return out
}

func targetsUnresolved(hc domain.HiringContext, q domain.Question) bool {
	for _, slot := range q.TargetSlots {
		if hc.State(slot) != domain.SlotKnown {
			return true
		}
	}
	return false
}
