package engine

import "github.com/dferenc/hireflow/internal/domain"

// Weights holds the completeness penalty knobs.
type Weights struct {
	AmbiguousPenalty float64 // per ambiguous applicable slot
	CriticalPenalty  float64 // per critical slot not known
}

// DefaultWeights returns the tuned default penalties.
func DefaultWeights() Weights {
	return Weights{
		AmbiguousPenalty: 0.05,
		CriticalPenalty:  0.15,
	}
}

// Completeness is the result of evaluating one context snapshot. It is
// derived data, recomputed every turn and never cached across turns.
type Completeness struct {
	Score           float64
	Threshold       float64
	Sufficient      bool
	MissingCritical []domain.SlotName
	AmbiguousSlots  []domain.SlotName
}

var baseSlots = []domain.SlotName{
	domain.SlotRoleType, domain.SlotCompanyStage, domain.SlotUrgencyLevel,
	domain.SlotBudget, domain.SlotTimelineNeed, domain.SlotSeniority,
}

// ApplicableSlots returns the slots that count toward completeness for the
// given role and stage.
func ApplicableSlots(role domain.RoleType, stage domain.CompanyStage) []domain.SlotName {
	slots := make([]domain.SlotName, len(baseSlots))
	copy(slots, baseSlots)
	switch role {
	case domain.RoleEngineering:
		slots = append(slots, domain.SlotTechStack)
	case domain.RoleExecutive:
		slots = append(slots, domain.SlotLeadershipScope, domain.SlotTeamSize)
	case domain.RoleMarketing, domain.RoleSales, domain.RoleOperations:
		slots = append(slots, domain.SlotLeadershipScope)
	}
	return slots
}

// CriticalSlots returns the slots whose absence carries the larger penalty.
// The set depends on role, stage and urgency: leadership scope is critical
// for executive hires, budget for marketing roles in growth stage, and the
// timeline when the hire is urgent.
func CriticalSlots(role domain.RoleType, stage domain.CompanyStage, urgency domain.UrgencyLevel) []domain.SlotName {
	crit := []domain.SlotName{domain.SlotRoleType, domain.SlotCompanyStage}
	if role == domain.RoleExecutive {
		crit = append(crit, domain.SlotLeadershipScope)
	}
	if role == domain.RoleMarketing && stage == domain.StageGrowth {
		crit = append(crit, domain.SlotBudget)
	}
	if urgency == domain.UrgencyHigh {
		crit = append(crit, domain.SlotTimelineNeed)
	}
	return crit
}

// EvaluateCompleteness computes the specificity score for a context and
// compares it against the role/urgency threshold. Pure: no external calls,
// deterministic for a given context.
//
// The score starts from the fraction of applicable slots known, loses
// AmbiguousPenalty per ambiguous slot and CriticalPenalty per critical slot
// that is not known, and is clamped to [0,1]. An unresolved role_type makes
// the context insufficient regardless of score: role identification is a
// hard prerequisite for generation.
func EvaluateCompleteness(hc domain.HiringContext, th Thresholds, w Weights) Completeness {
	role := hc.RoleType()
	stage := hc.CompanyStage()
	urgency := hc.Urgency()

	applicable := ApplicableSlots(role, stage)
	known := 0
	var ambiguous []domain.SlotName
	for _, name := range applicable {
		switch hc.State(name) {
		case domain.SlotKnown:
			known++
		case domain.SlotAmbiguous:
			ambiguous = append(ambiguous, name)
		}
	}

	score := float64(known) / float64(len(applicable))
	score -= w.AmbiguousPenalty * float64(len(ambiguous))

	var missing []domain.SlotName
	for _, name := range CriticalSlots(role, stage, urgency) {
		if hc.State(name) != domain.SlotKnown {
			missing = append(missing, name)
			score -= w.CriticalPenalty
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	threshold := th.For(role, urgency)
	sufficient := score >= threshold && hc.State(domain.SlotRoleType) == domain.SlotKnown

	return Completeness{
		Score:           score,
		Threshold:       threshold,
		Sufficient:      sufficient,
		MissingCritical: missing,
		AmbiguousSlots:  ambiguous,
	}
}
