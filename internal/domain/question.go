package domain

// BurdenCost classifies how effortful a question is to answer. Lower is
// cheaper for the user.
type BurdenCost float64

// Question is immutable reference data describing one candidate
// clarification. Questions are never mutated per session.
type Question struct {
	ID          string     `json:"id"`
	Prompt      string     `json:"prompt"`
	TargetSlots []SlotName `json:"target_slots"`

	// Applicability predicate: empty means applicable to all.
	Roles  []RoleType     `json:"roles,omitempty"`
	Stages []CompanyStage `json:"stages,omitempty"`

	InfoGain float64    `json:"info_gain"`
	Burden   BurdenCost `json:"burden"`
}

// AppliesTo reports whether the question is applicable to the given role
// and stage. Unknown role/stage matches only unrestricted questions for
// that dimension.
func (q Question) AppliesTo(role RoleType, stage CompanyStage) bool {
	if len(q.Roles) > 0 && !containsRole(q.Roles, role) {
		return false
	}
	if len(q.Stages) > 0 && !containsStage(q.Stages, stage) {
		return false
	}
	return true
}

// Targets reports whether the question targets the given slot.
func (q Question) Targets(name SlotName) bool {
	for _, t := range q.TargetSlots {
		if t == name {
			return true
		}
	}
	return false
}

func containsRole(roles []RoleType, r RoleType) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}

func containsStage(stages []CompanyStage, s CompanyStage) bool {
	for _, x := range stages {
		if x == s {
			return true
		}
	}
	return false
}
