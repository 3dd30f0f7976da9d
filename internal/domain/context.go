package domain

// SlotName identifies a context slot the extractor can fill.
type SlotName string

const (
	SlotRoleType        SlotName = "role_type"
	SlotCompanyStage    SlotName = "company_stage"
	SlotUrgencyLevel    SlotName = "urgency_level"
	SlotBudget          SlotName = "budget"
	SlotTimelineNeed    SlotName = "timeline_need"
	SlotSeniority       SlotName = "seniority"
	SlotTeamSize        SlotName = "team_size"
	SlotLeadershipScope SlotName = "leadership_scope"
	SlotTechStack       SlotName = "tech_stack"
	SlotLocation        SlotName = "location"
)

// AllSlots lists every slot in canonical order.
var AllSlots = []SlotName{
	SlotRoleType, SlotCompanyStage, SlotUrgencyLevel, SlotBudget,
	SlotTimelineNeed, SlotSeniority, SlotTeamSize, SlotLeadershipScope,
	SlotTechStack, SlotLocation,
}

// SlotState is the tri-state resolution level of a slot. An ambiguous slot
// has evidence but must not be treated as known.
type SlotState string

const (
	SlotUnknown   SlotState = "unknown"
	SlotAmbiguous SlotState = "ambiguous"
	SlotKnown     SlotState = "known"
)

// Slot holds the current resolution of one context slot.
type Slot struct {
	State      SlotState `json:"state"`
	Value      string    `json:"value,omitempty"`
	Evidence   string    `json:"evidence,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// HiringContext is the accumulated slot map for one session.
type HiringContext struct {
	Slots map[SlotName]Slot `json:"slots"`
}

// NewHiringContext returns a context with every slot unknown.
func NewHiringContext() HiringContext {
	slots := make(map[SlotName]Slot, len(AllSlots))
	for _, name := range AllSlots {
		slots[name] = Slot{State: SlotUnknown}
	}
	return HiringContext{Slots: slots}
}

// Slot returns the named slot, defaulting to unknown if absent.
func (c HiringContext) Slot(name SlotName) Slot {
	if s, ok := c.Slots[name]; ok {
		return s
	}
	return Slot{State: SlotUnknown}
}

// State returns the resolution state of the named slot.
func (c HiringContext) State(name SlotName) SlotState {
	return c.Slot(name).State
}

// Known reports whether the named slot is resolved to a concrete value.
func (c HiringContext) Known(name SlotName) bool {
	return c.State(name) == SlotKnown
}

// RoleType returns the resolved role type, or RoleUnknown when the
// role_type slot is not known.
func (c HiringContext) RoleType() RoleType {
	s := c.Slot(SlotRoleType)
	if s.State != SlotKnown {
		return RoleUnknown
	}
	if !ValidRoleTypes[s.Value] {
		return RoleUnknown
	}
	return RoleType(s.Value)
}

// CompanyStage returns the resolved company stage, or StageUnknown when the
// company_stage slot is not known.
func (c HiringContext) CompanyStage() CompanyStage {
	s := c.Slot(SlotCompanyStage)
	if s.State != SlotKnown {
		return StageUnknown
	}
	if !ValidCompanyStages[s.Value] {
		return StageUnknown
	}
	return CompanyStage(s.Value)
}

// Urgency returns the resolved urgency level, defaulting to medium.
func (c HiringContext) Urgency() UrgencyLevel {
	s := c.Slot(SlotUrgencyLevel)
	if s.State != SlotKnown {
		return UrgencyMedium
	}
	switch UrgencyLevel(s.Value) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return UrgencyLevel(s.Value)
	}
	return UrgencyMedium
}

// Clone returns a deep copy. Callers mutate copies, never a session's
// stored context in place.
func (c HiringContext) Clone() HiringContext {
	slots := make(map[SlotName]Slot, len(c.Slots))
	for name, s := range c.Slots {
		slots[name] = s
	}
	return HiringContext{Slots: slots}
}
