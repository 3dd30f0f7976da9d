package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferenc/hireflow/internal/domain"
)

func classifyInto(t *testing.T, text string) domain.HiringContext {
	t.Helper()
	c := NewPatternClassifier()
	prior := domain.NewHiringContext()
	delta, err := c.Classify(text, prior)
	require.NoError(t, err)
	return Apply(prior, delta)
}

func TestClassify_EmptyInput(t *testing.T) {
	c := NewPatternClassifier()

	for _, text := range []string{"", "   ", "!!!", "??? ..."} {
		_, err := c.Classify(text, domain.NewHiringContext())
		assert.ErrorIs(t, err, ErrEmptyInput, "%q", text)
	}
}

func TestClassify_RichEngineeringBrief(t *testing.T) {
	hc := classifyInto(t, "I need a senior backend engineer for our Series A startup, budget $140k, need them ASAP")

	assert.Equal(t, domain.RoleEngineering, hc.RoleType())
	assert.Equal(t, domain.StageSeriesA, hc.CompanyStage())
	assert.Equal(t, domain.UrgencyHigh, hc.Urgency())
	assert.Equal(t, "senior", hc.Slot(domain.SlotSeniority).Value)
	assert.Equal(t, "$140k", hc.Slot(domain.SlotBudget).Value)
	assert.Equal(t, domain.SlotKnown, hc.State(domain.SlotTimelineNeed))
	assert.Equal(t, domain.SlotKnown, hc.State(domain.SlotTechStack))
}

func TestClassify_GenericSignalIsLowConfidenceRole(t *testing.T) {
	hc := classifyInto(t, "I need to hire someone technical")

	slot := hc.Slot(domain.SlotRoleType)
	assert.Equal(t, domain.SlotKnown, slot.State)
	assert.Equal(t, string(domain.RoleGeneric), slot.Value)
	assert.Equal(t, 0.3, slot.Confidence)
	assert.Equal(t, domain.SlotUnknown, hc.State(domain.SlotCompanyStage))
}

func TestClassify_ExecutiveTitleOutranksFunctionalArea(t *testing.T) {
	hc := classifyInto(t, "We're hiring a VP of Engineering")

	assert.Equal(t, domain.RoleExecutive, hc.RoleType())
	assert.Equal(t, string(domain.SeniorityExecutive), hc.Slot(domain.SlotSeniority).Value)
}

func TestClassify_HeadOfTitle(t *testing.T) {
	hc := classifyInto(t, "Looking for a Head of Marketing")
	assert.Equal(t, domain.RoleExecutive, hc.RoleType())
}

func TestClassify_WordBoundaries(t *testing.T) {
	// "technical" must not be read as the functional area "tech".
	hc := classifyInto(t, "someone technical")
	assert.Equal(t, string(domain.RoleGeneric), hc.Slot(domain.SlotRoleType).Value)

	// "asap" inside a longer word must not fire urgency.
	hc = classifyInto(t, "the asapartment project needs a designer")
	assert.Equal(t, domain.UrgencyMedium, hc.Urgency())
	assert.Equal(t, domain.RoleDesign, hc.RoleType())
}

func TestClassify_AmbiguousStagePhrases(t *testing.T) {
	for _, text := range []string{
		"we're a growing startup",
		"our scaling company needs help",
		"a marketing hire for our growing team",
	} {
		hc := classifyInto(t, text)
		assert.Equal(t, domain.SlotAmbiguous, hc.State(domain.SlotCompanyStage), "%q", text)
		assert.Equal(t, domain.StageUnknown, hc.CompanyStage(), "%q", text)
	}
}

func TestClassify_StagePhraseWeighting(t *testing.T) {
	// "series a" (two words) outweighs the single-word seed hint "startup".
	hc := classifyInto(t, "a Series A startup")
	assert.Equal(t, domain.StageSeriesA, hc.CompanyStage())

	hc = classifyInto(t, "an early stage startup")
	assert.Equal(t, domain.StageSeed, hc.CompanyStage())
}

func TestClassify_BudgetForms(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"budget is $130k", "$130k"},
		{"we can pay $140,000", "$140,000"},
		{"somewhere around 120k for a designer", "120k"},
	}
	for _, tt := range tests {
		hc := classifyInto(t, tt.text)
		slot := hc.Slot(domain.SlotBudget)
		assert.Equal(t, domain.SlotKnown, slot.State, "%q", tt.text)
		assert.Equal(t, tt.want, slot.Value, "%q", tt.text)
	}
}

func TestClassify_BudgetMentionWithoutAmountIsAmbiguous(t *testing.T) {
	hc := classifyInto(t, "we haven't settled on a budget for the engineer")
	assert.Equal(t, domain.SlotAmbiguous, hc.State(domain.SlotBudget))
}

func TestClassify_TimelineDuration(t *testing.T) {
	hc := classifyInto(t, "need an engineer in 6 weeks")
	assert.Equal(t, "6 weeks", hc.Slot(domain.SlotTimelineNeed).Value)
}

func TestClassify_TeamSizeAndLeadership(t *testing.T) {
	hc := classifyInto(t, "an engineering manager to lead a team of 8 engineers with direct reports")
	assert.Equal(t, domain.SlotKnown, hc.State(domain.SlotTeamSize))
	assert.Equal(t, domain.SlotKnown, hc.State(domain.SlotLeadershipScope))
}

func TestClassify_Location(t *testing.T) {
	hc := classifyInto(t, "a remote designer")
	assert.Equal(t, "remote", hc.Slot(domain.SlotLocation).Value)
}

func TestClassify_PriorNotMutated(t *testing.T) {
	c := NewPatternClassifier()
	prior := domain.NewHiringContext()

	_, err := c.Classify("a senior engineer at a Series A startup", prior)
	require.NoError(t, err)

	for _, name := range domain.AllSlots {
		assert.Equal(t, domain.SlotUnknown, prior.State(name))
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewPatternClassifier()
	text := "a senior engineer or maybe a designer for our growing startup, $120k"

	first, err := c.Classify(text, domain.NewHiringContext())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := c.Classify(text, domain.NewHiringContext())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
