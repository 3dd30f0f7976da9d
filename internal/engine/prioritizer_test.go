package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferenc/hireflow/internal/domain"
	"github.com/dferenc/hireflow/internal/questionbank"
)

func loadBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	bank, err := questionbank.Load()
	require.NoError(t, err)
	return bank
}

func batchIDs(batch []domain.Question) []string {
	ids := make([]string, len(batch))
	for i, q := range batch {
		ids[i] = q.ID
	}
	return ids
}

func TestNextBatch_CriticalSlotsLeadVagueContext(t *testing.T) {
	// Role detected only generically: stage questions carry the critical
	// weight, role clarification follows on raw information gain.
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType: {State: domain.SlotKnown, Value: "generic", Confidence: 0.3},
	})

	batch := NewPrioritizer().NextBatch(hc, nil, loadBank(t))
	assert.Equal(t, []string{"stage.which", "stage.headcount", "role.function"}, batchIDs(batch))
}

func TestNextBatch_NeverRepeatsAskedQuestions(t *testing.T) {
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType: {State: domain.SlotKnown, Value: "generic", Confidence: 0.3},
	})
	bank := loadBank(t)

	first := NewPrioritizer().NextBatch(hc, nil, bank)
	require.NotEmpty(t, first)

	second := NewPrioritizer().NextBatch(hc, batchIDs(first), bank)
	for _, q := range second {
		assert.NotContains(t, batchIDs(first), q.ID)
	}
}

func TestNextBatch_CapsAtMaxBatch(t *testing.T) {
	batch := NewPrioritizer().NextBatch(domain.NewHiringContext(), nil, loadBank(t))
	assert.LessOrEqual(t, len(batch), 3)
	assert.NotEmpty(t, batch)
}

func TestNextBatch_SkipsResolvedTargets(t *testing.T) {
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType:     known("engineering"),
		domain.SlotCompanyStage: known("series_a"),
		domain.SlotSeniority:    known("senior"),
	})

	batch := NewPrioritizer().NextBatch(hc, nil, loadBank(t))
	// stage.which targets only the resolved company_stage slot and must
	// drop out; questions with at least one unresolved target stay.
	assert.NotContains(t, batchIDs(batch), "stage.which")
	assert.NotContains(t, batchIDs(batch), "role.function")
}

func TestNextBatch_AmbiguousTargetStillEligible(t *testing.T) {
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType:     known("engineering"),
		domain.SlotCompanyStage: ambiguous("growth"),
	})

	batch := NewPrioritizer().NextBatch(hc, nil, loadBank(t))
	assert.Contains(t, batchIDs(batch), "stage.which",
		"an ambiguous critical slot should be re-clarified")
}

func TestNextBatch_RoleRestrictedQuestions(t *testing.T) {
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType:     known("executive"),
		domain.SlotCompanyStage: known("growth"),
	})

	batch := NewPrioritizer().NextBatch(hc, nil, loadBank(t))
	require.NotEmpty(t, batch)
	// Leadership scope is critical for executives, so exec.challenges
	// (gain 0.9) leads.
	assert.Equal(t, "exec.challenges", batch[0].ID)
	for _, q := range batch {
		assert.NotContains(t, []string{"eng.stack", "marketing.channels"}, q.ID)
	}
}

func TestNextBatch_EmptyWhenEverythingAsked(t *testing.T) {
	bank := loadBank(t)
	hc := domain.NewHiringContext()

	var asked []string
	for i := 0; i < 10; i++ {
		batch := NewPrioritizer().NextBatch(hc, asked, bank)
		if len(batch) == 0 {
			return
		}
		asked = append(asked, batchIDs(batch)...)
	}
	t.Fatal("asked set never exhausted the applicable questions")
}

func TestNextBatch_Deterministic(t *testing.T) {
	hc := ctxWith(map[domain.SlotName]domain.Slot{
		domain.SlotRoleType: {State: domain.SlotKnown, Value: "generic", Confidence: 0.3},
	})
	bank := loadBank(t)

	first := batchIDs(NewPrioritizer().NextBatch(hc, nil, bank))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, batchIDs(NewPrioritizer().NextBatch(hc, nil, bank)))
	}
}
