package classify

import (
	"errors"

	"github.com/dferenc/hireflow/internal/domain"
)

// ErrEmptyInput indicates the input text carried no extractable content.
// Callers recover by leaving the context unchanged and re-prompting.
var ErrEmptyInput = errors.New("empty input text")

// SlotFinding is one extracted slot observation.
type SlotFinding struct {
	Slot       domain.SlotName
	State      domain.SlotState
	Value      string
	Evidence   string
	Confidence float64
}

// ContextDelta is the structured output of classifying one piece of text.
// Findings are observations, not final slot values; Apply merges them into
// a prior context under the promotion rules.
type ContextDelta struct {
	Findings []SlotFinding
}

// Classifier turns free text into a ContextDelta. Implementations must be
// pure: the same text and prior context always yield the same delta, and
// the prior context is never mutated.
type Classifier interface {
	Classify(text string, prior domain.HiringContext) (ContextDelta, error)
}

// Apply merges a delta into a prior context and returns the result.
//
// Promotion rules:
//   - unknown slots accept any finding
//   - ambiguous slots are resolved only by a finding with a concrete known
//     value; an ambiguous finding never re-shades an ambiguous slot
//   - known slots are overridden only by a known finding with strictly
//     higher confidence
//
// Apply(Apply(c, d), d) == Apply(c, d) for any c and d, which together with
// classifier purity makes extraction idempotent under repeated input.
func Apply(prior domain.HiringContext, delta ContextDelta) domain.HiringContext {
	next := prior.Clone()
	for _, f := range delta.Findings {
		cur := next.Slot(f.Slot)
		switch cur.State {
		case domain.SlotUnknown:
			next.Slots[f.Slot] = slotFromFinding(f)
		case domain.SlotAmbiguous:
			if f.State == domain.SlotKnown && f.Value != "" {
				next.Slots[f.Slot] = slotFromFinding(f)
			}
		case domain.SlotKnown:
			if f.State == domain.SlotKnown && f.Confidence > cur.Confidence {
				next.Slots[f.Slot] = slotFromFinding(f)
			}
		}
	}
	return next
}

func slotFromFinding(f SlotFinding) domain.Slot {
	return domain.Slot{
		State:      f.State,
		Value:      f.Value,
		Evidence:   f.Evidence,
		Confidence: f.Confidence,
	}
}
