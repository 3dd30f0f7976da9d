package engine

import "github.com/dferenc/hireflow/internal/domain"

// Thresholds maps (role_type, urgency_level) to the minimum specificity
// score required to skip further questioning. The values are tuning
// configuration, not load-bearing constants.
type Thresholds struct {
	// Base applies to individual-contributor and generic roles.
	Base float64
	// Executive applies to executive hires, which warrant a stricter bar.
	Executive float64
	// UrgencyShift is added for low urgency (time to be thorough) and
	// subtracted for high urgency (bias toward moving fast).
	UrgencyShift float64
}

// DefaultThresholds returns the tuned default threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Base:         0.65,
		Executive:    0.8,
		UrgencyShift: 0.05,
	}
}

// For returns the minimum sufficient score for the given role and urgency.
func (t Thresholds) For(role domain.RoleType, urgency domain.UrgencyLevel) float64 {
	min := t.Base
	if role == domain.RoleExecutive {
		min = t.Executive
	}
	switch urgency {
	case domain.UrgencyHigh:
		min -= t.UrgencyShift
	case domain.UrgencyLow:
		min += t.UrgencyShift
	}
	if min < 0 {
		min = 0
	}
	if min > 1 {
		min = 1
	}
	return min
}
