package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dferenc/hireflow/internal/domain"
)

func TestThresholds_For(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name    string
		role    domain.RoleType
		urgency domain.UrgencyLevel
		want    float64
	}{
		{"generic medium", domain.RoleGeneric, domain.UrgencyMedium, 0.65},
		{"engineering medium", domain.RoleEngineering, domain.UrgencyMedium, 0.65},
		{"executive medium", domain.RoleExecutive, domain.UrgencyMedium, 0.8},
		{"high urgency lowers", domain.RoleEngineering, domain.UrgencyHigh, 0.6},
		{"low urgency raises", domain.RoleEngineering, domain.UrgencyLow, 0.7},
		{"executive high urgency", domain.RoleExecutive, domain.UrgencyHigh, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, th.For(tt.role, tt.urgency), 1e-9)
		})
	}
}

func TestThresholds_Clamped(t *testing.T) {
	th := Thresholds{Base: 0.02, Executive: 0.99, UrgencyShift: 0.05}

	assert.GreaterOrEqual(t, th.For(domain.RoleGeneric, domain.UrgencyHigh), 0.0)
	assert.LessOrEqual(t, th.For(domain.RoleExecutive, domain.UrgencyLow), 1.0)
}
