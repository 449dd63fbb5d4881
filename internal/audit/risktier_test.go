package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskTier_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskTier
	}{
		{0, TierLow},
		{1.9, TierLow},
		{2.0, TierMedium},
		{2.9, TierMedium},
		{3.0, TierHigh},
		{3.9, TierHigh},
		{4.0, TierCritical},
		{4.5, TierCritical},
		{5.0, TierCritical},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, ClassifyRiskTier(tc.score), "score %.1f", tc.score)
	}
}

func TestClassifyRiskTier_Monotonic(t *testing.T) {
	// Increasing scores must never map to a less severe tier.
	prev := TierLow
	for score := 0.0; score <= 5.0; score += 0.1 {
		tier := ClassifyRiskTier(score)
		if tier.severityRank() > prev.severityRank() {
			t.Fatalf("tier severity regressed at score %.1f: %s after %s", score, tier, prev)
		}
		prev = tier
	}
}

func TestTierSeverityOrder(t *testing.T) {
	assert.Equal(t, []RiskTier{TierCritical, TierHigh, TierMedium, TierLow}, TierSeverityOrder)
}
