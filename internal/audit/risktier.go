package audit

// RiskTier is the coarse bucket derived from an entity's inherent risk
// score.
type RiskTier string

const (
	TierCritical RiskTier = "Critical"
	TierHigh     RiskTier = "High"
	TierMedium   RiskTier = "Medium"
	TierLow      RiskTier = "Low"
)

// TierSeverityOrder lists the tiers from most to least severe. Risk-tier
// breakdowns are reported in this fixed order, never by count.
var TierSeverityOrder = []RiskTier{TierCritical, TierHigh, TierMedium, TierLow}

// ClassifyRiskTier maps an inherent risk score to its tier. Thresholds
// are inclusive lower bounds. This is the single tiering definition; the
// risk-tier dimension and customer tagging both go through it.
func ClassifyRiskTier(score float64) RiskTier {
	switch {
	case score >= 4:
		return TierCritical
	case score >= 3:
		return TierHigh
	case score >= 2:
		return TierMedium
	default:
		return TierLow
	}
}

// severityRank orders tiers for sorting; lower is more severe.
func (t RiskTier) severityRank() int {
	switch t {
	case TierCritical:
		return 0
	case TierHigh:
		return 1
	case TierMedium:
		return 2
	case TierLow:
		return 3
	}
	return 4
}
