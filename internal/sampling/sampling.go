// Package sampling selects the entities an audit run will test, using
// risk-tier based coverage over the full population.
package sampling

import (
	"math"
	"sort"
	"time"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// Coverage fractions per risk tier. Every Critical entity is tested; the
// rest of the population is sampled, never skipped entirely for a
// populated tier.
var tierCoverage = map[audit.RiskTier]float64{
	audit.TierCritical: 1.00,
	audit.TierHigh:     0.50,
	audit.TierMedium:   0.25,
	audit.TierLow:      0.10,
}

// Selection is one sampled entity with the tier that selected it.
type Selection struct {
	Entity audit.Entity   `json:"entity"`
	Tier   audit.RiskTier `json:"tier"`
}

// Plan is the output of sample selection for one audit run.
type Plan struct {
	GeneratedAt    time.Time   `json:"generated_at"`
	PopulationSize int         `json:"population_size"`
	Selections     []Selection `json:"selections"`
}

// Entities returns the sampled entities in plan order.
func (p *Plan) Entities() []audit.Entity {
	out := make([]audit.Entity, 0, len(p.Selections))
	for _, s := range p.Selections {
		out = append(out, s.Entity)
	}
	return out
}

// TierCounts reports how many entities each tier contributed.
func (p *Plan) TierCounts() map[audit.RiskTier]int {
	out := make(map[audit.RiskTier]int)
	for _, s := range p.Selections {
		out[s.Tier]++
	}
	return out
}

// BuildPlan selects a sample from the population. Within each tier,
// entities are ordered by inherent risk score descending (name breaks
// ties) and the top ceil(coverage * tierSize) are taken, with a floor of
// one per populated tier. Selection is deterministic for a given
// population.
func BuildPlan(population []audit.Entity) *Plan {
	byTier := make(map[audit.RiskTier][]audit.Entity)
	for _, e := range population {
		tier := audit.ClassifyRiskTier(e.InherentRiskScore)
		byTier[tier] = append(byTier[tier], e)
	}

	plan := &Plan{
		GeneratedAt:    time.Now(),
		PopulationSize: len(population),
	}

	for _, tier := range audit.TierSeverityOrder {
		members := byTier[tier]
		if len(members) == 0 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].InherentRiskScore != members[j].InherentRiskScore {
				return members[i].InherentRiskScore > members[j].InherentRiskScore
			}
			return members[i].Name < members[j].Name
		})

		take := int(math.Ceil(tierCoverage[tier] * float64(len(members))))
		if take < 1 {
			take = 1
		}
		if take > len(members) {
			take = len(members)
		}
		for _, e := range members[:take] {
			plan.Selections = append(plan.Selections, Selection{Entity: e, Tier: tier})
		}
	}
	return plan
}
