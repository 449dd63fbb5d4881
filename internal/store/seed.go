package store

import (
	"github.com/google/uuid"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// DemoEntities returns the demo customer population: a spread of party
// types, jurisdictions, and risk scores covering all four tiers.
func DemoEntities() []audit.Entity {
	mk := func(name, jurisdiction, partyType string, inherent, design float64) audit.Entity {
		return audit.Entity{
			EntityID:          uuid.New().String(),
			Name:              name,
			Jurisdiction:      jurisdiction,
			PartyType:         partyType,
			InherentRiskScore: inherent,
			DesignRiskScore:   design,
		}
	}
	return []audit.Entity{
		mk("Meridian Capital Partners LP", "KY", "Partnership", 4.4, 3.1),
		mk("Aldgate Trading Ltd", "UK", "Limited Company", 4.1, 2.8),
		mk("Harborview Trust", "JE", "Trust", 3.8, 3.3),
		mk("Nordwind Logistics GmbH", "DE", "Limited Company", 3.5, 2.2),
		mk("Siena Family Office Trust", "KY", "Trust", 3.2, 2.9),
		mk("Pacific Rim Ventures Pte Ltd", "SG", "Limited Company", 3.0, 1.9),
		mk("Beacon Street Holdings LLC", "US", "Limited Company", 2.7, 2.1),
		mk("Clearwater Commodities Ltd", "UK", "Limited Company", 2.4, 1.8),
		mk("Elena Vasquez", "US", "Individual", 2.2, 1.5),
		mk("Thomas Okafor", "UK", "Individual", 2.0, 1.2),
		mk("Lakeshore Dental Partners", "US", "Partnership", 1.8, 1.4),
		mk("Miyako Imports KK", "SG", "Limited Company", 1.5, 1.1),
		mk("Priya Raman", "SG", "Individual", 1.2, 0.9),
		mk("Oak Lane Stationers Ltd", "UK", "Limited Company", 1.0, 0.8),
	}
}
