package seed

import (
	"github.com/google/uuid"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/dictionary"
)

// Party types used across the demo population.
const (
	PartyLimitedCompany = "Limited Company"
	PartyPartnership    = "Partnership"
	PartyIndividual     = "Individual"
	PartyTrust          = "Trust"
)

// GenerateCDDAttributes creates the demo CDD testing-attribute dictionary
// used by gap analysis and workbook generation.
func GenerateCDDAttributes() []dictionary.TestAttribute {
	return []dictionary.TestAttribute{
		{
			AttributeID: uuid.New().String(),
			Name:        "Legal Name Verification",
			Category:    "Identification",
			Description: "Legal name matches the registration or identity document on file",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Registered Address Evidence",
			Category:    "Identification",
			Description: "Current registered or residential address evidenced within policy age",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Identity Document Validity",
			Category:    "Identification",
			Description: "Government-issued identity document present and unexpired",
			PartyTypes:  []string{PartyIndividual},
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Beneficial Ownership Chain",
			Category:    "Ownership",
			Description: "Ownership chain documented to every beneficial owner above threshold",
			PartyTypes:  []string{PartyLimitedCompany, PartyPartnership, PartyTrust},
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "UBO Identification Evidence",
			Category:    "Ownership",
			Description: "Each ultimate beneficial owner identified and verified",
			PartyTypes:  []string{PartyLimitedCompany, PartyPartnership, PartyTrust},
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Control Structure Assessment",
			Category:    "Ownership",
			Description: "Persons exercising control through means other than ownership assessed",
			PartyTypes:  []string{PartyLimitedCompany, PartyTrust},
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Sanctions Screening",
			Category:    "Sanctions",
			Description: "Entity and connected parties screened against applicable sanctions lists",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "PEP Screening",
			Category:    "Sanctions",
			Description: "Politically exposed person screening performed and dispositioned",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Adverse Media Review",
			Category:    "AML",
			Description: "Adverse media search performed with material hits dispositioned",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Source of Funds",
			Category:    "AML",
			Description: "Source of funds documented and plausible for the stated activity",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Source of Wealth",
			Category:    "AML",
			Description: "Source of wealth corroborated for higher-risk relationships",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Expected Activity Profile",
			Category:    "AML",
			Description: "Anticipated transaction profile recorded at onboarding",
		},
		{
			AttributeID: uuid.New().String(),
			Name:        "Tax Residency Certification",
			Category:    "Tax",
			Description: "FATCA/CRS self-certification complete and consistent with other records",
		},
		{
			AttributeID:   uuid.New().String(),
			Name:          "Trust Deed Review",
			Category:      "Ownership",
			Description:   "Trust deed reviewed for settlor, trustee, and beneficiary identification",
			PartyTypes:    []string{PartyTrust},
			Jurisdictions: []string{"KY", "JE", "UK"},
		},
	}
}
