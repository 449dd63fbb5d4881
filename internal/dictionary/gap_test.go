package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaps(t *testing.T) {
	attrs := []TestAttribute{
		{AttributeID: "a1", Name: "Sanctions Screening", Category: "Sanctions"},
		{AttributeID: "a2", Name: "BO Chain", Category: "Ownership", PartyTypes: []string{"Limited Company"}},
		{AttributeID: "a3", Name: "Trust Deed", Category: "Ownership", PartyTypes: []string{"Trust"}, Jurisdictions: []string{"KY"}},
	}
	reqs := []Requirement{
		{Jurisdiction: "US", PartyType: "Limited Company", Category: "Sanctions"},
		{Jurisdiction: "US", PartyType: "Limited Company", Category: "Ownership"},
		{Jurisdiction: "US", PartyType: "Trust", Category: "Ownership"}, // a3 is KY-only
		{Jurisdiction: "US", PartyType: "Individual", Category: "Tax"}, // no Tax attribute at all
	}

	gaps := Gaps(reqs, attrs)
	require.Len(t, gaps, 2)
	assert.Equal(t, "Trust", gaps[0].PartyType)
	assert.Equal(t, "Tax", gaps[1].Category)
}

func TestApplicableTo(t *testing.T) {
	attrs := []TestAttribute{
		{AttributeID: "a1", Category: "Sanctions"},
		{AttributeID: "a2", Category: "Ownership", PartyTypes: []string{"Trust"}},
		{AttributeID: "a3", Category: "Ownership", Jurisdictions: []string{"KY"}},
	}

	got := ApplicableTo(attrs, "Limited Company", "US")
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].AttributeID)

	got = ApplicableTo(attrs, "Trust", "KY")
	assert.Len(t, got, 3)
}

func TestCategories(t *testing.T) {
	attrs := []TestAttribute{
		{Category: "AML"},
		{Category: "Ownership"},
		{Category: "AML"},
	}
	assert.Equal(t, []string{"AML", "Ownership"}, Categories(attrs))
}
