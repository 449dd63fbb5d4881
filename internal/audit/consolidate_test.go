package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRow builds a minimal row; callers override fields as needed.
func testRow(entityID, attributeID string, result TestResult) WorkbookRow {
	return WorkbookRow{
		EntityID:          entityID,
		EntityName:        "Entity " + entityID,
		Jurisdiction:      "US",
		PartyType:         "Limited Company",
		InherentRiskScore: 2.5,
		AttributeID:       attributeID,
		AttributeName:     "Attribute " + attributeID,
		AttributeCategory: "AML",
		AuditorID:         "AUD-1",
		AuditorName:       "Auditor One",
		Result:            result,
	}
}

func singleWorkbook(rows ...WorkbookRow) []GeneratedWorkbook {
	return []GeneratedWorkbook{{
		WorkbookID:  "WB-1",
		AuditorID:   "AUD-1",
		AuditorName: "Auditor One",
		Status:      WorkbookSubmitted,
		Rows:        rows,
	}}
}

func TestConsolidate_EmptyInput(t *testing.T) {
	res := Consolidate(nil)
	require.NotNil(t, res)

	assert.Equal(t, 0, res.Metrics.Counts.TotalTests)
	assert.Equal(t, 0.0, res.Metrics.PassRate)
	assert.Equal(t, 0.0, res.Metrics.FailRate)
	assert.Empty(t, res.ByCategory)
	assert.Empty(t, res.ByAttribute)
	assert.Empty(t, res.ByJurisdiction)
	assert.Empty(t, res.ByAuditor)
	assert.Empty(t, res.ByRiskTier)
	assert.Empty(t, res.Exceptions)
	assert.Empty(t, res.Customers)
	assert.Equal(t, 0, res.TotalRows)
	assert.NotEmpty(t, res.ConsolidationID)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestConsolidate_EmptyWorkbook(t *testing.T) {
	res := Consolidate([]GeneratedWorkbook{{WorkbookID: "WB-1", AuditorID: "AUD-1"}})
	assert.Equal(t, 0, res.Metrics.Counts.TotalTests)
	assert.Equal(t, 1, res.Metrics.WorkbookCount)
	assert.Equal(t, []string{"WB-1"}, res.SourceWorkbookIDs)
}

func TestConsolidate_CountConservation(t *testing.T) {
	rows := []WorkbookRow{
		testRow("E1", "A1", ResultPass),
		testRow("E1", "A2", ResultPassWithObservation),
		testRow("E2", "A1", ResultFailRegulatory),
		testRow("E2", "A2", ResultFailProcedure),
		testRow("E3", "A1", ResultQuestionToLOB),
		testRow("E3", "A2", ResultNA),
		testRow("E4", "A1", ResultPending),
	}
	res := Consolidate(singleWorkbook(rows...))

	c := res.Metrics.Counts
	sum := c.PassCount + c.PassWithObservationCount + c.FailRegulatoryCount +
		c.FailProcedureCount + c.QuestionToLOBCount + c.NACount
	assert.Equal(t, c.TotalTests, sum)
	assert.Equal(t, 7, c.TotalTests)
	assert.Equal(t, 4, res.Metrics.UniqueEntityCount)
	assert.Equal(t, 2, res.Metrics.UniqueAttributeCount)
}

func TestConsolidate_RateBoundsAndDenominator(t *testing.T) {
	// Two passes, one fail, one question, one N/A. Questions and N/A are
	// excluded from both sides of the rate.
	rows := []WorkbookRow{
		testRow("E1", "A1", ResultPass),
		testRow("E1", "A2", ResultPassWithObservation),
		testRow("E2", "A1", ResultFailRegulatory),
		testRow("E2", "A2", ResultQuestionToLOB),
		testRow("E3", "A1", ResultNA),
	}
	res := Consolidate(singleWorkbook(rows...))

	assert.InDelta(t, 66.67, res.Metrics.PassRate, 0.01)
	assert.InDelta(t, 33.33, res.Metrics.FailRate, 0.01)
	assert.LessOrEqual(t, res.Metrics.PassRate+res.Metrics.FailRate, 100.0+1e-9)
	assert.GreaterOrEqual(t, res.Metrics.PassRate, 0.0)
	assert.GreaterOrEqual(t, res.Metrics.FailRate, 0.0)
}

func TestConsolidate_RiskTierBreakdownOrder(t *testing.T) {
	// Scores routed to four distinct tiers, supplied in ascending order;
	// the breakdown must come back in fixed severity order.
	scores := []float64{1.5, 2.5, 3.5, 4.5}
	rows := make([]WorkbookRow, 0, len(scores))
	for i, s := range scores {
		row := testRow("E1", "A1", ResultPass)
		row.EntityID = string(rune('A' + i))
		row.InherentRiskScore = s
		rows = append(rows, row)
	}
	res := Consolidate(singleWorkbook(rows...))

	require.Len(t, res.ByRiskTier, 4)
	assert.Equal(t, TierCritical, res.ByRiskTier[0].Tier)
	assert.Equal(t, TierHigh, res.ByRiskTier[1].Tier)
	assert.Equal(t, TierMedium, res.ByRiskTier[2].Tier)
	assert.Equal(t, TierLow, res.ByRiskTier[3].Tier)
}

func TestConsolidate_CrossWorkbookCustomerMerge(t *testing.T) {
	// Same entity tested by two auditors in two workbooks must collapse
	// into one customer record.
	wbs := []GeneratedWorkbook{
		{
			WorkbookID: "WB-1", AuditorID: "AUD-1", AuditorName: "Auditor One",
			Rows: []WorkbookRow{testRow("E1", "A1", ResultPass)},
		},
		{
			WorkbookID: "WB-2", AuditorID: "AUD-2", AuditorName: "Auditor Two",
			Rows: func() []WorkbookRow {
				r := testRow("E1", "A2", ResultPass)
				r.AuditorID = "AUD-2"
				r.AuditorName = "Auditor Two"
				return []WorkbookRow{r}
			}(),
		},
	}
	res := Consolidate(wbs)

	require.Len(t, res.Customers, 1)
	assert.Equal(t, "E1", res.Customers[0].EntityID)
	assert.Equal(t, 2, res.Customers[0].TotalTests)
	assert.Len(t, res.ByAuditor, 2)
}

func TestConsolidate_QuestionIsExceptionNotFail(t *testing.T) {
	row := testRow("E1", "A1", ResultQuestionToLOB)
	row.Comment = "Is trust deed required for this structure?"
	res := Consolidate(singleWorkbook(row))

	require.Len(t, res.Exceptions, 1)
	assert.Equal(t, ResultQuestionToLOB, res.Exceptions[0].ResultType)
	assert.Equal(t, row.Comment, res.Exceptions[0].Comment)

	assert.Equal(t, 0, res.Metrics.Counts.FailTotal())
	require.Len(t, res.Customers, 1)
	assert.Equal(t, 0, res.Customers[0].FailCount)
	require.Len(t, res.Customers[0].QuestionsToLOB, 1)
	assert.Empty(t, res.Customers[0].Failures)
	for _, cat := range res.ByCategory {
		assert.Equal(t, 0, cat.Counts.FailTotal())
	}
}

func TestConsolidate_ExceptionOrderAndIDs(t *testing.T) {
	rows := []WorkbookRow{
		testRow("E1", "A1", ResultFailRegulatory),
		testRow("E2", "A1", ResultPass),
		testRow("E3", "A1", ResultQuestionToLOB),
		testRow("E4", "A1", ResultFailProcedure),
	}
	res := Consolidate(singleWorkbook(rows...))

	require.Len(t, res.Exceptions, 3)
	assert.Equal(t, "E1", res.Exceptions[0].EntityID)
	assert.Equal(t, "E3", res.Exceptions[1].EntityID)
	assert.Equal(t, "E4", res.Exceptions[2].EntityID)

	seen := make(map[string]bool)
	for _, ex := range res.Exceptions {
		assert.True(t, strings.HasPrefix(ex.ExceptionID, "EX-"))
		assert.False(t, seen[ex.ExceptionID], "duplicate exception id %s", ex.ExceptionID)
		seen[ex.ExceptionID] = true
	}
}

func TestConsolidate_UnknownSentinels(t *testing.T) {
	row := testRow("E1", "A1", ResultFailRegulatory)
	row.Jurisdiction = ""
	row.AttributeCategory = ""
	row.AuditorID = ""
	row.AuditorName = ""
	wb := singleWorkbook(row)
	wb[0].AuditorID = "" // no fallback from the workbook either
	res := Consolidate(wb)

	require.Len(t, res.ByJurisdiction, 1)
	assert.Equal(t, UnknownKey, res.ByJurisdiction[0].Jurisdiction)
	require.Len(t, res.ByCategory, 1)
	assert.Equal(t, UnknownKey, res.ByCategory[0].Category)
	require.Len(t, res.ByAuditor, 1)
	assert.Equal(t, UnknownKey, res.ByAuditor[0].AuditorID)
}

func TestConsolidate_AuditorProvenanceSurvivesFlatten(t *testing.T) {
	row := testRow("E1", "A1", ResultPass)
	row.AuditorID = ""
	row.AuditorName = ""
	res := Consolidate([]GeneratedWorkbook{{
		WorkbookID: "WB-9", AuditorID: "AUD-9", AuditorName: "Auditor Nine",
		Rows: []WorkbookRow{row},
	}})

	require.Len(t, res.ByAuditor, 1)
	assert.Equal(t, "AUD-9", res.ByAuditor[0].AuditorID)
	assert.Equal(t, "Auditor Nine", res.ByAuditor[0].AuditorName)
}

func TestAggregateByAttribute_FailureCommentsDeduplicated(t *testing.T) {
	r1 := testRow("E1", "A1", ResultFailRegulatory)
	r1.Comment = "BO evidence expired"
	r2 := testRow("E2", "A1", ResultFailProcedure)
	r2.Comment = "BO evidence expired"
	r3 := testRow("E3", "A1", ResultFailRegulatory)
	r3.Comment = "Screening not refreshed"
	r4 := testRow("E4", "A1", ResultPassWithObservation)
	r4.Comment = "Minor doc aging" // not a fail, must not be collected

	out := aggregateByAttribute([]WorkbookRow{r1, r2, r3, r4})
	require.Len(t, out, 1)
	assert.Equal(t, []string{"BO evidence expired", "Screening not refreshed"}, out[0].FailureComments)
}

func TestDimensionSortOrders(t *testing.T) {
	mk := func(entity, category string, result TestResult, jurisdiction string) WorkbookRow {
		r := testRow(entity, "A-"+category, result)
		r.AttributeCategory = category
		r.Jurisdiction = jurisdiction
		return r
	}
	rows := []WorkbookRow{
		// Ownership: 1 fail of 2 tested (50%). AML: 1 fail of 4 tested (25%).
		mk("E1", "Ownership", ResultFailRegulatory, "UK"),
		mk("E2", "Ownership", ResultPass, "UK"),
		mk("E3", "AML", ResultFailProcedure, "US"),
		mk("E4", "AML", ResultPass, "US"),
		mk("E5", "AML", ResultPass, "US"),
		mk("E6", "AML", ResultPass, "US"),
	}
	res := Consolidate(singleWorkbook(rows...))

	require.Len(t, res.ByCategory, 2)
	assert.Equal(t, "Ownership", res.ByCategory[0].Category, "worst fail rate first")

	require.Len(t, res.ByJurisdiction, 2)
	assert.Equal(t, "US", res.ByJurisdiction[0].Jurisdiction, "largest workload first")
	assert.Equal(t, 4, res.ByJurisdiction[0].Counts.TotalTests)
}

func TestAggregateByAuditor_CompletionRate(t *testing.T) {
	r1 := testRow("E1", "A1", ResultPass)
	r2 := testRow("E2", "A1", ResultPending)
	r3 := testRow("E3", "A1", ResultNA) // N/A is a recorded outcome

	out := aggregateByAuditor([]WorkbookRow{r1, r2, r3})
	require.Len(t, out, 1)
	assert.InDelta(t, 66.67, out[0].CompletionRate, 0.01)
}
