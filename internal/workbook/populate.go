package workbook

import (
	"fmt"
	"math/rand"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// resultWeights drives the demo population of auditor results. Weights
// are cumulative out of 100.
var resultWeights = []struct {
	result audit.TestResult
	upto   int
}{
	{audit.ResultPass, 68},
	{audit.ResultPassWithObservation, 80},
	{audit.ResultFailRegulatory, 86},
	{audit.ResultFailProcedure, 91},
	{audit.ResultQuestionToLOB, 95},
	{audit.ResultNA, 100},
}

// Populate simulates auditors completing their workbooks: every row gets
// a weighted random terminal result, with comment text on observations,
// failures, and questions. Deterministic for a given seed. Workbooks are
// marked submitted.
func Populate(workbooks []audit.GeneratedWorkbook, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for wi := range workbooks {
		wb := &workbooks[wi]
		for ri := range wb.Rows {
			row := &wb.Rows[ri]
			row.Result = pickResult(rng)
			row.Comment = commentFor(row)
		}
		wb.Status = audit.WorkbookSubmitted
	}
}

func pickResult(rng *rand.Rand) audit.TestResult {
	n := rng.Intn(100)
	for _, w := range resultWeights {
		if n < w.upto {
			return w.result
		}
	}
	return audit.ResultNA
}

func commentFor(row *audit.WorkbookRow) string {
	switch row.Result {
	case audit.ResultPassWithObservation:
		return fmt.Sprintf("%s evidenced but aging beyond preferred window for %s", row.AttributeName, row.EntityName)
	case audit.ResultFailRegulatory:
		return fmt.Sprintf("%s missing or expired; regulatory requirement not met", row.AttributeName)
	case audit.ResultFailProcedure:
		return fmt.Sprintf("%s completed outside documented procedure", row.AttributeName)
	case audit.ResultQuestionToLOB:
		return fmt.Sprintf("Is %s required for %s given the booking jurisdiction?", row.AttributeName, row.PartyType)
	default:
		return ""
	}
}
