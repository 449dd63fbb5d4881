// Package audit holds the CDD audit domain model and the consolidation
// engine that rolls per-auditor testing workbooks up into dimensional
// metrics, an exception list, and a customer-centric findings view.
package audit

// TestResult is the outcome recorded against one (entity, attribute) test
// case. The set is closed; an empty value means the case has not been
// tested yet.
type TestResult string

const (
	ResultPending             TestResult = ""
	ResultPass                TestResult = "Pass"
	ResultPassWithObservation TestResult = "Pass w/Observation"
	ResultFailRegulatory      TestResult = "Fail 1 - Regulatory"
	ResultFailProcedure       TestResult = "Fail 2 - Procedure"
	ResultQuestionToLOB       TestResult = "Question to LOB"
	ResultNA                  TestResult = "N/A"
)

// TerminalResults lists every non-pending outcome, in taxonomy order.
var TerminalResults = []TestResult{
	ResultPass,
	ResultPassWithObservation,
	ResultFailRegulatory,
	ResultFailProcedure,
	ResultQuestionToLOB,
	ResultNA,
}

// IsFail reports whether the result falls under the "Fail" umbrella,
// i.e. either of the two fail kinds.
func (r TestResult) IsFail() bool {
	return r == ResultFailRegulatory || r == ResultFailProcedure
}

// IsException reports whether the result requires follow-up: the two fail
// kinds plus an open question to the line of business.
func (r TestResult) IsException() bool {
	return r.IsFail() || r == ResultQuestionToLOB
}

// IsTested reports whether the result counts toward the pass/fail rate
// denominator. Questions to LOB and N/A rows are excluded from both the
// numerator and denominator of the published rates; pending rows likewise.
func (r TestResult) IsTested() bool {
	switch r {
	case ResultPass, ResultPassWithObservation, ResultFailRegulatory, ResultFailProcedure:
		return true
	}
	return false
}

// IsCompleted reports whether an auditor has recorded any terminal outcome
// for the row. Used for completion-rate tracking.
func (r TestResult) IsCompleted() bool {
	return r != ResultPending
}

// FailureType tags a failure entry on a consolidated customer with the
// kind of fail that produced it.
type FailureType string

const (
	FailureRegulatory FailureType = "Regulatory"
	FailureProcedure  FailureType = "Procedure"
)

// failureTypeOf maps a fail result to its tag. Only meaningful when
// r.IsFail() holds.
func failureTypeOf(r TestResult) FailureType {
	if r == ResultFailRegulatory {
		return FailureRegulatory
	}
	return FailureProcedure
}

// ResultCounts accumulates the six mutually-exclusive outcome counters
// over a row set. Pending rows roll into the N/A bucket so that the six
// counters always sum to TotalTests.
type ResultCounts struct {
	TotalTests               int `json:"total_tests"`
	PassCount                int `json:"pass_count"`
	PassWithObservationCount int `json:"pass_with_observation_count"`
	FailRegulatoryCount      int `json:"fail_regulatory_count"`
	FailProcedureCount       int `json:"fail_procedure_count"`
	QuestionToLOBCount       int `json:"question_to_lob_count"`
	NACount                  int `json:"na_count"`
}

// Observe increments the counter matching one row's result.
func (c *ResultCounts) Observe(r TestResult) {
	c.TotalTests++
	switch r {
	case ResultPass:
		c.PassCount++
	case ResultPassWithObservation:
		c.PassWithObservationCount++
	case ResultFailRegulatory:
		c.FailRegulatoryCount++
	case ResultFailProcedure:
		c.FailProcedureCount++
	case ResultQuestionToLOB:
		c.QuestionToLOBCount++
	default:
		c.NACount++
	}
}

// FailTotal returns the combined count of both fail kinds.
func (c ResultCounts) FailTotal() int {
	return c.FailRegulatoryCount + c.FailProcedureCount
}

// TestedTotal returns the pass/fail rate denominator: passes (with or
// without observation) plus both fail kinds.
func (c ResultCounts) TestedTotal() int {
	return c.PassCount + c.PassWithObservationCount + c.FailTotal()
}

// percentage guards every rate calculation: a zero denominator yields 0,
// never NaN or Inf.
func percentage(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// passRate and failRate publish the two headline rates over the tested
// denominator.
func passRate(c ResultCounts) float64 {
	return percentage(c.PassCount+c.PassWithObservationCount, c.TestedTotal())
}

func failRate(c ResultCounts) float64 {
	return percentage(c.FailTotal(), c.TestedTotal())
}
