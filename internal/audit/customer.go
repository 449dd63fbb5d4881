package audit

import (
	"sort"
	"time"
)

// OverallResult is the worst-outcome-wins verdict for one customer across
// every row tested against it.
type OverallResult string

const (
	OverallFail                OverallResult = "Fail"
	OverallQuestion            OverallResult = "Question"
	OverallPassWithObservation OverallResult = "Pass w/Observation"
	OverallPass                OverallResult = "Pass"
)

// precedenceRank orders verdicts worst-first for the final customer sort.
func (o OverallResult) precedenceRank() int {
	switch o {
	case OverallFail:
		return 0
	case OverallQuestion:
		return 1
	case OverallPassWithObservation:
		return 2
	case OverallPass:
		return 3
	}
	return 4
}

// CustomerFinding is one observation or question recorded against a
// customer, with the attribute it was raised on and the auditor who
// raised it.
type CustomerFinding struct {
	AttributeID       string    `json:"attribute_id"`
	AttributeName     string    `json:"attribute_name"`
	AttributeCategory string    `json:"attribute_category"`
	Comment           string    `json:"comment"`
	AuditorID         string    `json:"auditor_id"`
	AuditorName       string    `json:"auditor_name"`
	RecordedAt        time.Time `json:"recorded_at"`
}

// CustomerFailure is a finding produced by a fail row, tagged with the
// fail kind.
type CustomerFailure struct {
	CustomerFinding
	FailureType FailureType `json:"failure_type"`
}

// ConsolidatedCustomer is the customer-centric view: every count,
// observation, question, and failure recorded against one entity across
// all workbooks. It is a pure derived view, recomputed from the current
// row snapshot on every consolidation run.
type ConsolidatedCustomer struct {
	EntityID     string   `json:"entity_id"`
	EntityName   string   `json:"entity_name"`
	Jurisdiction string   `json:"jurisdiction"`
	PartyType    string   `json:"party_type"`
	RiskTier     RiskTier `json:"risk_tier"`

	TotalTests               int `json:"total_tests"`
	PassCount                int `json:"pass_count"`
	PassWithObservationCount int `json:"pass_with_observation_count"`
	FailCount                int `json:"fail_count"`
	QuestionCount            int `json:"question_count"`
	NACount                  int `json:"na_count"`

	OverallResult  OverallResult     `json:"overall_result"`
	Observations   []CustomerFinding `json:"observations"`
	QuestionsToLOB []CustomerFinding `json:"questions_to_lob"`
	Failures       []CustomerFailure `json:"failures"`
}

// findingCount is the secondary sort key: how much there is to review.
func (c ConsolidatedCustomer) findingCount() int {
	return len(c.Failures) + len(c.QuestionsToLOB) + len(c.Observations)
}

// ConsolidateByCustomer groups rows by entity id and rolls every
// observation, question, and failure up per customer. The first row seen
// for an entity seeds its identity fields; later rows are assumed
// consistent and never reconciled (first-seen wins). Detail entries are
// only appended when the row carries comment text; rows with a terminal
// result but no comment still count.
func ConsolidateByCustomer(rows []WorkbookRow) []ConsolidatedCustomer {
	now := time.Now()

	byEntity := make(map[string]*ConsolidatedCustomer)
	var order []string

	for _, row := range rows {
		cust, ok := byEntity[row.EntityID]
		if !ok {
			cust = &ConsolidatedCustomer{
				EntityID:     row.EntityID,
				EntityName:   row.EntityName,
				Jurisdiction: orUnknown(row.Jurisdiction),
				PartyType:    row.PartyType,
				RiskTier:     ClassifyRiskTier(row.InherentRiskScore),
			}
			byEntity[row.EntityID] = cust
			order = append(order, row.EntityID)
		}

		cust.TotalTests++
		switch row.Result {
		case ResultPass:
			cust.PassCount++
		case ResultPassWithObservation:
			cust.PassWithObservationCount++
		case ResultFailRegulatory, ResultFailProcedure:
			cust.FailCount++
		case ResultQuestionToLOB:
			cust.QuestionCount++
		default:
			cust.NACount++
		}

		if row.Comment == "" {
			continue
		}
		finding := CustomerFinding{
			AttributeID:       row.AttributeID,
			AttributeName:     row.AttributeName,
			AttributeCategory: orUnknown(row.AttributeCategory),
			Comment:           row.Comment,
			AuditorID:         orUnknown(row.AuditorID),
			AuditorName:       row.AuditorName,
			RecordedAt:        now,
		}
		switch {
		case row.Result == ResultPassWithObservation:
			cust.Observations = append(cust.Observations, finding)
		case row.Result == ResultQuestionToLOB:
			cust.QuestionsToLOB = append(cust.QuestionsToLOB, finding)
		case row.Result.IsFail():
			cust.Failures = append(cust.Failures, CustomerFailure{
				CustomerFinding: finding,
				FailureType:     failureTypeOf(row.Result),
			})
		}
	}

	out := make([]ConsolidatedCustomer, 0, len(order))
	for _, id := range order {
		cust := byEntity[id]
		cust.OverallResult = overallResultFor(cust)
		out = append(out, *cust)
	}

	// Worst verdict first; within a verdict, most findings first. A
	// customer whose rows are all N/A or pending lands on Pass with empty
	// detail lists: absence of negative findings defaults to pass.
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].OverallResult.precedenceRank(), out[j].OverallResult.precedenceRank()
		if ri != rj {
			return ri < rj
		}
		return out[i].findingCount() > out[j].findingCount()
	})
	return out
}

// overallResultFor derives the verdict by precedence: any failure wins,
// then any open question, then any observation, else pass.
func overallResultFor(c *ConsolidatedCustomer) OverallResult {
	switch {
	case c.FailCount > 0 || len(c.Failures) > 0:
		return OverallFail
	case c.QuestionCount > 0 || len(c.QuestionsToLOB) > 0:
		return OverallQuestion
	case c.PassWithObservationCount > 0 || len(c.Observations) > 0:
		return OverallPassWithObservation
	default:
		return OverallPass
	}
}
