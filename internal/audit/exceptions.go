package audit

import "fmt"

// ExceptionDetail is one row requiring follow-up: either fail kind or an
// open question to the line of business. It carries the full row context
// so the export layer needs no join back to the source rows.
type ExceptionDetail struct {
	ExceptionID       string     `json:"exception_id"`
	EntityID          string     `json:"entity_id"`
	EntityName        string     `json:"entity_name"`
	Jurisdiction      string     `json:"jurisdiction"`
	PartyType         string     `json:"party_type"`
	RiskTier          RiskTier   `json:"risk_tier"`
	AttributeID       string     `json:"attribute_id"`
	AttributeName     string     `json:"attribute_name"`
	AttributeCategory string     `json:"attribute_category"`
	AuditorID         string     `json:"auditor_id"`
	AuditorName       string     `json:"auditor_name"`
	ResultType        TestResult `json:"result_type"`
	Comment           string     `json:"comment"`
}

// extractExceptions filters follow-up rows in encounter order. Exception
// ids are synthesized from the run suffix plus a monotonic sequence, so
// they are unique and stable within one consolidation run.
func extractExceptions(rows []WorkbookRow, runSuffix string) []ExceptionDetail {
	var out []ExceptionDetail
	seq := 0
	for _, row := range rows {
		if !row.Result.IsException() {
			continue
		}
		seq++
		out = append(out, ExceptionDetail{
			ExceptionID:       fmt.Sprintf("EX-%s-%04d", runSuffix, seq),
			EntityID:          row.EntityID,
			EntityName:        row.EntityName,
			Jurisdiction:      orUnknown(row.Jurisdiction),
			PartyType:         row.PartyType,
			RiskTier:          ClassifyRiskTier(row.InherentRiskScore),
			AttributeID:       row.AttributeID,
			AttributeName:     row.AttributeName,
			AttributeCategory: orUnknown(row.AttributeCategory),
			AuditorID:         orUnknown(row.AuditorID),
			AuditorName:       row.AuditorName,
			ResultType:        row.Result,
			Comment:           row.Comment,
		})
	}
	return out
}
