package audit

import "time"

// UnknownKey is the sentinel grouping key used when a row is missing a
// jurisdiction, auditor, or category. Grouping on the sentinel keeps a
// dimension from fragmenting into multiple empty-string buckets.
const UnknownKey = "Unknown"

// orUnknown substitutes the sentinel for an absent grouping key.
func orUnknown(s string) string {
	if s == "" {
		return UnknownKey
	}
	return s
}

// Entity is one member of the auditable customer population. The inherent
// risk score drives tiering and sampling; the design score is carried for
// reporting only.
type Entity struct {
	EntityID          string  `json:"entity_id" db:"entity_id"`
	Name              string  `json:"name" db:"name"`
	Jurisdiction      string  `json:"jurisdiction" db:"jurisdiction"`
	PartyType         string  `json:"party_type" db:"party_type"`
	InherentRiskScore float64 `json:"inherent_risk_score" db:"inherent_risk_score"`
	DesignRiskScore   float64 `json:"design_risk_score" db:"design_risk_score"`
}

// WorkbookRow is one test case: an (entity, attribute) pair assigned to
// exactly one auditor. Rows are immutable once generated except for
// Result and Comment, which the auditor-facing editor mutates.
type WorkbookRow struct {
	EntityID          string     `json:"entity_id" db:"entity_id"`
	EntityName        string     `json:"entity_name" db:"entity_name"`
	Jurisdiction      string     `json:"jurisdiction" db:"jurisdiction"`
	PartyType         string     `json:"party_type" db:"party_type"`
	InherentRiskScore float64    `json:"inherent_risk_score" db:"inherent_risk_score"`
	DesignRiskScore   float64    `json:"design_risk_score" db:"design_risk_score"`
	AttributeID       string     `json:"attribute_id" db:"attribute_id"`
	AttributeName     string     `json:"attribute_name" db:"attribute_name"`
	AttributeCategory string     `json:"attribute_category" db:"attribute_category"`
	AuditorID         string     `json:"auditor_id" db:"auditor_id"`
	AuditorName       string     `json:"auditor_name" db:"auditor_name"`
	Result            TestResult `json:"result" db:"result"`
	Comment           string     `json:"comment" db:"comment"`
}

// WorkbookStatus tracks a workbook through the publishing workflow.
type WorkbookStatus string

const (
	WorkbookDraft     WorkbookStatus = "DRAFT"
	WorkbookPublished WorkbookStatus = "PUBLISHED"
	WorkbookSubmitted WorkbookStatus = "SUBMITTED"
)

// GeneratedWorkbook is the set of test rows assigned to one auditor for
// one audit run.
type GeneratedWorkbook struct {
	WorkbookID  string         `json:"workbook_id" db:"workbook_id"`
	AuditorID   string         `json:"auditor_id" db:"auditor_id"`
	AuditorName string         `json:"auditor_name" db:"auditor_name"`
	Status      WorkbookStatus `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	PublishedAt *time.Time     `json:"published_at,omitempty" db:"published_at"`
	Rows        []WorkbookRow  `json:"rows"`
}

// flattenWorkbooks collects every row from every workbook into one slice,
// preserving workbook order then row order. Rows missing their auditor
// identity inherit it from the owning workbook so auditor provenance
// survives the flattening.
func flattenWorkbooks(workbooks []GeneratedWorkbook) []WorkbookRow {
	total := 0
	for _, wb := range workbooks {
		total += len(wb.Rows)
	}
	rows := make([]WorkbookRow, 0, total)
	for _, wb := range workbooks {
		for _, row := range wb.Rows {
			if row.AuditorID == "" {
				row.AuditorID = wb.AuditorID
				row.AuditorName = wb.AuditorName
			}
			rows = append(rows, row)
		}
	}
	return rows
}
