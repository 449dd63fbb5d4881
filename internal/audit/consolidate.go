package audit

import (
	"time"

	"github.com/google/uuid"
)

// ConsolidationResult is the engine's sole output: the scalar metrics,
// the five dimensional breakdowns, the exception list, the per-customer
// view, and raw provenance for downstream export.
type ConsolidationResult struct {
	ConsolidationID string    `json:"consolidation_id"`
	GeneratedAt     time.Time `json:"generated_at"`

	Metrics        ConsolidatedMetrics   `json:"metrics"`
	ByCategory     []CategoryMetrics     `json:"by_category"`
	ByAttribute    []AttributeMetrics    `json:"by_attribute"`
	ByJurisdiction []JurisdictionMetrics `json:"by_jurisdiction"`
	ByAuditor      []AuditorMetrics      `json:"by_auditor"`
	ByRiskTier     []RiskTierMetrics     `json:"by_risk_tier"`

	Exceptions []ExceptionDetail      `json:"exceptions"`
	Customers  []ConsolidatedCustomer `json:"customers"`

	SourceWorkbookIDs []string      `json:"source_workbook_ids"`
	TotalRows         int           `json:"total_rows"`
	Rows              []WorkbookRow `json:"rows,omitempty"`
}

// Consolidate rolls every row from every submitted workbook up into one
// ConsolidationResult. It is a pure function of its input apart from
// reading the wall clock for the run id and timestamp: an empty workbook
// list (or workbooks with no rows) yields a well-formed zeroed result,
// never a panic, and no rate can be NaN or Inf.
func Consolidate(workbooks []GeneratedWorkbook) *ConsolidationResult {
	runID := uuid.New().String()
	rows := flattenWorkbooks(workbooks)

	workbookIDs := make([]string, 0, len(workbooks))
	for _, wb := range workbooks {
		workbookIDs = append(workbookIDs, wb.WorkbookID)
	}

	return &ConsolidationResult{
		ConsolidationID: runID,
		GeneratedAt:     time.Now(),

		Metrics:        computeMetrics(rows, len(workbooks)),
		ByCategory:     aggregateByCategory(rows),
		ByAttribute:    aggregateByAttribute(rows),
		ByJurisdiction: aggregateByJurisdiction(rows),
		ByAuditor:      aggregateByAuditor(rows),
		ByRiskTier:     aggregateByRiskTier(rows),

		Exceptions: extractExceptions(rows, runID[:8]),
		Customers:  ConsolidateByCustomer(rows),

		SourceWorkbookIDs: workbookIDs,
		TotalRows:         len(rows),
		Rows:              rows,
	}
}
