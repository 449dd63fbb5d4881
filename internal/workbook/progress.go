package workbook

import "github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"

// Progress is one workbook's completion state at a point in time.
type Progress struct {
	WorkbookID     string               `json:"workbook_id"`
	AuditorID      string               `json:"auditor_id"`
	AuditorName    string               `json:"auditor_name"`
	Status         audit.WorkbookStatus `json:"status"`
	TotalRows      int                  `json:"total_rows"`
	CompletedRows  int                  `json:"completed_rows"`
	CompletionRate float64              `json:"completion_rate"`
}

// Snapshot computes per-workbook completion from the current row state.
func Snapshot(workbooks []audit.GeneratedWorkbook) []Progress {
	out := make([]Progress, 0, len(workbooks))
	for _, wb := range workbooks {
		completed := 0
		for _, row := range wb.Rows {
			if row.Result.IsCompleted() {
				completed++
			}
		}
		p := Progress{
			WorkbookID:    wb.WorkbookID,
			AuditorID:     wb.AuditorID,
			AuditorName:   wb.AuditorName,
			Status:        wb.Status,
			TotalRows:     len(wb.Rows),
			CompletedRows: completed,
		}
		if p.TotalRows > 0 {
			p.CompletionRate = float64(p.CompletedRows) / float64(p.TotalRows) * 100
		}
		out = append(out, p)
	}
	return out
}

// Overall folds per-workbook progress into one run-level number.
func Overall(progress []Progress) Progress {
	total := Progress{WorkbookID: "ALL", AuditorName: "All auditors"}
	for _, p := range progress {
		total.TotalRows += p.TotalRows
		total.CompletedRows += p.CompletedRows
	}
	if total.TotalRows > 0 {
		total.CompletionRate = float64(total.CompletedRows) / float64(total.TotalRows) * 100
	}
	return total
}
