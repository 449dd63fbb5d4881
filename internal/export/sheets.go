// Package export renders a ConsolidationResult into named tabular
// sheets. It owns only the shape of the exported data; any real
// spreadsheet formatting belongs to downstream tooling.
package export

import (
	"fmt"
	"strings"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// maxCommentsPerAttribute caps the failure-comment column on the
// attribute sheet. The engine keeps the full list; the export shows the
// first few for readability.
const maxCommentsPerAttribute = 3

// Sheet is one named grid of the export.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// BuildSheets renders every view of the consolidation: summary, the five
// dimensional breakdowns, exceptions, customers, and the raw rows.
func BuildSheets(res *audit.ConsolidationResult) []Sheet {
	return []Sheet{
		summarySheet(res),
		categorySheet(res.ByCategory),
		attributeSheet(res.ByAttribute),
		jurisdictionSheet(res.ByJurisdiction),
		auditorSheet(res.ByAuditor),
		riskTierSheet(res.ByRiskTier),
		exceptionSheet(res.Exceptions),
		customerSheet(res.Customers),
		rawRowSheet(res.Rows),
	}
}

func pct(v float64) string   { return fmt.Sprintf("%.1f%%", v) }
func num(v int) string       { return fmt.Sprintf("%d", v) }
func score(v float64) string { return fmt.Sprintf("%.1f", v) }

func countCells(c audit.ResultCounts) []string {
	return []string{
		num(c.TotalTests), num(c.PassCount), num(c.PassWithObservationCount),
		num(c.FailRegulatoryCount), num(c.FailProcedureCount),
		num(c.QuestionToLOBCount), num(c.NACount),
	}
}

var countHeader = []string{
	"Total", "Pass", "Pass w/Observation", "Fail 1 - Regulatory",
	"Fail 2 - Procedure", "Question to LOB", "N/A",
}

func summarySheet(res *audit.ConsolidationResult) Sheet {
	m := res.Metrics
	return Sheet{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Consolidation ID", res.ConsolidationID},
			{"Generated At", res.GeneratedAt.Format("2006-01-02 15:04:05")},
			{"Workbooks", num(m.WorkbookCount)},
			{"Total Tests", num(m.Counts.TotalTests)},
			{"Unique Entities", num(m.UniqueEntityCount)},
			{"Unique Attributes", num(m.UniqueAttributeCount)},
			{"Pass Rate", pct(m.PassRate)},
			{"Fail Rate", pct(m.FailRate)},
			{"Exceptions", num(len(res.Exceptions))},
		},
	}
}

func categorySheet(in []audit.CategoryMetrics) Sheet {
	s := Sheet{Name: "By Category", Header: append([]string{"Category"}, append(countHeader, "Pass Rate", "Fail Rate")...)}
	for _, m := range in {
		row := append([]string{m.Category}, countCells(m.Counts)...)
		s.Rows = append(s.Rows, append(row, pct(m.PassRate), pct(m.FailRate)))
	}
	return s
}

func attributeSheet(in []audit.AttributeMetrics) Sheet {
	s := Sheet{
		Name:   "By Attribute",
		Header: append([]string{"Attribute", "Category"}, append(countHeader, "Pass Rate", "Fail Rate", "Failure Comments")...),
	}
	for _, m := range in {
		comments := m.FailureComments
		if len(comments) > maxCommentsPerAttribute {
			comments = comments[:maxCommentsPerAttribute]
		}
		row := append([]string{m.AttributeName, m.Category}, countCells(m.Counts)...)
		s.Rows = append(s.Rows, append(row, pct(m.PassRate), pct(m.FailRate), strings.Join(comments, "; ")))
	}
	return s
}

func jurisdictionSheet(in []audit.JurisdictionMetrics) Sheet {
	s := Sheet{Name: "By Jurisdiction", Header: append([]string{"Jurisdiction"}, append(countHeader, "Pass Rate", "Fail Rate")...)}
	for _, m := range in {
		row := append([]string{m.Jurisdiction}, countCells(m.Counts)...)
		s.Rows = append(s.Rows, append(row, pct(m.PassRate), pct(m.FailRate)))
	}
	return s
}

func auditorSheet(in []audit.AuditorMetrics) Sheet {
	s := Sheet{
		Name:   "By Auditor",
		Header: append([]string{"Auditor"}, append(countHeader, "Pass Rate", "Fail Rate", "Completion")...),
	}
	for _, m := range in {
		name := m.AuditorName
		if name == "" {
			name = m.AuditorID
		}
		row := append([]string{name}, countCells(m.Counts)...)
		s.Rows = append(s.Rows, append(row, pct(m.PassRate), pct(m.FailRate), pct(m.CompletionRate)))
	}
	return s
}

func riskTierSheet(in []audit.RiskTierMetrics) Sheet {
	s := Sheet{Name: "By Risk Tier", Header: append([]string{"Risk Tier"}, append(countHeader, "Pass Rate", "Fail Rate")...)}
	for _, m := range in {
		row := append([]string{string(m.Tier)}, countCells(m.Counts)...)
		s.Rows = append(s.Rows, append(row, pct(m.PassRate), pct(m.FailRate)))
	}
	return s
}

func exceptionSheet(in []audit.ExceptionDetail) Sheet {
	s := Sheet{
		Name: "Exceptions",
		Header: []string{
			"Exception ID", "Entity", "Jurisdiction", "Risk Tier",
			"Attribute", "Category", "Result", "Comment", "Auditor",
		},
	}
	for _, ex := range in {
		s.Rows = append(s.Rows, []string{
			ex.ExceptionID, ex.EntityName, ex.Jurisdiction, string(ex.RiskTier),
			ex.AttributeName, ex.AttributeCategory, string(ex.ResultType), ex.Comment, ex.AuditorName,
		})
	}
	return s
}

func customerSheet(in []audit.ConsolidatedCustomer) Sheet {
	s := Sheet{
		Name: "Customers",
		Header: []string{
			"Entity", "Jurisdiction", "Party Type", "Risk Tier", "Overall Result",
			"Total", "Pass", "Pass w/Observation", "Fail", "Question", "N/A",
			"Observations", "Questions to LOB", "Failures",
		},
	}
	for _, c := range in {
		s.Rows = append(s.Rows, []string{
			c.EntityName, c.Jurisdiction, c.PartyType, string(c.RiskTier), string(c.OverallResult),
			num(c.TotalTests), num(c.PassCount), num(c.PassWithObservationCount),
			num(c.FailCount), num(c.QuestionCount), num(c.NACount),
			num(len(c.Observations)), num(len(c.QuestionsToLOB)), num(len(c.Failures)),
		})
	}
	return s
}

func rawRowSheet(in []audit.WorkbookRow) Sheet {
	s := Sheet{
		Name: "Raw Rows",
		Header: []string{
			"Entity ID", "Entity", "Jurisdiction", "Party Type", "Inherent Risk", "Design Risk",
			"Attribute", "Category", "Auditor", "Result", "Comment",
		},
	}
	for _, r := range in {
		s.Rows = append(s.Rows, []string{
			r.EntityID, r.EntityName, r.Jurisdiction, r.PartyType,
			score(r.InherentRiskScore), score(r.DesignRiskScore),
			r.AttributeName, r.AttributeCategory, r.AuditorName, string(r.Result), r.Comment,
		})
	}
	return s
}
