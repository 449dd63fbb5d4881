// Package workbook builds per-auditor testing workbooks from a sampled
// entity set and the testing-attribute dictionary, and tracks completion
// progress while auditors work through them.
package workbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/dictionary"
)

// Auditor is one member of the testing roster.
type Auditor struct {
	AuditorID string `json:"auditor_id"`
	Name      string `json:"name"`
}

// DefaultRoster builds a numbered roster of n auditors for demo runs.
func DefaultRoster(n int) []Auditor {
	if n < 1 {
		n = 1
	}
	out := make([]Auditor, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Auditor{
			AuditorID: fmt.Sprintf("AUD-%02d", i),
			Name:      fmt.Sprintf("Auditor %02d", i),
		})
	}
	return out
}

// Generate builds one workbook per auditor: entities are assigned
// round-robin across the roster, and each entity contributes one row per
// applicable dictionary attribute. An entity's rows always stay with a
// single auditor. Every (entity, attribute) pair appears exactly once
// across the run.
func Generate(entities []audit.Entity, attrs []dictionary.TestAttribute, roster []Auditor) []audit.GeneratedWorkbook {
	if len(roster) == 0 {
		roster = DefaultRoster(1)
	}

	now := time.Now()
	workbooks := make([]audit.GeneratedWorkbook, len(roster))
	for i, a := range roster {
		workbooks[i] = audit.GeneratedWorkbook{
			WorkbookID:  uuid.New().String(),
			AuditorID:   a.AuditorID,
			AuditorName: a.Name,
			Status:      audit.WorkbookDraft,
			CreatedAt:   now,
		}
	}

	for i, entity := range entities {
		wb := &workbooks[i%len(roster)]
		for _, attr := range dictionary.ApplicableTo(attrs, entity.PartyType, entity.Jurisdiction) {
			wb.Rows = append(wb.Rows, audit.WorkbookRow{
				EntityID:          entity.EntityID,
				EntityName:        entity.Name,
				Jurisdiction:      entity.Jurisdiction,
				PartyType:         entity.PartyType,
				InherentRiskScore: entity.InherentRiskScore,
				DesignRiskScore:   entity.DesignRiskScore,
				AttributeID:       attr.AttributeID,
				AttributeName:     attr.Name,
				AttributeCategory: attr.Category,
				AuditorID:         wb.AuditorID,
				AuditorName:       wb.AuditorName,
			})
		}
	}
	return workbooks
}

// Publish marks a workbook as released to its auditor.
func Publish(wb *audit.GeneratedWorkbook, now time.Time) {
	wb.Status = audit.WorkbookPublished
	wb.PublishedAt = &now
}
