package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

func sampleResult() *audit.ConsolidationResult {
	rows := []audit.WorkbookRow{
		{
			EntityID: "E1", EntityName: "Acme Ltd", Jurisdiction: "UK",
			PartyType: "Limited Company", InherentRiskScore: 3.2,
			AttributeID: "A1", AttributeName: "Sanctions Screening", AttributeCategory: "Sanctions",
			AuditorID: "AUD-1", AuditorName: "Auditor One",
			Result: audit.ResultFailRegulatory, Comment: "hit not dispositioned",
		},
		{
			EntityID: "E2", EntityName: "Jane Doe", Jurisdiction: "US",
			PartyType: "Individual", InherentRiskScore: 1.4,
			AttributeID: "A2", AttributeName: "Identity Document Validity", AttributeCategory: "Identification",
			AuditorID: "AUD-1", AuditorName: "Auditor One",
			Result: audit.ResultPass,
		},
	}
	return audit.Consolidate([]audit.GeneratedWorkbook{{
		WorkbookID: "WB-1", AuditorID: "AUD-1", AuditorName: "Auditor One", Rows: rows,
	}})
}

func TestBuildSheets(t *testing.T) {
	sheets := BuildSheets(sampleResult())

	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Name)
		require.NotEmpty(t, s.Header, "sheet %s has no header", s.Name)
		for _, row := range s.Rows {
			assert.Len(t, row, len(s.Header), "sheet %s row width mismatch", s.Name)
		}
	}
	assert.Equal(t, []string{
		"Summary", "By Category", "By Attribute", "By Jurisdiction",
		"By Auditor", "By Risk Tier", "Exceptions", "Customers", "Raw Rows",
	}, names)
}

func TestBuildSheets_CommentCap(t *testing.T) {
	mkRow := func(entity, comment string) audit.WorkbookRow {
		return audit.WorkbookRow{
			EntityID: entity, AttributeID: "A1", AttributeName: "Sanctions Screening",
			AttributeCategory: "Sanctions", Result: audit.ResultFailRegulatory, Comment: comment,
		}
	}
	res := audit.Consolidate([]audit.GeneratedWorkbook{{
		WorkbookID: "WB-1", AuditorID: "AUD-1",
		Rows: []audit.WorkbookRow{
			mkRow("E1", "c1"), mkRow("E2", "c2"), mkRow("E3", "c3"), mkRow("E4", "c4"),
		},
	}})

	// Internally unbounded, capped at 3 in the export.
	require.Len(t, res.ByAttribute, 1)
	assert.Len(t, res.ByAttribute[0].FailureComments, 4)

	sheets := BuildSheets(res)
	var attrSheet Sheet
	for _, s := range sheets {
		if s.Name == "By Attribute" {
			attrSheet = s
		}
	}
	require.Len(t, attrSheet.Rows, 1)
	last := attrSheet.Rows[0][len(attrSheet.Rows[0])-1]
	assert.Equal(t, "c1; c2; c3", last)
}

func TestWriteCSVDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteCSVDir(dir, BuildSheets(sampleResult())))

	f, err := os.Open(filepath.Join(dir, "exceptions.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one exception")
	assert.Equal(t, "Exception ID", records[0][0])
	assert.Equal(t, "Acme Ltd", records[1][1])
}

func TestBuildSheets_EmptyResult(t *testing.T) {
	sheets := BuildSheets(audit.Consolidate(nil))
	for _, s := range sheets {
		if s.Name == "Summary" {
			assert.NotEmpty(t, s.Rows)
			continue
		}
		assert.Empty(t, s.Rows, "sheet %s should be empty", s.Name)
	}
}
