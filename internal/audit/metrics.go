package audit

// ConsolidatedMetrics is the scalar rollup over every row from every
// contributing workbook.
type ConsolidatedMetrics struct {
	Counts               ResultCounts `json:"counts"`
	PassRate             float64      `json:"pass_rate"`
	FailRate             float64      `json:"fail_rate"`
	UniqueEntityCount    int          `json:"unique_entity_count"`
	UniqueAttributeCount int          `json:"unique_attribute_count"`
	WorkbookCount        int          `json:"workbook_count"`
}

// computeMetrics builds the scalar rollup in a single pass, deduplicating
// entity and attribute ids as it goes.
func computeMetrics(rows []WorkbookRow, workbookCount int) ConsolidatedMetrics {
	var counts ResultCounts
	entities := make(map[string]struct{})
	attributes := make(map[string]struct{})

	for _, row := range rows {
		counts.Observe(row.Result)
		entities[row.EntityID] = struct{}{}
		attributes[row.AttributeID] = struct{}{}
	}

	return ConsolidatedMetrics{
		Counts:               counts,
		PassRate:             passRate(counts),
		FailRate:             failRate(counts),
		UniqueEntityCount:    len(entities),
		UniqueAttributeCount: len(attributes),
		WorkbookCount:        workbookCount,
	}
}
