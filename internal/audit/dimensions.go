package audit

import "sort"

// CategoryMetrics is the rollup for one attribute category.
type CategoryMetrics struct {
	Category string       `json:"category"`
	Counts   ResultCounts `json:"counts"`
	PassRate float64      `json:"pass_rate"`
	FailRate float64      `json:"fail_rate"`
}

// AttributeMetrics is the rollup for one test attribute. FailureComments
// carries the deduplicated comment text of failing rows for traceability;
// it is unbounded here and capped by the export layer.
type AttributeMetrics struct {
	AttributeID     string       `json:"attribute_id"`
	AttributeName   string       `json:"attribute_name"`
	Category        string       `json:"category"`
	Counts          ResultCounts `json:"counts"`
	PassRate        float64      `json:"pass_rate"`
	FailRate        float64      `json:"fail_rate"`
	FailureComments []string     `json:"failure_comments,omitempty"`
}

// JurisdictionMetrics is the rollup for one jurisdiction.
type JurisdictionMetrics struct {
	Jurisdiction string       `json:"jurisdiction"`
	Counts       ResultCounts `json:"counts"`
	PassRate     float64      `json:"pass_rate"`
	FailRate     float64      `json:"fail_rate"`
}

// AuditorMetrics is the rollup for one auditor, including how much of the
// assigned workload has a recorded result.
type AuditorMetrics struct {
	AuditorID      string       `json:"auditor_id"`
	AuditorName    string       `json:"auditor_name"`
	Counts         ResultCounts `json:"counts"`
	PassRate       float64      `json:"pass_rate"`
	FailRate       float64      `json:"fail_rate"`
	CompletionRate float64      `json:"completion_rate"`
}

// RiskTierMetrics is the rollup for one risk tier.
type RiskTierMetrics struct {
	Tier     RiskTier     `json:"tier"`
	Counts   ResultCounts `json:"counts"`
	PassRate float64      `json:"pass_rate"`
	FailRate float64      `json:"fail_rate"`
}

// dimensionGroup accumulates one grouping key's rows. The first row seen
// for the key seeds any display fields the dimension record needs.
type dimensionGroup struct {
	first WorkbookRow
	rows  []WorkbookRow
}

func (g dimensionGroup) counts() ResultCounts {
	var c ResultCounts
	for _, row := range g.rows {
		c.Observe(row.Result)
	}
	return c
}

// groupRows buckets rows by the extracted key in one pass. The returned
// key slice preserves first-seen order so callers get deterministic
// output before their own sort.
func groupRows(rows []WorkbookRow, key func(WorkbookRow) string) (map[string]*dimensionGroup, []string) {
	groups := make(map[string]*dimensionGroup)
	var order []string
	for _, row := range rows {
		k := key(row)
		g, ok := groups[k]
		if !ok {
			g = &dimensionGroup{first: row}
			groups[k] = g
			order = append(order, k)
		}
		g.rows = append(g.rows, row)
	}
	return groups, order
}

// aggregateByCategory groups on the attribute category, worst fail rate
// first.
func aggregateByCategory(rows []WorkbookRow) []CategoryMetrics {
	groups, order := groupRows(rows, func(r WorkbookRow) string { return orUnknown(r.AttributeCategory) })

	out := make([]CategoryMetrics, 0, len(order))
	for _, k := range order {
		counts := groups[k].counts()
		out = append(out, CategoryMetrics{
			Category: k,
			Counts:   counts,
			PassRate: passRate(counts),
			FailRate: failRate(counts),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FailRate != out[j].FailRate {
			return out[i].FailRate > out[j].FailRate
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// aggregateByAttribute groups on the attribute id, worst fail rate first,
// collecting deduplicated comments from failing rows.
func aggregateByAttribute(rows []WorkbookRow) []AttributeMetrics {
	groups, order := groupRows(rows, func(r WorkbookRow) string { return orUnknown(r.AttributeID) })

	out := make([]AttributeMetrics, 0, len(order))
	for _, k := range order {
		g := groups[k]
		counts := g.counts()

		var comments []string
		seen := make(map[string]struct{})
		for _, row := range g.rows {
			if !row.Result.IsFail() || row.Comment == "" {
				continue
			}
			if _, dup := seen[row.Comment]; dup {
				continue
			}
			seen[row.Comment] = struct{}{}
			comments = append(comments, row.Comment)
		}

		out = append(out, AttributeMetrics{
			AttributeID:     k,
			AttributeName:   g.first.AttributeName,
			Category:        orUnknown(g.first.AttributeCategory),
			Counts:          counts,
			PassRate:        passRate(counts),
			FailRate:        failRate(counts),
			FailureComments: comments,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FailRate != out[j].FailRate {
			return out[i].FailRate > out[j].FailRate
		}
		return out[i].AttributeName < out[j].AttributeName
	})
	return out
}

// aggregateByJurisdiction groups on the jurisdiction, largest workload
// first.
func aggregateByJurisdiction(rows []WorkbookRow) []JurisdictionMetrics {
	groups, order := groupRows(rows, func(r WorkbookRow) string { return orUnknown(r.Jurisdiction) })

	out := make([]JurisdictionMetrics, 0, len(order))
	for _, k := range order {
		counts := groups[k].counts()
		out = append(out, JurisdictionMetrics{
			Jurisdiction: k,
			Counts:       counts,
			PassRate:     passRate(counts),
			FailRate:     failRate(counts),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Counts.TotalTests != out[j].Counts.TotalTests {
			return out[i].Counts.TotalTests > out[j].Counts.TotalTests
		}
		return out[i].Jurisdiction < out[j].Jurisdiction
	})
	return out
}

// aggregateByAuditor groups on the auditor id, largest workload first,
// with a completion rate over assigned rows.
func aggregateByAuditor(rows []WorkbookRow) []AuditorMetrics {
	groups, order := groupRows(rows, func(r WorkbookRow) string { return orUnknown(r.AuditorID) })

	out := make([]AuditorMetrics, 0, len(order))
	for _, k := range order {
		g := groups[k]
		counts := g.counts()

		completed := 0
		for _, row := range g.rows {
			if row.Result.IsCompleted() {
				completed++
			}
		}

		out = append(out, AuditorMetrics{
			AuditorID:      k,
			AuditorName:    g.first.AuditorName,
			Counts:         counts,
			PassRate:       passRate(counts),
			FailRate:       failRate(counts),
			CompletionRate: percentage(completed, len(g.rows)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Counts.TotalTests != out[j].Counts.TotalTests {
			return out[i].Counts.TotalTests > out[j].Counts.TotalTests
		}
		return out[i].AuditorID < out[j].AuditorID
	})
	return out
}

// aggregateByRiskTier groups on the classified tier, reported in fixed
// severity order. Tiers with no rows are omitted.
func aggregateByRiskTier(rows []WorkbookRow) []RiskTierMetrics {
	groups, _ := groupRows(rows, func(r WorkbookRow) string {
		return string(ClassifyRiskTier(r.InherentRiskScore))
	})

	out := make([]RiskTierMetrics, 0, len(groups))
	for _, tier := range TierSeverityOrder {
		g, ok := groups[string(tier)]
		if !ok {
			continue
		}
		counts := g.counts()
		out = append(out, RiskTierMetrics{
			Tier:     tier,
			Counts:   counts,
			PassRate: passRate(counts),
			FailRate: failRate(counts),
		})
	}
	return out
}
