package cli

import (
	"context"
	"fmt"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/dictionary"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/dictionary/seed"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
)

// RunGaps derives testing requirements from the stored population and
// reports categories the dictionary cannot cover.
func RunGaps(ctx context.Context, ds store.DataStore) error {
	entities, err := ds.ListEntities(ctx)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		fmt.Println("No entities in store. Run `seed` first.")
		return nil
	}

	attrs := seed.GenerateCDDAttributes()
	categories := dictionary.Categories(attrs)

	// Every populated (jurisdiction, party type) slice must be testable
	// in every category.
	seen := make(map[string]bool)
	var reqs []dictionary.Requirement
	for _, e := range entities {
		for _, cat := range categories {
			key := e.Jurisdiction + "|" + e.PartyType + "|" + cat
			if seen[key] {
				continue
			}
			seen[key] = true
			reqs = append(reqs, dictionary.Requirement{
				Jurisdiction: e.Jurisdiction,
				PartyType:    e.PartyType,
				Category:     cat,
			})
		}
	}

	gaps := dictionary.Gaps(reqs, attrs)
	if len(gaps) == 0 {
		fmt.Printf("No coverage gaps across %d requirements.\n", len(reqs))
		return nil
	}

	fmt.Printf("%d coverage gap(s):\n", len(gaps))
	for _, g := range gaps {
		fmt.Printf("  %-4s %-18s %-16s %s\n", g.Jurisdiction, g.PartyType, g.Category, g.Detail)
	}
	return nil
}
