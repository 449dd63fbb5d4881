package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

func demoWorkbook() *audit.GeneratedWorkbook {
	return &audit.GeneratedWorkbook{
		WorkbookID:  "WB-1",
		AuditorID:   "AUD-1",
		AuditorName: "Auditor One",
		Status:      audit.WorkbookPublished,
		CreatedAt:   time.Now().Truncate(time.Second),
		Rows: []audit.WorkbookRow{
			{EntityID: "E1", AttributeID: "A1", AuditorID: "AUD-1"},
			{EntityID: "E1", AttributeID: "A2", AuditorID: "AUD-1"},
		},
	}
}

func TestMemoryStore_WorkbookRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SaveWorkbook(ctx, demoWorkbook()))

	got, err := s.GetWorkbook(ctx, "WB-1")
	require.NoError(t, err)
	assert.Equal(t, "AUD-1", got.AuditorID)
	assert.Len(t, got.Rows, 2)

	_, err = s.GetWorkbook(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_UpdateRowResult(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.SaveWorkbook(ctx, demoWorkbook()))

	err := s.UpdateRowResult(ctx, "WB-1", "E1", "A2", audit.ResultFailRegulatory, "BO evidence expired")
	require.NoError(t, err)

	got, err := s.GetWorkbook(ctx, "WB-1")
	require.NoError(t, err)
	assert.Equal(t, audit.ResultFailRegulatory, got.Rows[1].Result)
	assert.Equal(t, "BO evidence expired", got.Rows[1].Comment)
	assert.Equal(t, audit.ResultPending, got.Rows[0].Result, "other rows untouched")

	err = s.UpdateRowResult(ctx, "WB-1", "E9", "A1", audit.ResultPass, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.SaveWorkbook(ctx, demoWorkbook()))

	got, err := s.GetWorkbook(ctx, "WB-1")
	require.NoError(t, err)
	got.Rows[0].Result = audit.ResultNA

	again, err := s.GetWorkbook(ctx, "WB-1")
	require.NoError(t, err)
	assert.Equal(t, audit.ResultPending, again.Rows[0].Result, "mutating a read copy must not leak into the store")
}

func TestMemoryStore_EntitiesAndReset(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.SeedEntities(ctx, DemoEntities()))
	entities, err := s.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, len(DemoEntities()))

	// Seeding is idempotent on entity id.
	require.NoError(t, s.SeedEntities(ctx, entities))
	entities, err = s.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, len(DemoEntities()))

	require.NoError(t, s.Reset(ctx))
	entities, err = s.ListEntities(ctx)
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestDemoEntities_CoverAllTiers(t *testing.T) {
	tiers := make(map[audit.RiskTier]bool)
	for _, e := range DemoEntities() {
		tiers[audit.ClassifyRiskTier(e.InherentRiskScore)] = true
	}
	for _, tier := range audit.TierSeverityOrder {
		assert.Truef(t, tiers[tier], "demo population missing tier %s", tier)
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	s, err := New(Config{Backend: MemoryBackend})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New(Config{Backend: "bogus"})
	assert.Error(t, err)
}
