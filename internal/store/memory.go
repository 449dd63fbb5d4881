package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// MemoryStore keeps everything in process memory. It is the default demo
// backend, standing in for the original application's browser-local
// storage. Safe for concurrent use; all reads return copies.
type MemoryStore struct {
	mu        sync.RWMutex
	entities  map[string]audit.Entity
	workbooks map[string]*audit.GeneratedWorkbook
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entities:  make(map[string]audit.Entity),
		workbooks: make(map[string]*audit.GeneratedWorkbook),
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) SeedEntities(_ context.Context, entities []audit.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		s.entities[e.EntityID] = e
	}
	return nil
}

func (s *MemoryStore) ListEntities(_ context.Context) ([]audit.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityID < out[j].EntityID })
	return out, nil
}

func (s *MemoryStore) SaveWorkbook(_ context.Context, wb *audit.GeneratedWorkbook) error {
	if wb.WorkbookID == "" {
		return fmt.Errorf("save workbook: missing workbook id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workbooks[wb.WorkbookID] = copyWorkbook(wb)
	return nil
}

func (s *MemoryStore) GetWorkbook(_ context.Context, workbookID string) (*audit.GeneratedWorkbook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wb, ok := s.workbooks[workbookID]
	if !ok {
		return nil, fmt.Errorf("get workbook %s: %w", workbookID, ErrNotFound)
	}
	return copyWorkbook(wb), nil
}

func (s *MemoryStore) ListWorkbooks(_ context.Context) ([]audit.GeneratedWorkbook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.GeneratedWorkbook, 0, len(s.workbooks))
	for _, wb := range s.workbooks {
		out = append(out, *copyWorkbook(wb))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].AuditorID < out[j].AuditorID
	})
	return out, nil
}

func (s *MemoryStore) UpdateRowResult(_ context.Context, workbookID, entityID, attributeID string, result audit.TestResult, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wb, ok := s.workbooks[workbookID]
	if !ok {
		return fmt.Errorf("update row in workbook %s: %w", workbookID, ErrNotFound)
	}
	for i := range wb.Rows {
		if wb.Rows[i].EntityID == entityID && wb.Rows[i].AttributeID == attributeID {
			wb.Rows[i].Result = result
			wb.Rows[i].Comment = comment
			return nil
		}
	}
	return fmt.Errorf("update row (%s, %s) in workbook %s: %w", entityID, attributeID, workbookID, ErrNotFound)
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = make(map[string]audit.Entity)
	s.workbooks = make(map[string]*audit.GeneratedWorkbook)
	return nil
}

func copyWorkbook(wb *audit.GeneratedWorkbook) *audit.GeneratedWorkbook {
	cp := *wb
	cp.Rows = make([]audit.WorkbookRow, len(wb.Rows))
	copy(cp.Rows, wb.Rows)
	if wb.PublishedAt != nil {
		at := *wb.PublishedAt
		cp.PublishedAt = &at
	}
	return &cp
}
