package dataset

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sme-financial-health/internal/models"
)

// MemorySource is an in-memory Source that keeps insertion order.
type MemorySource struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*models.FinancialRecord
}

// NewMemorySource creates a source holding records.
// A later record with a duplicate ID replaces the earlier one.
func NewMemorySource(records ...*models.FinancialRecord) *MemorySource {
	m := &MemorySource{records: make(map[string]*models.FinancialRecord)}
	m.Put(records...)
	return m
}

// Put adds or replaces records.
func (m *MemorySource) Put(records ...*models.FinancialRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range records {
		if r == nil {
			continue
		}
		id := strings.TrimSpace(r.BusinessID)
		if _, exists := m.records[id]; !exists {
			m.order = append(m.order, id)
		}
		m.records[id] = r
	}
}

// Len returns the number of records.
func (m *MemorySource) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Get returns a copy of the record for businessID.
func (m *MemorySource) Get(_ context.Context, businessID string) (*models.FinancialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[strings.TrimSpace(businessID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrBusinessNotFound, businessID)
	}
	cp := *r
	return &cp, nil
}

// List returns business summaries in insertion order.
func (m *MemorySource) List(_ context.Context) ([]models.BusinessSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]models.BusinessSummary, 0, len(m.order))
	for _, id := range m.order {
		r := m.records[id]
		summaries = append(summaries, models.BusinessSummary{
			BusinessID:           r.BusinessID,
			IndustryType:         r.IndustryType,
			AnnualRevenue:        r.AnnualRevenue,
			FinancialHealthScore: r.FinancialHealthScore,
		})
	}
	return summaries, nil
}
