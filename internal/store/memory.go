package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/talentboard/harvester/internal/models"
)

// MemoryGateway is an in-memory Gateway used for tests and local runs.
type MemoryGateway struct {
	mu      sync.Mutex
	records map[models.ContentType]map[string]models.Draft
}

// NewMemoryGateway builds an empty MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		records: make(map[models.ContentType]map[string]models.Draft),
	}
}

// SaveDraft implements Gateway. Duplicate source identifiers are no-ops.
func (g *MemoryGateway) SaveDraft(_ context.Context, draft models.Draft) error {
	if draft == nil {
		return fmt.Errorf("save draft: nil draft")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	kind := draft.Kind()
	byID, ok := g.records[kind]
	if !ok {
		byID = make(map[string]models.Draft)
		g.records[kind] = byID
	}
	if _, exists := byID[draft.SourceID()]; exists {
		return nil
	}
	byID[draft.SourceID()] = draft
	return nil
}

// Close implements Gateway.
func (g *MemoryGateway) Close() error { return nil }

// Count returns the number of stored records for a content type.
func (g *MemoryGateway) Count(kind models.ContentType) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.records[kind])
}

// Jobs returns the stored job drafts in arbitrary order.
func (g *MemoryGateway) Jobs() []*models.JobDraft {
	g.mu.Lock()
	defer g.mu.Unlock()
	jobs := make([]*models.JobDraft, 0, len(g.records[models.ContentJob]))
	for _, d := range g.records[models.ContentJob] {
		if job, ok := d.(*models.JobDraft); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs
}
