package publish

import (
	"context"
	"sync"
)

// Memory collects records in-process; used in tests and local runs.
type Memory struct {
	mu      sync.Mutex
	records []Record
}

// NewMemory builds an empty Memory publisher.
func NewMemory() *Memory {
	return &Memory{}
}

// PublishPersisted implements Publisher.
func (m *Memory) PublishPersisted(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// Close implements Publisher.
func (m *Memory) Close() error { return nil }

// Records returns a copy of everything published so far.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.records...)
}
