// Package publish notifies downstream consumers when a validated record is
// persisted, so the enclosing platform can react without polling.
package publish

import (
	"context"
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// Record describes one persisted draft.
type Record struct {
	RunID       string             `json:"run_id"`
	ContentType models.ContentType `json:"content_type"`
	SourceID    string             `json:"source_id"`
	PersistedAt time.Time          `json:"persisted_at"`
}

// Publisher delivers Record notifications. Publish failures are logged by
// the orchestrator and never fail the run.
type Publisher interface {
	PublishPersisted(ctx context.Context, rec Record) error
	Close() error
}
