// Package store defines the persistence gateway the engine hands validated
// drafts to. The engine does not own schema or transactions beyond
// per-record inserts; foreign keys are resolved via find-or-create lookups
// keyed on natural names.
package store

import (
	"context"

	"github.com/talentboard/harvester/internal/models"
)

// Gateway persists validated drafts. Implementations must treat a draft
// whose source identifier is already present as a silent no-op so repeated
// runs do not duplicate records.
type Gateway interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	Close() error
}
