package scrape

import (
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// Result is the output of one (location, content type) unit of work.
type Result struct {
	ContentType models.ContentType
	Location    string
	// OK is true when the unit recorded no errors at all. A false OK does
	// not invalidate Drafts: candidates that survived are still persisted.
	OK bool
	// Unsupported marks content types whose extraction is a placeholder.
	// It is distinct from an empty success so callers cannot mistake
	// "no data" for "feature absent".
	Unsupported bool
	Drafts      []models.Draft
	Errors      []string
	StartedAt   time.Time
	Elapsed     time.Duration
	Pages       int
	ItemsFound  int
}
