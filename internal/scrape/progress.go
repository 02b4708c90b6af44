package scrape

import (
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// Progress is the mutable status snapshot of a run. The orchestrator is the
// only writer; readers always receive a copy, never a live reference.
type Progress struct {
	RunID              string                        `json:"run_id,omitempty"`
	IsRunning          bool                          `json:"is_running"`
	Completed          bool                          `json:"completed"`
	CurrentLocation    string                        `json:"current_location,omitempty"`
	CurrentContentType string                        `json:"current_content_type,omitempty"`
	CurrentActivity    string                        `json:"current_activity,omitempty"`
	TotalLocations     int                           `json:"total_locations"`
	CompletedLocations int                           `json:"completed_locations"`
	Counts             map[models.ContentType]int    `json:"counts"`
	Errors             int                           `json:"errors"`
	Retries            int                           `json:"retries"`
	RateLimitHits      int                           `json:"rate_limit_hits"`
	StartTime          time.Time                     `json:"start_time,omitzero"`
	LastError          string                        `json:"last_error,omitempty"`

	// Reserved for future interactive-challenge handling.
	VerificationRequired bool    `json:"verification_required"`
	VerificationURL      *string `json:"verification_url"`
}

// clone returns a deep copy safe to hand to readers.
func (p Progress) clone() Progress {
	cp := p
	cp.Counts = make(map[models.ContentType]int, len(p.Counts))
	for k, v := range p.Counts {
		cp.Counts[k] = v
	}
	return cp
}

// IdleProgress is the zeroed shape returned before any run has occurred.
func IdleProgress() Progress {
	return Progress{Counts: map[models.ContentType]int{}}
}
