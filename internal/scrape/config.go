// Package scrape implements the crawl orchestrator: the {location ×
// content-type} iteration, retry and politeness policy, progress tracking,
// and the single-active-run registry.
package scrape

import (
	"fmt"
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// RunConfig is the immutable per-run configuration.
type RunConfig struct {
	// Locations are the target location strings, iterated in order.
	Locations []string `json:"locations"`
	// ContentTypes selects which entity kinds to harvest, in order.
	ContentTypes []models.ContentType `json:"content_types"`
	// Keywords maps a content type to its search keyword.
	Keywords map[models.ContentType]string `json:"keywords"`
	// MaxPages bounds pagination per (location, content type).
	MaxPages int `json:"max_pages"`
	// Delay is the base politeness delay; actual sleeps are drawn from
	// [Delay, 1.5×Delay].
	Delay time.Duration `json:"delay"`
	// MaxRetries bounds retry attempts per page fetch.
	MaxRetries int `json:"max_retries"`
	// DatePosted is an optional posted-date filter forwarded to the search
	// endpoint (e.g. "past-week").
	DatePosted string `json:"date_posted,omitempty"`
}

// Validate enforces the run invariants before a run may start.
func (c RunConfig) Validate() error {
	if len(c.Locations) == 0 {
		return fmt.Errorf("run config: at least one location required")
	}
	for _, loc := range c.Locations {
		if loc == "" {
			return fmt.Errorf("run config: locations must be non-empty strings")
		}
	}
	if len(c.ContentTypes) == 0 {
		return fmt.Errorf("run config: at least one content type required")
	}
	for _, ct := range c.ContentTypes {
		if !ct.Valid() {
			return fmt.Errorf("run config: unknown content type %q", ct)
		}
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("run config: max_pages must be >= 0")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("run config: max_retries must be >= 0")
	}
	return nil
}

// withDefaults fills optional knobs before the run starts.
func (c RunConfig) withDefaults() RunConfig {
	if c.MaxPages == 0 {
		c.MaxPages = 5
	}
	if c.Delay == 0 {
		c.Delay = 2 * time.Second
	}
	if c.Keywords == nil {
		c.Keywords = map[models.ContentType]string{}
	}
	return c
}
