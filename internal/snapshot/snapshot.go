// Package snapshot archives the raw markup of fetched detail pages so
// extraction regressions can be replayed without re-crawling.
package snapshot

import (
	"context"
	"crypto/sha256"
	"fmt"
	"path"
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// Store persists raw page snapshots.
type Store interface {
	// Save writes the body and returns the storage URI.
	Save(ctx context.Context, contentType models.ContentType, pageURL string, body []byte) (string, error)
	Close() error
}

// ObjectName builds the archive path for a page:
// <type>/<date>/<sha256(url)>.html.
func ObjectName(contentType models.ContentType, pageURL string, at time.Time) string {
	urlHash := fmt.Sprintf("%x", sha256.Sum256([]byte(pageURL)))
	return path.Join(
		string(contentType),
		at.UTC().Format("2006-01-02"),
		urlHash+".html",
	)
}

// NoOp discards snapshots; used when archiving is disabled.
type NoOp struct{}

// Save implements Store.
func (NoOp) Save(_ context.Context, _ models.ContentType, _ string, _ []byte) (string, error) {
	return "", nil
}

// Close implements Store.
func (NoOp) Close() error { return nil }
