package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/talentboard/harvester/internal/models"
)

// Local writes snapshots to a directory tree on disk.
type Local struct {
	root string
	now  func() time.Time
}

// NewLocal creates the root directory if needed.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("snapshot root directory must be set")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot root: %w", err)
	}
	return &Local{root: root, now: time.Now}, nil
}

// Save implements Store.
func (l *Local) Save(_ context.Context, contentType models.ContentType, pageURL string, body []byte) (string, error) {
	name := ObjectName(contentType, pageURL, l.now())
	full := filepath.Join(l.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(full, body, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return full, nil
}

// Close implements Store.
func (l *Local) Close() error { return nil }
