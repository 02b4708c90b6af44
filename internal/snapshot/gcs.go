package snapshot

import (
	"context"
	"fmt"
	"time"

	gstorage "cloud.google.com/go/storage"

	"github.com/talentboard/harvester/internal/models"
)

// GCS archives snapshots in a Google Cloud Storage bucket.
type GCS struct {
	client *gstorage.Client
	bucket string
	now    func() time.Time
}

// NewGCS connects using Application Default Credentials.
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	if bucket == "" {
		return nil, fmt.Errorf("snapshot bucket must be set")
	}
	client, err := gstorage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, now: time.Now}, nil
}

// Save implements Store.
func (g *GCS) Save(ctx context.Context, contentType models.ContentType, pageURL string, body []byte) (string, error) {
	name := ObjectName(contentType, pageURL, g.now())
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "text/html; charset=utf-8"
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write snapshot object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close snapshot object %s: %w", name, err)
	}
	return fmt.Sprintf("gs://%s/%s", g.bucket, name), nil
}

// Close implements Store.
func (g *GCS) Close() error {
	if err := g.client.Close(); err != nil {
		return fmt.Errorf("close gcs client: %w", err)
	}
	return nil
}
