package publish

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// PubSub publishes records to a Google Cloud Pub/Sub topic.
type PubSub struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPubSub connects using Application Default Credentials and verifies the
// topic exists.
func NewPubSub(ctx context.Context, projectID, topicID string) (*PubSub, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	topic := client.Topic(topicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("check pubsub topic %q: %w", topicID, err)
	}
	if !exists {
		_ = client.Close()
		return nil, fmt.Errorf("pubsub topic %q does not exist in project %q", topicID, projectID)
	}
	return &PubSub{client: client, topic: topic}, nil
}

// PublishPersisted implements Publisher and blocks until the server acks.
func (p *PubSub) PublishPersisted(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"content_type": string(rec.ContentType),
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish record %s: %w", rec.SourceID, err)
	}
	return nil
}

// Close stops the topic's goroutines and closes the client.
func (p *PubSub) Close() error {
	p.topic.Stop()
	if err := p.client.Close(); err != nil {
		return fmt.Errorf("close pubsub client: %w", err)
	}
	return nil
}
