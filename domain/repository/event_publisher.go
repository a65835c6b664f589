package repository

import "context"

// IEventPublisher delivers parse events to a message broker. Publish
// failures are logged by callers and never surfaced to the HTTP client.
type IEventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}
