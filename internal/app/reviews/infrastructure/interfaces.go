package infrastructure

import "context"

// MessagePublisher publishes review lifecycle events. Kept as an interface so
// services can be tested without a broker.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
