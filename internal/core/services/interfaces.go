package services

import "context"

// EventPublisher publishes domain events to the message broker. A nil
// publisher disables event delivery; callers must treat publishing as
// best-effort and never fail the request on a broker error.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
	Close() error
}
