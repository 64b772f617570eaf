package events

import (
	"context"
	"time"
)

// Kafka topics
const (
	TopicClientActivity = "client-activity"
)

// Event types
const (
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
	EventTypeClientDeleted   = "client.deleted"
)

// ClientActivityEvent describes a change to a client or its favorites
type ClientActivityEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ClientID  uint      `json:"client_id"`
	ProductID int64     `json:"product_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits client activity events. Publishing is best effort; callers
// log failures and never fail the originating request over one.
type Publisher interface {
	PublishClientActivity(ctx context.Context, event ClientActivityEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured and in tests
type NoopPublisher struct{}

func (NoopPublisher) PublishClientActivity(ctx context.Context, event ClientActivityEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
