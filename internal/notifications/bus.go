// Package notifications delivers fire-and-forget game notifications to the
// presentation layer over the rpg-toolkit event bus
package notifications

//go:generate mockgen -destination=mock/mock_publisher.go -package=notificationsmock github.com/KirkDiggler/guildcraft/internal/notifications Publisher

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/guildcraft/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// PayloadKey is the event context key holding the notification payload
const PayloadKey = "payload"

// Publisher accepts notifications. Delivery is unacknowledged; failures are
// logged by the implementation and never reach the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType EventType, payload any)
}

// HandlerFunc receives notifications from Subscribe
type HandlerFunc func(ctx context.Context, n Notification) error

// Config holds the dependencies for the notification bus
type Config struct {
	EventBus events.EventBus
	// GameID identifies the playthrough as the event source
	GameID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.GameID == "" {
		vb.RequiredField("GameID")
	}

	return vb.Build()
}

// Bus publishes notifications as rpg-toolkit game events
type Bus struct {
	bus    events.EventBus
	source core.Entity
}

// Ensure Bus implements Publisher
var _ Publisher = (*Bus)(nil)

// NewBus creates a notification bus over the given event bus
func NewBus(cfg *Config) (*Bus, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Bus{
		bus:    cfg.EventBus,
		source: &rpgtoolkit.GameEntity{ID: cfg.GameID},
	}, nil
}

// Publish emits a notification. Handler errors are logged and dropped.
func (b *Bus) Publish(ctx context.Context, eventType EventType, payload any) {
	event := events.NewGameEvent(string(eventType), b.source, nil)
	event.Context().Set(PayloadKey, payload)

	if err := b.bus.Publish(ctx, event); err != nil {
		slog.Warn("Notification delivery failed",
			"event_type", eventType,
			"game_id", b.source.GetID(),
			"error", err,
		)
	}
}

// Subscribe registers handler for one event type and returns the
// subscription ID
func (b *Bus) Subscribe(eventType EventType, handler HandlerFunc) string {
	return b.bus.SubscribeFunc(string(eventType), 0, func(ctx context.Context, e events.Event) error {
		payload, _ := e.Context().Get(PayloadKey)
		return handler(ctx, Notification{Type: eventType, Payload: payload})
	})
}

// Unsubscribe removes a subscription
func (b *Bus) Unsubscribe(id string) error {
	if err := b.bus.Unsubscribe(id); err != nil {
		return errors.Wrapf(err, "failed to unsubscribe %s", id)
	}
	return nil
}

// Discard drops every notification
type Discard struct{}

// Publish does nothing
func (Discard) Publish(context.Context, EventType, any) {}
