package testutils

import (
	"context"
	"sync"

	"github.com/KirkDiggler/guildcraft/internal/notifications"
)

// RecordingPublisher keeps every published notification for assertions
type RecordingPublisher struct {
	mu     sync.Mutex
	events []notifications.Notification
}

var _ notifications.Publisher = (*RecordingPublisher)(nil)

// Publish records the notification
func (r *RecordingPublisher) Publish(_ context.Context, eventType notifications.EventType, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notifications.Notification{Type: eventType, Payload: payload})
}

// Events returns the recorded notifications in publish order
func (r *RecordingPublisher) Events() []notifications.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifications.Notification(nil), r.events...)
}

// Types returns the recorded event types in publish order
func (r *RecordingPublisher) Types() []notifications.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notifications.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

// Reset forgets everything recorded so far
func (r *RecordingPublisher) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
