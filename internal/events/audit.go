package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a zap-backed audit trail for auth events.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event Event) error {
		logger.Info("audit event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("username", event.Username),
			zap.Time("at", event.Timestamp),
		)
		return nil
	}
	dispatcher.Subscribe(EventUserRegistered, handler)
	dispatcher.Subscribe(EventUserLoggedIn, handler)
}
