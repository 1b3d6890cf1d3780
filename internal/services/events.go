package services

import (
	"time"

	"userorders/internal/models"

	"go.uber.org/zap"
)

// Routing keys of the domain events published after successful mutations.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
	EventOrderAdded  = "order.added"
)

// EventPublisher delivers a domain event. pkg/rabbitmq.Client implements it.
type EventPublisher interface {
	PublishEvent(routingKey string, payload interface{}) error
}

// UserEvent is the body of every domain event.
type UserEvent struct {
	Event      string        `json:"event"`
	UserID     int64         `json:"userId"`
	Username   string        `json:"username,omitempty"`
	Order      *models.Order `json:"order,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// notifier publishes best-effort: a failed publish is logged and never fails the request.
type notifier struct {
	publisher EventPublisher
	log       *zap.Logger
}

func (n notifier) notify(ev UserEvent) {
	if n.publisher == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()
	if err := n.publisher.PublishEvent(ev.Event, ev); err != nil {
		n.log.Warn("failed to publish event", zap.String("event", ev.Event), zap.Int64("user_id", ev.UserID), zap.Error(err))
		return
	}
	n.log.Debug("published event", zap.String("event", ev.Event), zap.Int64("user_id", ev.UserID))
}
