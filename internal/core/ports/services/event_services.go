package services

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
)

// EventPublisher is the notification dispatcher. It is called after commit; its errors are
// logged by the caller and never undo the committed work.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.DomainEvent) error
}
