package notifications

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/utils"
)

// PosthogSink records events as analytics captures, distinct by actor.
type PosthogSink struct {
	client *utils.PosthogClientWrapper
}

func NewPosthogSink(client *utils.PosthogClientWrapper) *PosthogSink {
	return &PosthogSink{client: client}
}

func (s *PosthogSink) Name() string { return "posthog" }

func (s *PosthogSink) Send(_ context.Context, event domain.DomainEvent) error {
	props := map[string]any{"entity_id": event.EntityID}
	for k, v := range event.Attributes {
		props[k] = v
	}
	return s.client.EnqueueAt(event.ActorID, "procurement_"+string(event.Type), props, event.OccurredAt)
}
