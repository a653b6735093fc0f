package notifications

import (
	"context"
	"log/slog"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
)

// LogSink writes every event to the application log. It is always installed.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(_ context.Context, event domain.DomainEvent) error {
	s.logger.Info("Domain event",
		slog.String("event_type", string(event.Type)),
		slog.String("entity_id", event.EntityID),
		slog.String("actor_id", event.ActorID),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Any("attributes", event.Attributes))
	return nil
}
