package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher portssvc.EventPublisher
	// Now is overridable so tests can pin timestamps.
	Now func() time.Time
}

func newBaseService(publisher portssvc.EventPublisher) BaseService {
	return BaseService{Publisher: publisher, Now: func() time.Time { return time.Now().UTC() }}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogRejected logs an operation refused by a business rule or authorization check.
func (s *BaseService) LogRejected(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("reason", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// publish hands a committed event to the dispatcher. Failures are logged only.
func (s *BaseService) publish(ctx context.Context, event domain.DomainEvent) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.String("entity_id", event.EntityID))
	}
}

// inTx runs fn inside one transaction. fn's error rolls everything back.
func inTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// no-op once committed
		_ = tm.Rollback(ctx, tx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tm.Commit(ctx, tx)
}
