// Package notifications fans committed domain events out to external sinks.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
)

var (
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
	ErrQueueFull        = errors.New("notification queue is full")
)

// Sink delivers one event to one external system.
type Sink interface {
	Name() string
	Send(ctx context.Context, event domain.DomainEvent) error
}

// Dispatcher queues events and delivers them to every sink on a background worker.
// Publish never blocks on a sink; a failing sink is logged and skipped.
type Dispatcher struct {
	sinks       []Sink
	queue       chan domain.DomainEvent
	sendTimeout time.Duration
	logger      *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ portssvc.EventPublisher = (*Dispatcher)(nil)

// NewDispatcher starts the worker. queueSize bounds the number of undelivered events.
func NewDispatcher(logger *slog.Logger, queueSize int, sendTimeout time.Duration, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	d := &Dispatcher{
		sinks:       sinks,
		queue:       make(chan domain.DomainEvent, queueSize),
		sendTimeout: sendTimeout,
		logger:      logger,
		done:        make(chan struct{}),
	}
	go d.run()
	return d
}

// Publish enqueues event. It fails only when the dispatcher is closed or the queue is full.
func (d *Dispatcher) Publish(ctx context.Context, event domain.DomainEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}
	select {
	case d.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for event := range d.queue {
		for _, sink := range d.sinks {
			d.deliver(sink, event)
		}
	}
}

func (d *Dispatcher) deliver(sink Sink, event domain.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()
	if err := sink.Send(ctx, event); err != nil {
		d.logger.Warn("Notification delivery failed",
			slog.String("sink", sink.Name()),
			slog.String("event_type", string(event.Type)),
			slog.String("entity_id", event.EntityID),
			slog.String("error", err.Error()))
	}
}

// Close stops accepting events and waits for the queued ones to be delivered or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
