// Package notify provides the asynchronous notification emitter. Emission is
// decoupled from the business transition that produced the notification: the
// emitter queues notifications on a buffered channel and a background worker
// persists them, so a slow or failing store never blocks an order transition.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

const defaultBufferSize = 256

// ChannelNotificationEmitter implements NotificationEmitter with a buffered
// channel and a single persisting worker. When the buffer is full the
// notification is dropped and logged; delivery is best effort.
type ChannelNotificationEmitter struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger

	queue chan *notification.Notification

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewChannelNotificationEmitter creates an emitter and starts its worker.
// Callers must Close the emitter on shutdown to drain queued notifications.
func NewChannelNotificationEmitter(
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *ChannelNotificationEmitter {
	emitter := &ChannelNotificationEmitter{
		uowFactory: uowFactory,
		logger:     logger.With("component", "notification_emitter"),
		queue:      make(chan *notification.Notification, defaultBufferSize),
		done:       make(chan struct{}),
	}

	go emitter.run()
	return emitter
}

// Emit queues the notification for asynchronous persistence. The only errors
// returned are validation errors on the notification itself; a full buffer or
// a closed emitter drops the notification with a log entry.
func (e *ChannelNotificationEmitter) Emit(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		e.logger.WarnContext(ctx, "Notification dropped: emitter is closed",
			"notificationId", n.ID().String())
		return nil
	}

	select {
	case e.queue <- n:
	default:
		e.logger.WarnContext(ctx, "Notification dropped: queue is full",
			"notificationId", n.ID().String())
	}

	return nil
}

// Close stops accepting notifications, drains the queue and waits for the
// worker to finish.
func (e *ChannelNotificationEmitter) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	<-e.done
}

func (e *ChannelNotificationEmitter) run() {
	defer close(e.done)

	for n := range e.queue {
		if err := e.persist(context.Background(), n); err != nil {
			e.logger.Error("Notification lost", "error", err,
				"notificationId", n.ID().String())
		}
	}
}

func (e *ChannelNotificationEmitter) persist(ctx context.Context, n *notification.Notification) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}
