package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationSweepJob manages the scheduled retry of outstanding stock
// reservations. Runs every 30 seconds to settle Pending orders whose
// reservations did not fully commit at placement.
type ReservationSweepJob struct {
	handler commands.RetryReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationSweepJob creates a new job for retrying reservations.
// Uses RetryReservationsCommandHandler to process the sweep.
func NewReservationSweepJob(handler commands.RetryReservationsCommandHandler, logger *slog.Logger) *ReservationSweepJob {
	return &ReservationSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_sweep_job"),
	}
}

// Start begins the reservation sweep job to run every 30 seconds.
func (j *ReservationSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRetryReservationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reservation sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation sweep job started (running every 30 seconds)")
	return nil
}

// Stop stops the reservation sweep job.
func (j *ReservationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation sweep job stopped")
}
