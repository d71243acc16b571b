package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRetryReservationsCommandIsNotConstructed = errors.New(
	"RetryReservationsCommand must be created via NewRetryReservationsCommand constructor",
)

// RetryReservationsCommand sweeps Pending orders whose stock reservations did
// not fully commit at placement and retries them against the ledger.
type RetryReservationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRetryReservationsCommand creates a command to retry outstanding
// reservations. This is a parameterless command issued by the scheduler.
func NewRetryReservationsCommand() RetryReservationsCommand {
	return RetryReservationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RetryReservationsCommand) Validate() error {
	return c.guard.Validate(ErrRetryReservationsCommandIsNotConstructed)
}
