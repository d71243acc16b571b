package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a principal's request to mark
// every notification addressed at them as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	reader kernel.Principal

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all of the
// reader's notifications read.
func NewMarkAllNotificationsReadCommand(reader kernel.Principal) (MarkAllNotificationsReadCommand, error) {
	readCommand := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := readCommand.setReader(reader); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return readCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// Reader returns the principal marking their notifications read.
func (c MarkAllNotificationsReadCommand) Reader() kernel.Principal {
	return c.reader
}

func (c *MarkAllNotificationsReadCommand) setReader(reader kernel.Principal) error {
	if err := reader.Validate(); err != nil {
		return err
	}

	c.reader = reader
	return nil
}
