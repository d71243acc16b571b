package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery lists the notifications addressed at a principal,
// newest first, with the principal's read state computed per notification.
type ListNotificationsQuery struct {
	reader kernel.Principal

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a query listing the reader's notifications.
func NewListNotificationsQuery(reader kernel.Principal) (ListNotificationsQuery, error) {
	if err := reader.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		reader: reader,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// Reader returns the principal whose notifications are listed.
func (q ListNotificationsQuery) Reader() kernel.Principal {
	return q.reader
}

// NotificationResponse is the read-side shape of a notification. IsRead is
// computed for the requesting principal, not a global flag.
type NotificationResponse struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Type      string
	Target    string
	IsRead    bool
	CreatedAt time.Time
}
