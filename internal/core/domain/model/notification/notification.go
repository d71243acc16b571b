package notification

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification instance
	// was not created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")
)

// Notification is a broadcast or directed message emitted by the fulfillment
// core: order lifecycle updates, the low-stock signal, and admin-authored
// announcements.
//
// Read state is tracked per principal in the readBy set, so a broadcast
// notification stays unread for everyone who has not opened it yet.
type Notification struct {
	// id is the unique identifier for the notification
	id kernel.UUID

	title   string
	message string

	notificationType Type
	target           Target

	// recipientID names the addressee; set if and only if target is specific
	recipientID *kernel.UUID

	// readBy holds the principals who have marked the notification read
	readBy map[kernel.UUID]bool

	createdAt time.Time

	// isConstructed ensures the notification was created via a constructor
	isConstructed bool
}

// NewNotification creates a notification addressed at the given target.
// A specific target requires a recipient id; every other target forbids one.
func NewNotification(
	id kernel.UUID,
	title string,
	message string,
	notificationType Type,
	target Target,
	recipientID *kernel.UUID,
) (*Notification, error) {
	notification := &Notification{
		isConstructed: true,
	}

	if err := errors.Join(
		notification.setID(id),
		notification.setTitle(title),
		notification.setMessage(message),
		notification.setType(notificationType),
		notification.setTarget(target),
	); err != nil {
		return nil, err
	}

	if err := notification.setRecipientID(recipientID); err != nil {
		return nil, err
	}

	notification.readBy = make(map[kernel.UUID]bool)
	notification.createdAt = time.Now().UTC()

	return notification, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	title string,
	message string,
	notificationType Type,
	target Target,
	recipientID *kernel.UUID,
	readBy []kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	notification := &Notification{
		isConstructed: true,
	}

	if err := errors.Join(
		notification.setID(id),
		notification.setTitle(title),
		notification.setMessage(message),
		notification.setType(notificationType),
		notification.setTarget(target),
	); err != nil {
		return nil, err
	}

	if err := notification.setRecipientID(recipientID); err != nil {
		return nil, err
	}

	notification.readBy = make(map[kernel.UUID]bool, len(readBy))
	for _, reader := range readBy {
		notification.readBy[reader] = true
	}
	notification.createdAt = createdAt

	return notification, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// IsEqual compares two notifications by their unique identifiers.
func (n *Notification) IsEqual(other *Notification) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Title returns the notification title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// Type returns the notification type.
func (n *Notification) Type() Type {
	return n.notificationType
}

// Target returns the notification audience.
func (n *Notification) Target() Target {
	return n.target
}

// RecipientID returns the addressee id for specific notifications, nil otherwise.
func (n *Notification) RecipientID() *kernel.UUID {
	if n.recipientID == nil {
		return nil
	}
	id := *n.recipientID
	return &id
}

// CreatedAt returns the emission time.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// ReadBy returns the set of principals who have read the notification.
func (n *Notification) ReadBy() []kernel.UUID {
	readers := make([]kernel.UUID, 0, len(n.readBy))
	for reader := range n.readBy {
		readers = append(readers, reader)
	}
	return readers
}

// IsReadBy reports whether the given principal has read the notification.
func (n *Notification) IsReadBy(principalID kernel.UUID) bool {
	return n.readBy[principalID]
}

// MarkReadBy records that the given principal has read the notification.
// Marking twice is a no-op.
func (n *Notification) MarkReadBy(principalID kernel.UUID) error {
	if err := principalID.Validate(); err != nil {
		return err
	}

	n.readBy[principalID] = true
	return nil
}

// VisibleTo reports whether the notification is addressed at the given
// principal: everyone for "all", role audiences for "customer"/"admin", and
// only the named recipient for "specific".
func (n *Notification) VisibleTo(principal kernel.Principal) bool {
	switch n.target {
	case TargetAll:
		return true
	case TargetAdmin:
		return principal.Role().IsAdmin()
	case TargetCustomer:
		return !principal.Role().IsAdmin()
	case TargetSpecific:
		return n.recipientID != nil && n.recipientID.IsEqual(principal.ID())
	default:
		return false
	}
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setType(notificationType Type) error {
	if err := notificationType.Validate(); err != nil {
		return err
	}
	n.notificationType = notificationType
	return nil
}

func (n *Notification) setTarget(target Target) error {
	if err := target.Validate(); err != nil {
		return err
	}
	n.target = target
	return nil
}

func (n *Notification) setRecipientID(recipientID *kernel.UUID) error {
	if n.target == TargetSpecific {
		if recipientID == nil {
			return errs.NewValueIsRequiredError("recipientId")
		}
		if err := recipientID.Validate(); err != nil {
			return err
		}
		id := *recipientID
		n.recipientID = &id
		return nil
	}

	if recipientID != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipientId",
			fmt.Errorf("recipient is only allowed for %q notifications", TargetSpecific))
	}
	return nil
}
