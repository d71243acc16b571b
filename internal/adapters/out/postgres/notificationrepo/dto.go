// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. The per-principal read set is a JSONB array of UUID strings;
// the read side matches readers against it without loading the aggregate.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Message     string
	Type        int
	Target      int        `gorm:"index"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index"`
	ReadBy      []string   `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database
// representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var recipientID *uuid.UUID
	if id := aggregate.RecipientID(); id != nil {
		raw := id.Bytes()
		recipientID = &raw
	}

	readers := aggregate.ReadBy()
	readBy := make([]string, 0, len(readers))
	for _, reader := range readers {
		readBy = append(readBy, reader.String())
	}

	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Message:     aggregate.Message(),
		Type:        int(aggregate.Type()),
		Target:      int(aggregate.Target()),
		RecipientID: recipientID,
		ReadBy:      readBy,
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var recipientID *kernel.UUID
	if dto.RecipientID != nil {
		recipient, recipientErr := kernel.UUIDFromBytes(dto.RecipientID[:])
		if recipientErr != nil {
			return nil, recipientErr
		}
		recipientID = &recipient
	}

	readBy := make([]kernel.UUID, 0, len(dto.ReadBy))
	for _, reader := range dto.ReadBy {
		readerID, readerErr := kernel.UUIDFromString(reader)
		if readerErr != nil {
			return nil, readerErr
		}
		readBy = append(readBy, readerID)
	}

	return notification.RestoreNotification(
		id,
		dto.Title,
		dto.Message,
		notification.Type(dto.Type),
		notification.Target(dto.Target),
		recipientID,
		readBy,
		dto.CreatedAt,
	)
}
