// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items, shipping/payment metadata and the history trail live in JSONB
// columns; status and the reservation outcome are indexed for the read side
// and the reservation sweep.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;index"`
	LineItems          []LineItemDTO   `gorm:"type:jsonb;serializer:json"`
	ShippingInfo       ShippingInfoDTO `gorm:"type:jsonb;serializer:json"`
	PaymentInfo        PaymentInfoDTO  `gorm:"type:jsonb;serializer:json"`
	TotalAmount        float64
	Status             int `gorm:"index"`
	DeliveryCode       *string
	ReservationOutcome int               `gorm:"index"`
	History            []HistoryEntryDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt          time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one order position inside the line_items JSONB column.
// The JSON tags are the wire contract shared with the read-side queries.
type LineItemDTO struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Name      string    `json:"name"`
	ImageRef  string    `json:"imageRef"`
	Reserved  bool      `json:"reserved"`
}

// ShippingInfoDTO mirrors the shipping metadata inside its JSONB column.
type ShippingInfoDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// PaymentInfoDTO mirrors the payment metadata inside its JSONB column.
type PaymentInfoDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Method string `json:"method"`
}

// HistoryEntryDTO is one entry of the history JSONB column.
type HistoryEntryDTO struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Name:      item.Name(),
			ImageRef:  item.ImageRef(),
			Reserved:  item.Reserved(),
		})
	}

	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, HistoryEntryDTO{
			Status:    int(entry.Status),
			Timestamp: entry.Timestamp,
		})
	}

	var deliveryCode *string
	if code := aggregate.StoredDeliveryCode(); code != nil {
		raw := code.String()
		deliveryCode = &raw
	}

	shipping := aggregate.ShippingInfo()
	payment := aggregate.PaymentInfo()

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		LineItems: items,
		ShippingInfo: ShippingInfoDTO{
			Name:    shipping.Name,
			Address: shipping.Address,
			City:    shipping.City,
			Phone:   shipping.Phone,
		},
		PaymentInfo: PaymentInfoDTO{
			ID:     payment.ID,
			Status: payment.Status,
			Method: payment.Method,
		},
		TotalAmount:        aggregate.TotalAmount(),
		Status:             int(aggregate.Status()),
		DeliveryCode:       deliveryCode,
		ReservationOutcome: int(aggregate.ReservationOutcome()),
		History:            history,
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so the structural
// invariants are re-checked on every load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(productID, itemDTO.Quantity, itemDTO.UnitPrice,
			itemDTO.Name, itemDTO.ImageRef, itemDTO.Reserved)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		history = append(history, order.HistoryEntry{
			Status:    order.Status(entryDTO.Status),
			Timestamp: entryDTO.Timestamp,
		})
	}

	var deliveryCode *order.DeliveryCode
	if dto.DeliveryCode != nil {
		code, codeErr := order.DeliveryCodeFromString(*dto.DeliveryCode)
		if codeErr != nil {
			return nil, codeErr
		}
		deliveryCode = &code
	}

	return order.RestoreOrder(
		id,
		ownerID,
		items,
		order.ShippingInfo{
			Name:    dto.ShippingInfo.Name,
			Address: dto.ShippingInfo.Address,
			City:    dto.ShippingInfo.City,
			Phone:   dto.ShippingInfo.Phone,
		},
		order.PaymentInfo{
			ID:     dto.PaymentInfo.ID,
			Status: dto.PaymentInfo.Status,
			Method: dto.PaymentInfo.Method,
		},
		dto.TotalAmount,
		order.Status(dto.Status),
		deliveryCode,
		history,
		dto.CreatedAt,
	)
}
