// Package queries contains read-only projections over the fulfillment store.
// Query handlers bypass the domain repositories and read the database
// directly, in line with the CQRS split: the write side owns invariants, the
// read side owns shapes.
package queries

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderItemResponse is one order position as exposed by the read side.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
	Name      string
	ImageRef  string
	Reserved  bool
}

// ShippingInfoResponse mirrors the shipping metadata captured at placement.
type ShippingInfoResponse struct {
	Name    string
	Address string
	City    string
	Phone   string
}

// PaymentInfoResponse mirrors the payment metadata captured at placement.
type PaymentInfoResponse struct {
	ID     string
	Status string
	Method string
}

// HistoryEntryResponse is one entry of the order's transition timeline.
type HistoryEntryResponse struct {
	Status    string
	Timestamp time.Time
}

// OrderResponse is the read-side shape of an order. DeliveryCode is non-nil
// only when the order is Shipped and the projection decided the requester may
// see it.
type OrderResponse struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Items        []OrderItemResponse
	ShippingInfo ShippingInfoResponse
	PaymentInfo  PaymentInfoResponse
	TotalAmount  float64
	Status       string
	DeliveryCode *string
	History      []HistoryEntryResponse
	CreatedAt    time.Time
}

// JSON wire shapes of the JSONB order columns. Tags must stay in sync with
// the persistence DTOs in adapters/out/postgres/orderrepo.
type (
	lineItemJSON struct {
		ProductID uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
		UnitPrice float64   `json:"unitPrice"`
		Name      string    `json:"name"`
		ImageRef  string    `json:"imageRef"`
		Reserved  bool      `json:"reserved"`
	}

	shippingInfoJSON struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
		Phone   string `json:"phone"`
	}

	paymentInfoJSON struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Method string `json:"method"`
	}

	historyEntryJSON struct {
		Status    int       `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
)

// kernelUUID converts a database uuid into the kernel value object.
func kernelUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// orderRow matches the column list of selectOrderColumns.
type orderRow struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	lineItems    []byte
	shippingInfo []byte
	paymentInfo  []byte
	totalAmount  float64
	status       int
	deliveryCode *string
	history      []byte
	createdAt    time.Time
}

const selectOrderColumns = `
	id,
	owner_id,
	line_items,
	shipping_info,
	payment_info,
	total_amount,
	status,
	delivery_code,
	history,
	created_at
`

func (r *orderRow) scanTargets() []any {
	return []any{
		&r.id,
		&r.ownerID,
		&r.lineItems,
		&r.shippingInfo,
		&r.paymentInfo,
		&r.totalAmount,
		&r.status,
		&r.deliveryCode,
		&r.history,
		&r.createdAt,
	}
}

// toResponse converts a scanned row into an OrderResponse. The delivery code
// is attached only when the order is Shipped and withCode is set; every other
// combination leaves it absent.
func (r *orderRow) toResponse(withCode bool) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(r.ownerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var items []lineItemJSON
	if err = json.Unmarshal(r.lineItems, &items); err != nil {
		return OrderResponse{}, err
	}
	var shipping shippingInfoJSON
	if err = json.Unmarshal(r.shippingInfo, &shipping); err != nil {
		return OrderResponse{}, err
	}
	var payment paymentInfoJSON
	if err = json.Unmarshal(r.paymentInfo, &payment); err != nil {
		return OrderResponse{}, err
	}
	var history []historyEntryJSON
	if err = json.Unmarshal(r.history, &history); err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:      id,
		OwnerID: ownerID,
		ShippingInfo: ShippingInfoResponse{
			Name:    shipping.Name,
			Address: shipping.Address,
			City:    shipping.City,
			Phone:   shipping.Phone,
		},
		PaymentInfo: PaymentInfoResponse{
			ID:     payment.ID,
			Status: payment.Status,
			Method: payment.Method,
		},
		TotalAmount: r.totalAmount,
		Status:      order.Status(r.status).String(),
		CreatedAt:   r.createdAt,
	}

	for _, item := range items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Name:      item.Name,
			ImageRef:  item.ImageRef,
			Reserved:  item.Reserved,
		})
	}

	for _, entry := range history {
		resp.History = append(resp.History, HistoryEntryResponse{
			Status:    order.Status(entry.Status).String(),
			Timestamp: entry.Timestamp,
		})
	}

	if withCode && order.Status(r.status) == order.Shipped && r.deliveryCode != nil {
		code := *r.deliveryCode
		resp.DeliveryCode = &code
	}

	return resp, nil
}
