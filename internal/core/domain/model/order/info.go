package order

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ShippingInfo is the destination metadata captured at order creation.
// It is opaque to the lifecycle engine and immutable after placement.
type ShippingInfo struct {
	Name    string
	Address string
	City    string
	Phone   string
}

// Validate ensures all required shipping fields are present.
func (s ShippingInfo) Validate() error {
	var err error
	if s.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("shippingInfo.name"))
	}
	if s.Address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("shippingInfo.address"))
	}
	if s.City == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("shippingInfo.city"))
	}
	if s.Phone == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("shippingInfo.phone"))
	}
	return err
}

// PaymentInfo is opaque payment metadata recorded at creation. Settlement is
// not validated here; the status field is the only part that may change later.
type PaymentInfo struct {
	ID     string
	Status string
	Method string
}

// Validate ensures required payment fields are present. The transaction id is
// optional (cash on delivery has none).
func (p PaymentInfo) Validate() error {
	var err error
	if p.Status == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("paymentInfo.status"))
	}
	if p.Method == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("paymentInfo.method"))
	}
	return err
}

// HistoryEntry is one step of the immutable order timeline: the status the
// order entered and when. The trail is append-only and never reordered.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
}
