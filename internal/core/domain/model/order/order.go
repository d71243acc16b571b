package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// totalAmountTolerance absorbs float rounding when comparing the declared
// total against the sum of line-item subtotals.
const totalAmountTolerance = 0.01

// Order represents a customer order in the fulfillment system. It is the
// aggregate root that owns the order lifecycle: status transitions, the
// immutable history trail, line-item reservation flags, and the
// delivery-verification handshake.
//
// Order maintains these invariants:
//   - history has at least one entry and its last entry's status equals the
//     current status
//   - the delivery code is exposed if and only if the status is Shipped
//   - Delivered and Cancelled are terminal; no method transitions out of them
//   - line items are fixed at creation; only their reservation flags change
//
// The struct uses private fields to ensure encapsulation; instances must be
// created through NewOrder or RestoreOrder.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID references the principal who placed the order
	ownerID kernel.UUID

	// lineItems is the ordered, creation-fixed sequence of purchased positions
	lineItems []LineItem

	// shippingInfo and paymentInfo are opaque metadata captured at creation
	shippingInfo ShippingInfo
	paymentInfo  PaymentInfo

	// totalAmount is validated once at creation and never recomputed
	totalAmount float64

	// status is the current state in the order lifecycle
	status Status

	// deliveryCode is pre-provisioned at creation and cleared after a
	// successful delivery verification; nil means absent
	deliveryCode *DeliveryCode

	// history is the append-only transition timeline
	history []HistoryEntry

	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new order in Pending status. A delivery code is
// generated immediately (it is only exposed once the order ships), and the
// history trail starts with a single Pending entry.
//
// The declared totalAmount must equal the sum of line-item subtotals; the
// total is fixed here and never recomputed afterwards.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	lineItems []LineItem,
	shippingInfo ShippingInfo,
	paymentInfo PaymentInfo,
	totalAmount float64,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setLineItems(lineItems),
		order.setShippingInfo(shippingInfo),
		order.setPaymentInfo(paymentInfo),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	if diff := math.Abs(order.itemsTotal() - totalAmount); diff > totalAmountTolerance {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("declared total %.2f does not match item subtotals %.2f", totalAmount, order.itemsTotal()))
	}

	code, err := GenerateDeliveryCode()
	if err != nil {
		return nil, err
	}
	order.deliveryCode = &code

	now := time.Now().UTC()
	order.createdAt = now
	order.history = []HistoryEntry{{Status: Pending, Timestamp: now}}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates the
// structural invariants (non-empty history whose last entry matches the
// status) but does not re-check the total against subtotals: the total was
// validated at creation and is immutable.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	lineItems []LineItem,
	shippingInfo ShippingInfo,
	paymentInfo PaymentInfo,
	totalAmount float64,
	status Status,
	deliveryCode *DeliveryCode,
	history []HistoryEntry,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setLineItems(lineItems),
		order.setShippingInfo(shippingInfo),
		order.setPaymentInfo(paymentInfo),
		order.setTotalAmount(totalAmount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("history")
	}
	if history[len(history)-1].Status != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("history",
			fmt.Errorf("last history status %s does not match order status %s",
				history[len(history)-1].Status, status))
	}

	if deliveryCode != nil {
		if err := deliveryCode.Validate(); err != nil {
			return nil, err
		}
		code := *deliveryCode
		order.deliveryCode = &code
	}

	order.status = status
	order.history = append([]HistoryEntry(nil), history...)
	order.createdAt = createdAt

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the id of the principal who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// ShippingInfo returns the shipping metadata captured at creation.
func (o *Order) ShippingInfo() ShippingInfo {
	return o.shippingInfo
}

// PaymentInfo returns the payment metadata captured at creation.
func (o *Order) PaymentInfo() PaymentInfo {
	return o.paymentInfo
}

// TotalAmount returns the order total fixed at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only transition timeline.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryCode returns the code and true only while the order is Shipped.
// Before shipment and after delivery the code is absent from every read path;
// this is the field-level visibility rule, not a storage-level deletion.
func (o *Order) DeliveryCode() (DeliveryCode, bool) {
	if o.status != Shipped || o.deliveryCode == nil {
		return DeliveryCode{}, false
	}
	return *o.deliveryCode, true
}

// StoredDeliveryCode returns the persisted code regardless of status.
// It exists for the persistence mapping only; every read path must go
// through DeliveryCode.
func (o *Order) StoredDeliveryCode() *DeliveryCode {
	if o.deliveryCode == nil {
		return nil
	}
	code := *o.deliveryCode
	return &code
}

// SetStatusByAdmin applies an administrative status update. Any valid status
// may be set from any non-terminal state; terminal states reject every
// update. The transition is appended to the history trail.
//
// The caller is responsible for releasing reserved stock when the new status
// is Cancelled, exactly once per line item.
func (o *Order) SetStatusByAdmin(target Status) error {
	newStatus, err := o.status.AdminSet(target)
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// CancelByCustomer cancels the order on behalf of its owner.
//
// Business rules:
//   - only the order owner may cancel
//   - cancellation is impossible once the order has shipped
//
// The caller is responsible for releasing reserved stock afterwards.
func (o *Order) CancelByCustomer(by kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if !by.IsEqual(o.ownerID) {
		return errs.NewForbiddenError("cancel order")
	}

	newStatus, err := o.status.CustomerCancel()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// VerifyDelivery confirms physical handoff with the presented code.
//
// Failure modes, checked in order:
//   - AlreadyCompleteError when the order was already delivered
//   - InvalidTransitionError when the order is not currently Shipped
//   - CodeMismatchError when the presented code differs from the stored one
//     (compared in constant time)
//
// On success the order becomes Delivered and the code is cleared to the
// absent state, so a verified code can never be replayed.
func (o *Order) VerifyDelivery(presented string) error {
	if o.status == Delivered {
		return errs.NewAlreadyCompleteError(o.id.String())
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.deliveryCode == nil || !o.deliveryCode.Matches(presented) {
		return errs.NewCodeMismatchError(o.id.String())
	}

	o.transitionTo(newStatus)
	o.deliveryCode = nil
	return nil
}

// MarkItemReserved records that the stock decrement for the item at the given
// index has committed in the inventory ledger.
func (o *Order) MarkItemReserved(index int) error {
	if index < 0 || index >= len(o.lineItems) {
		return errs.NewValueIsOutOfRangeError("lineItem index", index, 0, len(o.lineItems)-1)
	}

	o.lineItems[index].reserved = true
	return nil
}

// UnreservedItems returns the indices of line items whose reservation has not
// committed yet. The reservation sweep retries exactly these.
func (o *Order) UnreservedItems() []int {
	var indices []int
	for i, item := range o.lineItems {
		if !item.reserved {
			indices = append(indices, i)
		}
	}
	return indices
}

// ReservationOutcome derives the reservation tag from the line-item flags.
func (o *Order) ReservationOutcome() ReservationOutcome {
	reserved := 0
	for _, item := range o.lineItems {
		if item.reserved {
			reserved++
		}
	}

	switch reserved {
	case 0:
		return Unreserved
	case len(o.lineItems):
		return FullyReserved
	default:
		return PartiallyReserved
	}
}

// transitionTo sets the new status and appends the history entry. Every
// successful transition goes through here so the history invariant holds.
func (o *Order) transitionTo(newStatus Status) {
	o.status = newStatus
	o.history = append(o.history, HistoryEntry{Status: newStatus, Timestamp: time.Now().UTC()})
}

func (o *Order) itemsTotal() float64 {
	total := 0.0
	for _, item := range o.lineItems {
		total += item.Subtotal()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	o.lineItems = append([]LineItem(nil), lineItems...)
	return nil
}

func (o *Order) setShippingInfo(shippingInfo ShippingInfo) error {
	if err := shippingInfo.Validate(); err != nil {
		return err
	}
	o.shippingInfo = shippingInfo
	return nil
}

func (o *Order) setPaymentInfo(paymentInfo PaymentInfo) error {
	if err := paymentInfo.Validate(); err != nil {
		return err
	}
	o.paymentInfo = paymentInfo
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%f is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
