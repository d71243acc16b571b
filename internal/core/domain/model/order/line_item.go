package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// LineItem is one position of an order: a product reference plus the quantity
// bought and a snapshot of the catalog data at placement time. Name, image,
// and unit price are snapshotted so the order stays stable even if the
// catalog entry later changes.
//
// The reserved flag records whether the item's stock reservation committed;
// it starts false and is flipped exactly once by the order when the inventory
// ledger confirms the decrement.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice float64
	name      string
	imageRef  string
	reserved  bool
}

// NewLineItem creates a validated, not-yet-reserved line item.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice float64, name, imageRef string) (LineItem, error) {
	item := LineItem{}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setName(name),
	); err != nil {
		return LineItem{}, err
	}

	item.imageRef = imageRef
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including its
// reservation flag.
func RestoreLineItem(
	productID kernel.UUID, quantity int, unitPrice float64, name, imageRef string, reserved bool,
) (LineItem, error) {
	item, err := NewLineItem(productID, quantity, unitPrice, name, imageRef)
	if err != nil {
		return LineItem{}, err
	}

	item.reserved = reserved
	return item, nil
}

// ProductID returns the referenced catalog product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units bought.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit snapshotted at placement time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Name returns the product display name snapshotted at placement time.
func (li LineItem) Name() string {
	return li.name
}

// ImageRef returns the product image reference snapshotted at placement time.
func (li LineItem) ImageRef() string {
	return li.imageRef
}

// Reserved reports whether the item's stock decrement has committed.
func (li LineItem) Reserved() bool {
	return li.reserved
}

// Subtotal returns quantity times the snapshotted unit price.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.unitPrice
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}
