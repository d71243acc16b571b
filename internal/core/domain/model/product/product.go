package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// LowStockThreshold is the committed stock level below which a reservation
// raises the low-stock signal.
const LowStockThreshold = 5

// Product represents a catalog entry with its current stock level. Orders
// snapshot the name, price and image at creation time, so later product edits
// never rewrite existing orders.
//
// Stock is mutated exclusively through the inventory ledger with atomic
// deltas; this entity never changes stock in memory. Restored stock may be
// negative: reservations are not gated on availability.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	name        string
	description string

	// price is the current catalog price, snapshotted into line items
	price float64

	// imageRef is an opaque reference to the product image
	imageRef string

	// stock is the level as read from the ledger
	stock int

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new catalog entry with the given stock on hand.
// Initial stock must not be negative; only the ledger may drive it below zero.
func NewProduct(id kernel.UUID, name string, description string, price float64, imageRef string, stock int) (*Product, error) {
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("initial stock %d is negative", stock))
	}

	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.imageRef = imageRef
	product.stock = stock

	return product, nil
}

// RestoreProduct reconstructs a product from persistence. Negative stock is
// accepted here: the ledger applies unconditional deltas.
func RestoreProduct(id kernel.UUID, name string, description string, price float64, imageRef string, stock int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.imageRef = imageRef
	product.stock = stock

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() float64 {
	return p.price
}

// ImageRef returns the image reference.
func (p *Product) ImageRef() string {
	return p.imageRef
}

// Stock returns the stock level as read from the ledger.
func (p *Product) Stock() int {
	return p.stock
}

// IsLowStock reports whether the stock level is below the low-stock threshold.
func (p *Product) IsLowStock() bool {
	return IsLowStock(p.stock)
}

// IsLowStock reports whether a ledger-reported stock level is below the
// low-stock threshold. The ledger calls this with the post-decrement level
// returned by the atomic update, without loading the entity.
func IsLowStock(stock int) bool {
	return stock < LowStockThreshold
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}
