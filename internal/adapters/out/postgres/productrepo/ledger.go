package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryLedger applies stock deltas as single atomic UPDATE statements.
// Concurrent reservations on the same product serialize on the row lock, so
// the committed stock always reflects every delta exactly once.
type GormInventoryLedger struct {
	db      *gorm.DB
	emitter ports.NotificationEmitter
	logger  *slog.Logger
}

// NewGormInventoryLedger creates a ledger over the products table. The emitter
// receives the low-stock signal when a reservation drives committed stock
// below the threshold.
func NewGormInventoryLedger(db *gorm.DB, emitter ports.NotificationEmitter, logger *slog.Logger) *GormInventoryLedger {
	return &GormInventoryLedger{
		db:      db,
		emitter: emitter,
		logger:  logger.With("component", "inventory_ledger"),
	}
}

// Reserve atomically decrements the product's stock by quantity. Stock is not
// gated on availability and may go negative. When the post-decrement level is
// below the low-stock threshold, the admin low-stock signal is raised; a
// failed signal is logged and never fails the reservation.
func (l *GormInventoryLedger) Reserve(ctx context.Context, productID kernel.UUID, quantity int) error {
	newStock, name, err := l.applyDelta(ctx, productID, -quantity, quantity)
	if err != nil {
		return err
	}

	if product.IsLowStock(newStock) {
		l.raiseLowStockSignal(ctx, productID, name, newStock)
	}

	return nil
}

// Release atomically increments the product's stock by quantity. It is
// unconditional and raises no signal.
func (l *GormInventoryLedger) Release(ctx context.Context, productID kernel.UUID, quantity int) error {
	_, _, err := l.applyDelta(ctx, productID, quantity, quantity)
	return err
}

func (l *GormInventoryLedger) applyDelta(
	ctx context.Context,
	productID kernel.UUID,
	delta int,
	quantity int,
) (newStock int, name string, err error) {
	if err = productID.Validate(); err != nil {
		return 0, "", err
	}
	if quantity <= 0 {
		return 0, "", errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive quantity", quantity))
	}

	row := l.db.WithContext(ctx).Raw(`
		UPDATE products
		SET stock = stock + ?
		WHERE id = ?
		RETURNING stock, name
	`, delta, productID.Bytes()).Row()

	if err = row.Scan(&newStock, &name); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", errs.NewObjectNotFoundError("productId", productID.String())
		}
		return 0, "", err
	}

	return newStock, name, nil
}

func (l *GormInventoryLedger) raiseLowStockSignal(ctx context.Context, productID kernel.UUID, name string, stock int) {
	n, err := notification.NewNotification(
		kernel.NewUUID(),
		"Low stock",
		fmt.Sprintf("Product %q (%s) is down to %d units", name, productID.String(), stock),
		notification.TypeInfo,
		notification.TargetAdmin,
		nil,
	)
	if err != nil {
		l.logger.ErrorContext(ctx, "Low stock signal skipped", "error", err)
		return
	}

	if err := l.emitter.Emit(ctx, n); err != nil {
		l.logger.ErrorContext(ctx, "Low stock signal dropped", "error", err,
			"productId", productID.String())
	}
}
