// Package product provides the catalog entry entity for the fulfillment
// system. A product carries the name, price and image that line items
// snapshot at order creation, plus the ledger-driven stock level and the
// low-stock rule (stock below 5 raises an admin notification on reserve).
//
// Stock is never mutated through this entity: the inventory ledger applies
// atomic deltas directly in the database, and reservations are not gated on
// availability, so restored stock may be negative.
package product
