// Package order provides domain entities and business logic for order
// lifecycle management in the fulfillment system. It implements the Order
// aggregate root with state transitions, stock-reservation bookkeeping, and
// the delivery-verification handshake.
//
// The package includes:
//   - Order: the aggregate root owning identity, line items, history, and lifecycle
//   - Status: a state machine enforcing valid order status transitions
//   - LineItem: a creation-fixed position with catalog snapshots and a reservation flag
//   - DeliveryCode: the one-time secret proving physical handoff
//
// Key business rules:
//   - Orders follow Pending -> Processing -> Shipped -> Delivered, with
//     Cancelled reachable before shipment; Delivered and Cancelled are terminal
//   - The history trail is append-only, one entry per transition, and its last
//     entry always matches the current status
//   - The delivery code is generated at creation, exposed only while Shipped,
//     and cleared permanently by a successful verification
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
