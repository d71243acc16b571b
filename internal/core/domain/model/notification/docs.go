// Package notification provides the notification entity for the fulfillment
// system: order lifecycle updates, the low-stock admin signal, and
// admin-authored announcements.
//
// A notification is addressed at an audience (all, customer, admin, or a
// specific principal) and tracks read state per principal, so broadcasts stay
// unread for everyone who has not opened them yet. Emission is best-effort
// and never blocks the order transition that produced it.
package notification
