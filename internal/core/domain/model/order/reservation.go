package order

// ReservationOutcome tags how much of an order's stock has been reserved.
// Order persistence happens before reservation, so a crash or ledger failure
// between the two leaves a Pending order with a partial reservation; the tag
// makes that state explicit instead of a silent inconsistency, and the
// reservation sweep job uses it to retry until the order is fully reserved.
type ReservationOutcome int

const (
	// Unreserved means no line item's stock decrement has committed yet.
	Unreserved ReservationOutcome = iota

	// PartiallyReserved means some, but not all, line items are reserved.
	PartiallyReserved

	// FullyReserved means every line item's stock decrement has committed.
	FullyReserved
)

// String returns the tag name for logging and persistence.
func (r ReservationOutcome) String() string {
	switch r {
	case PartiallyReserved:
		return "PartiallyReserved"
	case FullyReserved:
		return "FullyReserved"
	default:
		return "Unreserved"
	}
}
