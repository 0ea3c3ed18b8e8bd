// Package order contains the Order aggregate and its value objects.
//
// An Order is created once from a cart snapshot at checkout and then only
// moves through a small state machine:
//
//	Created ──pay────> Paid ──deliver──> Delivered
//	Created ──cancel─> Created (stock restored)
//	Paid    ──cancel─> Created (stock restored, payment cleared)
//
// The aggregate enforces the lifecycle invariants:
//   - an order is never created with an empty item list
//   - the total price is never negative
//   - an order is never delivered before it is paid
//   - payment state is cleared only by an explicit cancellation
//
// Line items capture name and unit price snapshots at checkout time, so an
// order stays historically accurate even if the product catalog changes later.
package order
