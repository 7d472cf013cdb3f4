// Package order provides domain entities and business logic for rental order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the order header, line items, and lifecycle
//   - Item: A line item reserving product units for an optional rental period
//   - Status: A state machine that enforces valid order status transitions
//   - Totals: The monetary breakdown captured when the order is created
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number, user, and at least one item
//   - Order status follows a defined workflow:
//     Quotation -> QuotationSent -> SalesOrder -> Paid -> PickedUp -> Returned
//   - Confirmation is legal from both Quotation and QuotationSent
//   - Item prices are rate snapshots captured at creation, immutable thereafter
//   - Only items with a rental period participate in availability accounting
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
