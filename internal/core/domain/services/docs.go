// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the rental system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - FulfillmentEngine: computes late fees for orders returned past their
//     committed end dates
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
