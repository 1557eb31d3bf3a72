// Package order provides domain entities and business logic for procurement
// order management. It implements the Order aggregate root with lifecycle
// management, financial totals, receipt tracking, and asset generation
// accounting.
//
// The package includes:
//   - Order: The aggregate root that owns the workflow status, delivery
//     sub-state, line items, and computed financial totals
//   - Status and Trigger: A state machine that enforces valid workflow
//     transitions through a fixed transition table
//   - LineItem: An ordered good or service with receipt and asset-generation
//     counters
//   - TrackingEvent: An append-only audit record of every state change
//
// Key business rules:
//   - Status moves only through the transition table; anything else fails
//     with InvalidTransitionError and leaves the order untouched
//   - Totals are recomputed from line items and rates, never hand-edited
//   - Line items' ordering fields are immutable once the order is Approved
//   - Received quantities never exceed ordered quantities, and generated
//     asset counts never exceed received quantities
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
