// Package discrepancy provides the discrepancy-case aggregate for receipt
// shortages. A case is opened when receipt reconciliation finds any line item
// short, carries the per-item shortages, and moves Reported -> UnderReview ->
// Resolved with a recorded resolution action (return, credit note,
// redelivery, or write-off).
//
// One open case exists per order at a time: follow-up reconciliation passes
// update the open case's shortages, and a shortage found after resolution
// opens a fresh case so the settled one stays immutable.
package discrepancy
