// Package services contains stateless domain services that coordinate
// operations across the order aggregate and its related records.
//
// ReceiptReconciler applies a physical receipt count against an order,
// concludes the delivery sub-state, and reports shortages for
// discrepancy-case handling. AssetGenerator turns received line item units
// into individual asset records while guarding the per-item generation
// balance.
//
// Both services validate their full input before applying anything, so a
// failing call leaves the aggregate exactly as loaded.
package services
