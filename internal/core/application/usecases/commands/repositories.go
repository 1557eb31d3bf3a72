// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DiscrepancyRepoFactory provides access to the discrepancy repository within a transaction.
	DiscrepancyRepoFactory interface {
		DiscrepancyRepository() ports.DiscrepancyRepository
	}

	// AssetRepoFactory provides access to the asset repository within a transaction.
	AssetRepoFactory interface {
		AssetRepository() ports.AssetRepository
	}

	// OrderUoW manages transactions for order-only operations: creation,
	// edits, workflow transitions, and delivery scheduling.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DiscrepancyUoW manages transactions for discrepancy-only operations:
	// starting review and resolving a case.
	DiscrepancyUoW interface {
		TxManager
		DiscrepancyRepoFactory
	}

	// DiscrepancyUoWFactory creates new discrepancy unit of work instances.
	DiscrepancyUoWFactory interface {
		Create() DiscrepancyUoW
	}

	// ReceiptUoW manages transactions spanning the order and its discrepancy
	// case. Receipt reconciliation updates both atomically: the recorded
	// quantities and the opened or updated case commit together or not at all.
	ReceiptUoW interface {
		TxManager
		OrderRepoFactory
		DiscrepancyRepoFactory
	}

	// ReceiptUoWFactory creates new receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	// AssetUoW manages transactions spanning the order and generated assets.
	// Asset generation persists the asset records and the order's updated
	// counters atomically, which is what makes over-generation impossible
	// even under concurrent runs.
	AssetUoW interface {
		TxManager
		OrderRepoFactory
		AssetRepoFactory
	}

	// AssetUoWFactory creates new asset unit of work instances.
	AssetUoWFactory interface {
		Create() AssetUoW
	}
)
