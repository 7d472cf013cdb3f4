// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and best-effort side effects after commit.
package commands

import (
	"context"
	"errors"

	"rental/internal/core/ports"
)

// ErrActorNotAllowed is returned when the caller's role does not permit the
// requested operation: confirming, invoicing, picking up and returning are
// staff operations; customers act only on their own orders.
var ErrActorNotAllowed = errors.New("actor role does not permit this operation")

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

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// InventoryLedgerFactory provides access to the reservation ledger within a transaction.
	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	// OrderUoW manages transactions for order-only operations (send).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which also
	// reads the catalog to snapshot item prices.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// CreateOrderUoWFactory creates new creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ConfirmOrderUoW manages transactions for confirmation: the order
	// transition, product row locks, and the reservation ledger all share
	// one transaction so the availability guard cannot race.
	ConfirmOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		InventoryLedgerFactory
	}

	// ConfirmOrderUoWFactory creates new confirmation unit of work instances.
	ConfirmOrderUoWFactory interface {
		Create() ConfirmOrderUoW
	}

	// BillingUoW manages transactions touching orders and invoices together
	// (createInvoice, pay, void), keeping the two records consistent.
	BillingUoW interface {
		TxManager
		OrderRepoFactory
		InvoiceRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// FulfillmentUoW manages transactions for pickup and return, which move
	// order status and on-hand stock in one atomic step and double-check
	// the invoice on pickup.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InvoiceRepoFactory
		ProductRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
