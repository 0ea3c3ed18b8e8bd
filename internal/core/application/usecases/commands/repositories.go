// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
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

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderInventoryUoW manages transactions spanning orders and product stock.
	// Used by status transitions that return reserved stock to the catalog.
	OrderInventoryUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderInventoryUoWFactory creates new order/inventory unit of work instances.
	OrderInventoryUoWFactory interface {
		Create() OrderInventoryUoW
	}

	// CheckoutUoW manages the checkout transaction, which touches every
	// aggregate: the new order, product stock, the applied offer, and the cart.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		OfferRepoFactory
		CartRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
