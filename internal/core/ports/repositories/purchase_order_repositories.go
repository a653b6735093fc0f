package repositories

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PurchaseOrderReader defines read operations for purchase orders
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves an order with its lines, without locking.
	FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)

	// FindPurchaseOrderForUpdate retrieves an order with its lines and locks the order and
	// line rows until tx ends. Receptions against the same order serialize on this lock.
	FindPurchaseOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.PurchaseOrder, error)

	// FindActivePurchaseOrderByExpression returns the non-cancelled order of an expression,
	// or ErrNotFound when there is none.
	FindActivePurchaseOrderByExpression(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders returns a page of orders, newest first, and the token of the next page.
	ListPurchaseOrders(ctx context.Context, filter domain.PurchaseOrderFilter, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error)
}

// PurchaseOrderWriter defines write operations for purchase orders. All of them run inside tx.
type PurchaseOrderWriter interface {
	// SavePurchaseOrder inserts a new order with its lines.
	SavePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error

	// ReplacePurchaseOrder overwrites the order-level fields, deletes removedLineIDs and
	// upserts the order's current lines.
	ReplacePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder, removedLineIDs []string) error

	// UpdatePurchaseOrderProgress persists the status and each line's received quantity.
	UpdatePurchaseOrderProgress(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error
}

// PurchaseOrderRepositoryFacade combines all purchase order repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}

// PurchaseOrderRepositoryWithTx extends PurchaseOrderRepositoryFacade with transaction capabilities
type PurchaseOrderRepositoryWithTx interface {
	PurchaseOrderRepositoryFacade
	TransactionManager
}
