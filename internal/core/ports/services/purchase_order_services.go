package services

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/dto"
)

// PurchaseOrderReaderSvc defines read operations for purchase orders
type PurchaseOrderReaderSvc interface {
	GetPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error)

	ListPurchaseOrders(ctx context.Context, actor domain.Actor, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error)

	// GetOrderDocument assembles the read-only view consumed by document generators.
	GetOrderDocument(ctx context.Context, actor domain.Actor, orderID string) (*dto.OrderDocument, error)

	// CurrencyPlaces is the minor unit totals are rounded to.
	CurrencyPlaces() int32
}

// OrderLedgerSvc defines the order writing operations
type OrderLedgerSvc interface {
	// CreatePurchaseOrder converts an approved expression into an order and moves the
	// expression to in progress, atomically.
	CreatePurchaseOrder(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// RegeneratePurchaseOrder overwrites terms and lines, carrying received quantities forward.
	RegeneratePurchaseOrder(ctx context.Context, actor domain.Actor, orderID string, req dto.RegeneratePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// CancelPurchaseOrder freezes an order against further receptions.
	CancelPurchaseOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.PurchaseOrder, error)
}

// FulfillmentStatsSvc exposes the single source of truth for delivery progress
type FulfillmentStatsSvc interface {
	// GetFulfillmentStats recomputes progress from the current order and reception state.
	GetFulfillmentStats(ctx context.Context, actor domain.Actor, orderID string) (*domain.FulfillmentStats, error)
}

// PurchaseOrderSvcFacade combines all purchase order service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	OrderLedgerSvc
	FulfillmentStatsSvc
}
