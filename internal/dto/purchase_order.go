package dto

import (
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is a priced line. Material code, name and unit are taken from the catalog.
type OrderLineRequest struct {
	Description string          `json:"description" binding:"required,notblank"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"decimal_gte0"`
	MaterialID  string          `json:"materialID" binding:"required"`
}

// OrderTermsRequest holds the fields shared by create and regenerate.
type OrderTermsRequest struct {
	SupplierID      *string            `json:"supplierID"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	TaxRate         decimal.Decimal    `json:"taxRate" binding:"decimal_gte0"`
	DiscountRate    decimal.Decimal    `json:"discountRate" binding:"percent"`
	Observations    *string            `json:"observations"`
	Lines           []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreatePurchaseOrderRequest converts an approved expression into an order.
type CreatePurchaseOrderRequest struct {
	ExpressionID string `json:"expressionID" binding:"required"`
	OrderTermsRequest
}

// RegeneratePurchaseOrderRequest overwrites an order's terms and lines.
type RegeneratePurchaseOrderRequest struct {
	OrderTermsRequest
}

// ListPurchaseOrdersParams filters order listings.
type ListPurchaseOrdersParams struct {
	Status       *string `form:"status" binding:"omitempty,oneof=PENDING PARTIALLY_DELIVERED DELIVERED CANCELLED"`
	ExpressionID *string `form:"expressionID"`
	ListParams
}

// ToOrderLines converts request lines into domain lines without identifiers or snapshots.
func ToOrderLines(reqs []OrderLineRequest) []domain.OrderLine {
	lines := make([]domain.OrderLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.OrderLine{
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			MaterialID:  r.MaterialID,
		}
	}
	return lines
}

// ToOrderTerms converts the request's order-level fields. The supplier name is resolved later.
func (r OrderTermsRequest) ToOrderTerms() domain.OrderTerms {
	return domain.OrderTerms{
		SupplierID:      r.SupplierID,
		DeliveryAddress: r.DeliveryAddress,
		TaxRate:         r.TaxRate,
		DiscountRate:    r.DiscountRate,
		Observations:    r.Observations,
	}
}

// PurchaseOrderResponse defines the data returned for an order, with its totals and progress.
type PurchaseOrderResponse struct {
	OrderID         string                   `json:"orderID"`
	Number          string                   `json:"number"`
	DisplayNumber   string                   `json:"displayNumber"`
	ExpressionID    string                   `json:"expressionID"`
	SupplierID      *string                  `json:"supplierID,omitempty"`
	SupplierName    *string                  `json:"supplierName,omitempty"`
	DeliveryAddress *string                  `json:"deliveryAddress,omitempty"`
	TaxRate         decimal.Decimal          `json:"taxRate"`
	DiscountRate    decimal.Decimal          `json:"discountRate"`
	Observations    *string                  `json:"observations,omitempty"`
	Status          domain.OrderStatus       `json:"status"`
	EmittedAt       time.Time                `json:"emittedAt"`
	Lines           []domain.OrderLine       `json:"lines"`
	Totals          TotalsResponse           `json:"totals"`
	Stats           *domain.FulfillmentStats `json:"stats,omitempty"`
	LastUpdatedAt   time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy   string                   `json:"lastUpdatedBy"`
}

// TotalsResponse exposes every intermediate figure; only Total is rounded.
type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	AfterDiscount  decimal.Decimal `json:"afterDiscount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Total          decimal.Decimal `json:"total"`
}

// ListPurchaseOrdersResponse is a page of orders.
type ListPurchaseOrdersResponse struct {
	Orders    []PurchaseOrderResponse `json:"orders"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToTotalsResponse rounds the total to places.
func ToTotalsResponse(t domain.Totals, places int32) TotalsResponse {
	return TotalsResponse{
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		AfterDiscount:  t.AfterDiscount,
		TaxAmount:      t.TaxAmount,
		Total:          t.Rounded(places),
	}
}

// ToPurchaseOrderResponse converts an order; stats may be nil.
func ToPurchaseOrderResponse(o *domain.PurchaseOrder, stats *domain.FulfillmentStats, places int32) PurchaseOrderResponse {
	lines := o.Lines
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return PurchaseOrderResponse{
		OrderID:         o.OrderID,
		Number:          o.Number,
		DisplayNumber:   FormatNumber(OrderNumberPrefix, o.Number),
		ExpressionID:    o.ExpressionID,
		SupplierID:      o.SupplierID,
		SupplierName:    o.SupplierName,
		DeliveryAddress: o.DeliveryAddress,
		TaxRate:         o.TaxRate,
		DiscountRate:    o.DiscountRate,
		Observations:    o.Observations,
		Status:          o.Status,
		EmittedAt:       o.EmittedAt,
		Lines:           lines,
		Totals:          ToTotalsResponse(o.Totals(), places),
		Stats:           stats,
		LastUpdatedAt:   o.LastUpdatedAt,
		LastUpdatedBy:   o.LastUpdatedBy,
	}
}

// ToPurchaseOrderResponses converts a page of orders without stats.
func ToPurchaseOrderResponses(orders []domain.PurchaseOrder, places int32) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		out[i] = ToPurchaseOrderResponse(&orders[i], nil, places)
	}
	return out
}
