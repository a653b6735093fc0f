package dto

import "github.com/SscSPs/procurement_tracker/internal/core/domain"

// OrderDocument is the fully resolved, read-only view a document generator renders:
// the originating expression, the order with its totals and progress, and every reception.
type OrderDocument struct {
	Expression NeedExpressionResponse `json:"expression"`
	Order      PurchaseOrderResponse  `json:"order"`
	Receptions []ReceptionResponse    `json:"receptions"`
}

// OrderDocumentSource is what the order service assembles for a document.
type OrderDocumentSource struct {
	Expression domain.NeedExpression
	Order      domain.PurchaseOrder
	Stats      domain.FulfillmentStats
	Receptions []domain.Reception
}

// ToOrderDocument resolves a document from its source entities.
func ToOrderDocument(src OrderDocumentSource, places int32) OrderDocument {
	stats := src.Stats
	return OrderDocument{
		Expression: ToNeedExpressionResponse(&src.Expression),
		Order:      ToPurchaseOrderResponse(&src.Order, &stats, places),
		Receptions: ToReceptionResponses(src.Receptions),
	}
}
