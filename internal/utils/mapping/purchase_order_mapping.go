package mapping

import (
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to its row and line rows.
func ToModelPurchaseOrder(d domain.PurchaseOrder) (models.PurchaseOrder, []models.OrderLine) {
	m := models.PurchaseOrder{
		OrderID:         d.OrderID,
		Number:          parseNumber(d.Number),
		ExpressionID:    d.ExpressionID,
		SupplierID:      d.SupplierID,
		SupplierName:    d.SupplierName,
		DeliveryAddress: d.DeliveryAddress,
		TaxRate:         d.TaxRate,
		DiscountRate:    d.DiscountRate,
		Observations:    d.Observations,
		Status:          string(d.Status),
		TotalAmount:     d.TotalAmount,
		EmittedAt:       d.EmittedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	lines := make([]models.OrderLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.OrderLine{
			LineID:           l.LineID,
			OrderID:          d.OrderID,
			Position:         i,
			Description:      l.Description,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			MaterialID:       l.MaterialID,
			MaterialCode:     l.MaterialCode,
			MaterialName:     l.MaterialName,
			Unit:             l.Unit,
			ReceivedQuantity: l.ReceivedQuantity,
		}
	}
	return m, lines
}

// ToDomainPurchaseOrder converts rows back to a domain PurchaseOrder. Lines must be in position order.
func ToDomainPurchaseOrder(m models.PurchaseOrder, lines []models.OrderLine) domain.PurchaseOrder {
	d := domain.PurchaseOrder{
		OrderID:         m.OrderID,
		Number:          FormatNumber(m.Number),
		ExpressionID:    m.ExpressionID,
		SupplierID:      m.SupplierID,
		SupplierName:    m.SupplierName,
		DeliveryAddress: m.DeliveryAddress,
		TaxRate:         m.TaxRate,
		DiscountRate:    m.DiscountRate,
		Observations:    m.Observations,
		Status:          domain.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		EmittedAt:       m.EmittedAt,
		Lines:           make([]domain.OrderLine, len(lines)),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = domain.OrderLine{
			LineID:           l.LineID,
			Description:      l.Description,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			MaterialID:       l.MaterialID,
			MaterialCode:     l.MaterialCode,
			MaterialName:     l.MaterialName,
			Unit:             l.Unit,
			ReceivedQuantity: l.ReceivedQuantity,
		}
	}
	return d
}
