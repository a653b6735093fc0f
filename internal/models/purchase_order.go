package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a row of purchase_orders.
type PurchaseOrder struct {
	OrderID         string          `db:"order_id"`
	Number          int64           `db:"number"`
	ExpressionID    string          `db:"expression_id"`
	SupplierID      *string         `db:"supplier_id"`
	SupplierName    *string         `db:"supplier_name"` // Snapshot at emission
	DeliveryAddress *string         `db:"delivery_address"`
	TaxRate         decimal.Decimal `db:"tax_rate"`
	DiscountRate    decimal.Decimal `db:"discount_rate"`
	Observations    *string         `db:"observations"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	EmittedAt       time.Time       `db:"emitted_at"`
	AuditFields
}

// OrderLine is a row of order_lines. Material fields are copies, never joins.
type OrderLine struct {
	LineID           string          `db:"line_id"`
	OrderID          string          `db:"order_id"`
	Position         int             `db:"position"`
	Description      string          `db:"description"`
	Quantity         int64           `db:"quantity"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	MaterialID       string          `db:"material_id"`
	MaterialCode     string          `db:"material_code"`
	MaterialName     string          `db:"material_name"`
	Unit             string          `db:"unit"`
	ReceivedQuantity int64           `db:"received_quantity"`
}
