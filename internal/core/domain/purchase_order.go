package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery state of a purchase order.
type OrderStatus string

const (
	OrderPending            OrderStatus = "PENDING"
	OrderPartiallyDelivered OrderStatus = "PARTIALLY_DELIVERED"
	OrderDelivered          OrderStatus = "DELIVERED"
	OrderCancelled          OrderStatus = "CANCELLED"
)

// OrderLine is a priced line of a purchase order. Material fields are copied from the
// catalog when the line is written and never follow later catalog edits.
type OrderLine struct {
	LineID           string          `json:"lineID"`
	Description      string          `json:"description"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	MaterialID       string          `json:"materialID"`
	MaterialCode     string          `json:"materialCode"`
	MaterialName     string          `json:"materialName"`
	Unit             string          `json:"unit"`
	ReceivedQuantity int64           `json:"receivedQuantity"`
}

// Remaining is what can still be received on the line.
func (l OrderLine) Remaining() int64 {
	return l.Quantity - l.ReceivedQuantity
}

// identityKey matches lines across a regeneration.
func (l OrderLine) identityKey() string {
	return strings.ToLower(strings.TrimSpace(l.MaterialCode)) + "|" + strings.ToLower(strings.TrimSpace(l.Description))
}

// OrderTerms are the order-level fields set by create and regenerate.
type OrderTerms struct {
	SupplierID      *string
	SupplierName    *string
	DeliveryAddress *string
	TaxRate         decimal.Decimal
	DiscountRate    decimal.Decimal
	Observations    *string
}

var hundred = decimal.NewFromInt(100)

// Validate checks rate bounds.
func (t OrderTerms) Validate() error {
	if t.DiscountRate.IsNegative() || t.DiscountRate.GreaterThan(hundred) {
		return apperrors.NewValidationError("discount rate must be between 0 and 100, got %s", t.DiscountRate)
	}
	if t.TaxRate.IsNegative() {
		return apperrors.NewValidationError("tax rate must not be negative, got %s", t.TaxRate)
	}
	return nil
}

// PurchaseOrder is the priced, supplier-bound commitment derived from an approved expression.
type PurchaseOrder struct {
	OrderID         string          `json:"orderID"`
	Number          string          `json:"number"`
	ExpressionID    string          `json:"expressionID"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	SupplierName    *string         `json:"supplierName,omitempty"`
	DeliveryAddress *string         `json:"deliveryAddress,omitempty"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	DiscountRate    decimal.Decimal `json:"discountRate"`
	Observations    *string         `json:"observations,omitempty"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	EmittedAt       time.Time       `json:"emittedAt"`
	Lines           []OrderLine     `json:"lines"`
	AuditFields
}

// ApplyTerms overwrites the order-level fields.
func (o *PurchaseOrder) ApplyTerms(t OrderTerms) {
	o.SupplierID = t.SupplierID
	o.SupplierName = t.SupplierName
	o.DeliveryAddress = t.DeliveryAddress
	o.TaxRate = t.TaxRate
	o.DiscountRate = t.DiscountRate
	o.Observations = t.Observations
}

// Totals derives the financial figures from the current lines and rates.
func (o PurchaseOrder) Totals() Totals {
	return ComputeTotals(o.Lines, o.TaxRate, o.DiscountRate)
}

// Line finds an order line by identifier.
func (o PurchaseOrder) Line(lineID string) (OrderLine, bool) {
	for _, l := range o.Lines {
		if l.LineID == lineID {
			return l, true
		}
	}
	return OrderLine{}, false
}

// IsCancelled reports whether receptions and regeneration are frozen.
func (o PurchaseOrder) IsCancelled() bool {
	return o.Status == OrderCancelled
}

// RefreshStatus re-derives the persisted status from quantities. A cancelled order keeps its status.
func (o *PurchaseOrder) RefreshStatus() {
	if o.IsCancelled() {
		return
	}
	o.Status = DeriveOrderStatus(o.Lines)
}

// Cancel freezes the order. Delivered and already cancelled orders cannot be cancelled.
func (o *PurchaseOrder) Cancel(actorID string, at time.Time) error {
	switch o.Status {
	case OrderPending, OrderPartiallyDelivered:
		o.Status = OrderCancelled
		o.LastUpdatedAt = at
		o.LastUpdatedBy = actorID
		return nil
	default:
		return &apperrors.TransitionError{Entity: "purchase order", Current: string(o.Status), Attempted: "cancel"}
	}
}

// ValidateOrderLines checks quantities and prices of lines about to be written.
func ValidateOrderLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return apperrors.NewValidationError("purchase order requires at least one line")
	}
	for i, l := range lines {
		if strings.TrimSpace(l.Description) == "" {
			return apperrors.NewValidationError("line %d: description is required", i+1)
		}
		if l.Quantity <= 0 {
			return apperrors.NewValidationError("line %d: quantity must be a positive integer", i+1)
		}
		if l.UnitPrice.IsNegative() {
			return apperrors.NewValidationError("line %d: unit price must not be negative", i+1)
		}
		if l.MaterialID == "" {
			return apperrors.NewValidationError("line %d: material is required", i+1)
		}
	}
	return nil
}

// SnapshotMaterials copies catalog display fields onto each line.
func SnapshotMaterials(lines []OrderLine, materials map[string]Material) error {
	for i := range lines {
		m, ok := materials[lines[i].MaterialID]
		if !ok {
			return apperrors.NewNotFoundError("material", lines[i].MaterialID)
		}
		lines[i].MaterialCode = m.Code
		lines[i].MaterialName = m.Designation
		lines[i].Unit = m.Unit
	}
	return nil
}

// MaterialIDsOfOrderLines returns the distinct materials referenced by the lines.
func MaterialIDsOfOrderLines(lines []OrderLine) []string {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.MaterialID] {
			seen[l.MaterialID] = true
			ids = append(ids, l.MaterialID)
		}
	}
	return ids
}

// PurchaseOrderFilter narrows order listings.
type PurchaseOrderFilter struct {
	Status       *OrderStatus
	ExpressionID *string
}
