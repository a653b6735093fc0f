package domain

import (
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
)

// ReceptionLine is the quantity delivered against one order line in one delivery event.
type ReceptionLine struct {
	LineID           string  `json:"lineID"`
	OrderLineID      string  `json:"orderLineID"`
	QuantityReceived int64   `json:"quantityReceived"`
	QuantityAccepted int64   `json:"quantityAccepted"`
	QuantityRejected int64   `json:"quantityRejected"`
	Observations     *string `json:"observations,omitempty"`
}

// Reception is an append-only delivery record. Only ConfirmationGenerated ever changes, and only to true.
type Reception struct {
	ReceptionID           string          `json:"receptionID"`
	Number                string          `json:"number"`
	OrderID               string          `json:"orderID"`
	ReceivedAt            time.Time       `json:"receivedAt"`
	Carrier               *string         `json:"carrier,omitempty"`
	Observations          *string         `json:"observations,omitempty"`
	ConfirmationGenerated bool            `json:"confirmationGenerated"`
	Lines                 []ReceptionLine `json:"lines"`
	AuditFields
}

// ValidateReception checks a delivery against the locked order before anything is written.
// Checks run in order: cancellation, per-line shape and conformity, emptiness, then
// over-delivery against the per-line sum of the request. Each request line is compared with
// what is still open after the earlier lines for the same order line, so the running sum
// never exceeds Remaining and cannot overflow.
func ValidateReception(order PurchaseOrder, lines []ReceptionLine) error {
	if order.IsCancelled() {
		return apperrors.ErrOrderCancelled
	}
	if len(lines) == 0 {
		return apperrors.ErrEmptyReception
	}

	requested := make(map[string]int64, len(lines))
	var overDelivery *apperrors.OverDeliveryError
	anyReceived := false
	for _, l := range lines {
		line, ok := order.Line(l.OrderLineID)
		if !ok {
			return apperrors.NewNotFoundError("order line", l.OrderLineID)
		}
		if l.QuantityReceived < 0 || l.QuantityAccepted < 0 || l.QuantityRejected < 0 {
			return apperrors.NewValidationError("line %s: quantities must not be negative", l.OrderLineID)
		}
		// received-rejected cannot overflow once both are non-negative
		if l.QuantityAccepted != l.QuantityReceived-l.QuantityRejected {
			return &apperrors.ConformityError{
				OrderLineID: l.OrderLineID,
				Received:    l.QuantityReceived,
				Accepted:    l.QuantityAccepted,
				Rejected:    l.QuantityRejected,
			}
		}
		if l.QuantityReceived > 0 {
			anyReceived = true
		}
		if overDelivery != nil {
			continue
		}
		if l.QuantityReceived > line.Remaining()-requested[l.OrderLineID] {
			overDelivery = &apperrors.OverDeliveryError{
				OrderLineID: l.OrderLineID,
				Requested:   SaturatingAdd(requested[l.OrderLineID], l.QuantityReceived),
				Remaining:   line.Remaining(),
			}
			continue
		}
		requested[l.OrderLineID] += l.QuantityReceived
	}
	if !anyReceived {
		return apperrors.ErrEmptyReception
	}
	if overDelivery != nil {
		return overDelivery
	}
	return nil
}

// ApplyReception increments received quantities and re-derives the order status.
// Callers must have validated lines with ValidateReception.
func (o *PurchaseOrder) ApplyReception(lines []ReceptionLine, actorID string, at time.Time) {
	received := make(map[string]int64, len(lines))
	for _, l := range lines {
		received[l.OrderLineID] = SaturatingAdd(received[l.OrderLineID], l.QuantityReceived)
	}
	for i := range o.Lines {
		o.Lines[i].ReceivedQuantity = SaturatingAdd(o.Lines[i].ReceivedQuantity, received[o.Lines[i].LineID])
	}
	o.RefreshStatus()
	o.LastUpdatedAt = at
	o.LastUpdatedBy = actorID
}

// ReceivedLines drops lines that carry no quantity; they are not persisted.
func ReceivedLines(lines []ReceptionLine) []ReceptionLine {
	out := make([]ReceptionLine, 0, len(lines))
	for _, l := range lines {
		if l.QuantityReceived > 0 {
			out = append(out, l)
		}
	}
	return out
}
