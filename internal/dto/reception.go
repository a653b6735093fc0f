package dto

import (
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
)

// ReceptionLineRequest is the delivery of one order line. Zero quantities are allowed per line.
type ReceptionLineRequest struct {
	OrderLineID      string  `json:"orderLineID" binding:"required"`
	QuantityReceived int64   `json:"quantityReceived" binding:"min=0"`
	QuantityAccepted int64   `json:"quantityAccepted" binding:"min=0"`
	QuantityRejected int64   `json:"quantityRejected" binding:"min=0"`
	Observations     *string `json:"observations"`
}

// RecordReceptionRequest records one delivery event against an order.
type RecordReceptionRequest struct {
	ReceivedAt   *time.Time             `json:"receivedAt"`
	Carrier      *string                `json:"carrier"`
	Observations *string                `json:"observations"`
	Lines        []ReceptionLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToReceptionLines converts request lines into domain lines without identifiers.
func ToReceptionLines(reqs []ReceptionLineRequest) []domain.ReceptionLine {
	lines := make([]domain.ReceptionLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.ReceptionLine{
			OrderLineID:      r.OrderLineID,
			QuantityReceived: r.QuantityReceived,
			QuantityAccepted: r.QuantityAccepted,
			QuantityRejected: r.QuantityRejected,
			Observations:     r.Observations,
		}
	}
	return lines
}

// ReceptionResponse defines the data returned for a reception.
type ReceptionResponse struct {
	ReceptionID           string                 `json:"receptionID"`
	Number                string                 `json:"number"`
	DisplayNumber         string                 `json:"displayNumber"`
	OrderID               string                 `json:"orderID"`
	ReceivedAt            time.Time              `json:"receivedAt"`
	Carrier               *string                `json:"carrier,omitempty"`
	Observations          *string                `json:"observations,omitempty"`
	ConfirmationGenerated bool                   `json:"confirmationGenerated"`
	Lines                 []domain.ReceptionLine `json:"lines"`
	CreatedAt             time.Time              `json:"createdAt"`
	CreatedBy             string                 `json:"createdBy"`
}

// RecordReceptionResponse returns the new reception with the order's progress after it.
type RecordReceptionResponse struct {
	Reception ReceptionResponse        `json:"reception"`
	Stats     *domain.FulfillmentStats `json:"stats"`
}

// ToReceptionResponse converts a domain.Reception to its response DTO.
func ToReceptionResponse(r *domain.Reception) ReceptionResponse {
	lines := r.Lines
	if lines == nil {
		lines = []domain.ReceptionLine{}
	}
	return ReceptionResponse{
		ReceptionID:           r.ReceptionID,
		Number:                r.Number,
		DisplayNumber:         FormatNumber(ReceptionNumberPrefix, r.Number),
		OrderID:               r.OrderID,
		ReceivedAt:            r.ReceivedAt,
		Carrier:               r.Carrier,
		Observations:          r.Observations,
		ConfirmationGenerated: r.ConfirmationGenerated,
		Lines:                 lines,
		CreatedAt:             r.CreatedAt,
		CreatedBy:             r.CreatedBy,
	}
}

// ToReceptionResponses converts a slice of receptions.
func ToReceptionResponses(rs []domain.Reception) []ReceptionResponse {
	out := make([]ReceptionResponse, len(rs))
	for i := range rs {
		out[i] = ToReceptionResponse(&rs[i])
	}
	return out
}
