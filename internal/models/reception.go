package models

import "time"

// Reception is a row of receptions.
type Reception struct {
	ReceptionID           string    `db:"reception_id"`
	Number                int64     `db:"number"`
	OrderID               string    `db:"order_id"`
	ReceivedAt            time.Time `db:"received_at"`
	Carrier               *string   `db:"carrier"`
	Observations          *string   `db:"observations"`
	ConfirmationGenerated bool      `db:"confirmation_generated"`
	AuditFields
}

// ReceptionLine is a row of reception_lines.
type ReceptionLine struct {
	LineID           string  `db:"line_id"`
	ReceptionID      string  `db:"reception_id"`
	OrderLineID      string  `db:"order_line_id"`
	QuantityReceived int64   `db:"quantity_received"`
	QuantityAccepted int64   `db:"quantity_accepted"`
	QuantityRejected int64   `db:"quantity_rejected"`
	Observations     *string `db:"observations"`
}
