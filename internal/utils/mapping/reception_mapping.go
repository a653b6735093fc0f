package mapping

import (
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/models"
)

// ToModelReception converts a domain Reception to its row and line rows.
func ToModelReception(d domain.Reception) (models.Reception, []models.ReceptionLine) {
	m := models.Reception{
		ReceptionID:           d.ReceptionID,
		Number:                parseNumber(d.Number),
		OrderID:               d.OrderID,
		ReceivedAt:            d.ReceivedAt,
		Carrier:               d.Carrier,
		Observations:          d.Observations,
		ConfirmationGenerated: d.ConfirmationGenerated,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
	lines := make([]models.ReceptionLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.ReceptionLine{
			LineID:           l.LineID,
			ReceptionID:      d.ReceptionID,
			OrderLineID:      l.OrderLineID,
			QuantityReceived: l.QuantityReceived,
			QuantityAccepted: l.QuantityAccepted,
			QuantityRejected: l.QuantityRejected,
			Observations:     l.Observations,
		}
	}
	return m, lines
}

// ToDomainReception converts rows back to a domain Reception.
func ToDomainReception(m models.Reception, lines []models.ReceptionLine) domain.Reception {
	d := domain.Reception{
		ReceptionID:           m.ReceptionID,
		Number:                FormatNumber(m.Number),
		OrderID:               m.OrderID,
		ReceivedAt:            m.ReceivedAt,
		Carrier:               m.Carrier,
		Observations:          m.Observations,
		ConfirmationGenerated: m.ConfirmationGenerated,
		Lines:                 make([]domain.ReceptionLine, len(lines)),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = domain.ReceptionLine{
			LineID:           l.LineID,
			OrderLineID:      l.OrderLineID,
			QuantityReceived: l.QuantityReceived,
			QuantityAccepted: l.QuantityAccepted,
			QuantityRejected: l.QuantityRejected,
			Observations:     l.Observations,
		}
	}
	return d
}
