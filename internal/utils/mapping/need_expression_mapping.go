package mapping

import (
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/models"
)

// ToModelNeedExpression converts a domain NeedExpression to its row and line rows.
func ToModelNeedExpression(d domain.NeedExpression) (models.NeedExpression, []models.NeedLine) {
	m := models.NeedExpression{
		ExpressionID:    d.ExpressionID,
		Number:          parseNumber(d.Number),
		Title:           d.Title,
		DivisionID:      d.DivisionID,
		ServiceID:       d.ServiceID,
		Status:          string(d.Status),
		DecisionComment: d.DecisionComment,
		DecidedBy:       d.DecidedBy,
		DecidedAt:       d.DecidedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	return m, ToModelNeedLines(d.ExpressionID, d.Lines)
}

// ToModelNeedLines keeps the line order in Position.
func ToModelNeedLines(expressionID string, lines []domain.NeedLine) []models.NeedLine {
	out := make([]models.NeedLine, len(lines))
	for i, l := range lines {
		out[i] = models.NeedLine{
			LineID:        l.LineID,
			ExpressionID:  expressionID,
			Position:      i,
			Description:   l.Description,
			Quantity:      l.Quantity,
			Justification: l.Justification,
			MaterialID:    l.MaterialID,
		}
	}
	return out
}

// ToDomainNeedExpression converts rows back to a domain NeedExpression. Lines must be in position order.
func ToDomainNeedExpression(m models.NeedExpression, lines []models.NeedLine) domain.NeedExpression {
	d := domain.NeedExpression{
		ExpressionID:    m.ExpressionID,
		Number:          FormatNumber(m.Number),
		Title:           m.Title,
		DivisionID:      m.DivisionID,
		ServiceID:       m.ServiceID,
		Status:          domain.ExpressionStatus(m.Status),
		DecisionComment: m.DecisionComment,
		DecidedBy:       m.DecidedBy,
		DecidedAt:       m.DecidedAt,
		Lines:           make([]domain.NeedLine, len(lines)),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		d.Lines[i] = domain.NeedLine{
			LineID:        l.LineID,
			Description:   l.Description,
			Quantity:      l.Quantity,
			Justification: l.Justification,
			MaterialID:    l.MaterialID,
		}
	}
	return d
}
