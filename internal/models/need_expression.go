package models

import "time"

// NeedExpression is a row of need_expressions.
type NeedExpression struct {
	ExpressionID    string     `db:"expression_id"`
	Number          int64      `db:"number"`
	Title           string     `db:"title"`
	DivisionID      string     `db:"division_id"`
	ServiceID       *string    `db:"service_id"` // Nullable
	Status          string     `db:"status"`
	DecisionComment *string    `db:"decision_comment"`
	DecidedBy       *string    `db:"decided_by"`
	DecidedAt       *time.Time `db:"decided_at"`
	AuditFields
}

// NeedLine is a row of need_lines.
type NeedLine struct {
	LineID        string `db:"line_id"`
	ExpressionID  string `db:"expression_id"`
	Position      int    `db:"position"`
	Description   string `db:"description"`
	Quantity      int64  `db:"quantity"`
	Justification string `db:"justification"`
	MaterialID    string `db:"material_id"`
}
