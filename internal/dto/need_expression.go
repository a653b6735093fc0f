package dto

import (
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
)

// NeedLineRequest is one requested item.
type NeedLineRequest struct {
	Description   string `json:"description" binding:"required,notblank"`
	Quantity      int64  `json:"quantity" binding:"required,gt=0"`
	Justification string `json:"justification"`
	MaterialID    string `json:"materialID" binding:"required"`
}

// CreateNeedExpressionRequest opens a draft expression.
type CreateNeedExpressionRequest struct {
	Title      string            `json:"title" binding:"required,notblank,max=255"`
	DivisionID string            `json:"divisionID" binding:"required"`
	ServiceID  *string           `json:"serviceID"`
	Lines      []NeedLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// EditNeedExpressionRequest replaces the line list of a draft, and optionally its title.
type EditNeedExpressionRequest struct {
	Title *string           `json:"title" binding:"omitempty,notblank,max=255"`
	Lines []NeedLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// DecideNeedExpressionRequest carries an approver's verdict.
type DecideNeedExpressionRequest struct {
	Outcome domain.DecisionOutcome `json:"outcome" binding:"required,oneof=APPROVED REJECTED"`
	Comment *string                `json:"comment"`
}

// ListNeedExpressionsParams filters expression listings. Mine restricts to the caller's own.
type ListNeedExpressionsParams struct {
	Status *string `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED IN_PROGRESS"`
	Mine   bool    `form:"mine"`
	ListParams
}

// ToNeedLines converts request lines into domain lines without identifiers.
func ToNeedLines(reqs []NeedLineRequest) []domain.NeedLine {
	lines := make([]domain.NeedLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.NeedLine{
			Description:   r.Description,
			Quantity:      r.Quantity,
			Justification: r.Justification,
			MaterialID:    r.MaterialID,
		}
	}
	return lines
}

// NeedExpressionResponse defines the data returned for a need expression.
type NeedExpressionResponse struct {
	ExpressionID    string                  `json:"expressionID"`
	Number          string                  `json:"number"`
	DisplayNumber   string                  `json:"displayNumber"`
	Title           string                  `json:"title"`
	DivisionID      string                  `json:"divisionID"`
	ServiceID       *string                 `json:"serviceID,omitempty"`
	Status          domain.ExpressionStatus `json:"status"`
	DecisionComment *string                 `json:"decisionComment,omitempty"`
	DecidedBy       *string                 `json:"decidedBy,omitempty"`
	DecidedAt       *time.Time              `json:"decidedAt,omitempty"`
	Lines           []domain.NeedLine       `json:"lines"`
	CreatedAt       time.Time               `json:"createdAt"`
	CreatedBy       string                  `json:"createdBy"`
	LastUpdatedAt   time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy   string                  `json:"lastUpdatedBy"`
}

// ListNeedExpressionsResponse is a page of expressions.
type ListNeedExpressionsResponse struct {
	Expressions []NeedExpressionResponse `json:"expressions"`
	NextToken   *string                  `json:"nextToken,omitempty"`
}

// ToNeedExpressionResponse converts a domain.NeedExpression to its response DTO.
func ToNeedExpressionResponse(e *domain.NeedExpression) NeedExpressionResponse {
	lines := e.Lines
	if lines == nil {
		lines = []domain.NeedLine{}
	}
	return NeedExpressionResponse{
		ExpressionID:    e.ExpressionID,
		Number:          e.Number,
		DisplayNumber:   FormatNumber(ExpressionNumberPrefix, e.Number),
		Title:           e.Title,
		DivisionID:      e.DivisionID,
		ServiceID:       e.ServiceID,
		Status:          e.Status,
		DecisionComment: e.DecisionComment,
		DecidedBy:       e.DecidedBy,
		DecidedAt:       e.DecidedAt,
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToNeedExpressionResponses converts a slice of expressions.
func ToNeedExpressionResponses(es []domain.NeedExpression) []NeedExpressionResponse {
	out := make([]NeedExpressionResponse, len(es))
	for i := range es {
		out[i] = ToNeedExpressionResponse(&es[i])
	}
	return out
}
