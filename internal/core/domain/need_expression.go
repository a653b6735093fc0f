package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
)

// ExpressionStatus is the approval state of a need expression.
type ExpressionStatus string

const (
	ExpressionDraft      ExpressionStatus = "DRAFT"
	ExpressionPending    ExpressionStatus = "PENDING"
	ExpressionApproved   ExpressionStatus = "APPROVED"
	ExpressionRejected   ExpressionStatus = "REJECTED"
	ExpressionInProgress ExpressionStatus = "IN_PROGRESS"

	// ExpressionDeleted is the target of EventDelete; it is never persisted.
	ExpressionDeleted ExpressionStatus = "DELETED"
)

// ExpressionEvent is an input to the approval state machine.
type ExpressionEvent string

const (
	EventSubmit        ExpressionEvent = "submit"
	EventWithdraw      ExpressionEvent = "withdraw"
	EventApprove       ExpressionEvent = "approve"
	EventReject        ExpressionEvent = "reject"
	EventStartProgress ExpressionEvent = "start_progress"
	EventEdit          ExpressionEvent = "edit"
	EventDelete        ExpressionEvent = "delete"
	EventReopen        ExpressionEvent = "reopen"
)

// expressionTransitions lists every legal (state, event) pair. Anything absent is rejected.
var expressionTransitions = map[ExpressionStatus]map[ExpressionEvent]ExpressionStatus{
	ExpressionDraft: {
		EventSubmit: ExpressionPending,
		EventEdit:   ExpressionDraft,
		EventDelete: ExpressionDeleted,
	},
	ExpressionPending: {
		EventWithdraw: ExpressionDraft,
		EventApprove:  ExpressionApproved,
		EventReject:   ExpressionRejected,
	},
	ExpressionApproved: {
		EventStartProgress: ExpressionInProgress,
	},
	ExpressionRejected: {
		EventReopen: ExpressionDraft,
	},
	ExpressionInProgress: {},
}

// NextExpressionStatus returns the state reached by applying event to current.
func NextExpressionStatus(current ExpressionStatus, event ExpressionEvent) (ExpressionStatus, error) {
	next, ok := expressionTransitions[current][event]
	if !ok {
		return "", &apperrors.TransitionError{
			Entity:    "need expression",
			Current:   string(current),
			Attempted: string(event),
		}
	}
	return next, nil
}

// DecisionOutcome is the approver's verdict on a pending expression.
type DecisionOutcome string

const (
	OutcomeApproved DecisionOutcome = "APPROVED"
	OutcomeRejected DecisionOutcome = "REJECTED"
)

// Event maps an outcome to its state machine event.
func (o DecisionOutcome) Event() (ExpressionEvent, error) {
	switch o {
	case OutcomeApproved:
		return EventApprove, nil
	case OutcomeRejected:
		return EventReject, nil
	default:
		return "", apperrors.NewValidationError("unknown decision outcome %q", o)
	}
}

// NeedLine is one requested item. Only the material reference is kept; snapshots happen at order time.
type NeedLine struct {
	LineID        string `json:"lineID"`
	Description   string `json:"description"`
	Quantity      int64  `json:"quantity"`
	Justification string `json:"justification"`
	MaterialID    string `json:"materialID"`
}

// NeedExpression is a procurement request raised by a division's representative.
type NeedExpression struct {
	ExpressionID    string           `json:"expressionID"`
	Number          string           `json:"number"`
	Title           string           `json:"title"`
	DivisionID      string           `json:"divisionID"`
	ServiceID       *string          `json:"serviceID,omitempty"`
	Status          ExpressionStatus `json:"status"`
	DecisionComment *string          `json:"decisionComment,omitempty"`
	DecidedBy       *string          `json:"decidedBy,omitempty"`
	DecidedAt       *time.Time       `json:"decidedAt,omitempty"`
	Lines           []NeedLine       `json:"lines"`
	AuditFields
}

// Apply moves the expression through event, stamping the audit fields.
func (e *NeedExpression) Apply(event ExpressionEvent, actorID string, at time.Time) error {
	next, err := NextExpressionStatus(e.Status, event)
	if err != nil {
		return err
	}
	e.Status = next
	e.LastUpdatedAt = at
	e.LastUpdatedBy = actorID
	return nil
}

// Decide applies an approval outcome and records who decided, when and why.
func (e *NeedExpression) Decide(outcome DecisionOutcome, comment *string, actorID string, at time.Time) error {
	event, err := outcome.Event()
	if err != nil {
		return err
	}
	if err := e.Apply(event, actorID, at); err != nil {
		return err
	}
	e.DecisionComment = comment
	e.DecidedBy = &actorID
	e.DecidedAt = &at
	return nil
}

// ValidateNeedLines checks the shape of a line list before it replaces an expression's lines.
func ValidateNeedLines(lines []NeedLine) error {
	if len(lines) == 0 {
		return apperrors.NewValidationError("need expression requires at least one line")
	}
	for i, l := range lines {
		if strings.TrimSpace(l.Description) == "" {
			return apperrors.NewValidationError("line %d: description is required", i+1)
		}
		if l.Quantity <= 0 {
			return apperrors.NewValidationError("line %d: quantity must be a positive integer", i+1)
		}
		if l.MaterialID == "" {
			return apperrors.NewValidationError("line %d: material is required", i+1)
		}
	}
	return nil
}

// MaterialIDsOfNeedLines returns the distinct materials referenced by the lines.
func MaterialIDsOfNeedLines(lines []NeedLine) []string {
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

// NeedExpressionFilter narrows expression listings.
type NeedExpressionFilter struct {
	Status    *ExpressionStatus
	CreatedBy *string
}
