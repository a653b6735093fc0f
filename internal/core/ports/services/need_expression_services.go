package services

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/dto"
)

// NeedExpressionReaderSvc defines read operations for need expressions
type NeedExpressionReaderSvc interface {
	// GetNeedExpression returns an expression visible to the actor.
	GetNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error)

	// ListNeedExpressions returns a page of expressions visible to the actor.
	ListNeedExpressions(ctx context.Context, actor domain.Actor, params dto.ListNeedExpressionsParams) (*dto.ListNeedExpressionsResponse, error)
}

// NeedExpressionWriterSvc defines the draft editing operations
type NeedExpressionWriterSvc interface {
	// CreateNeedExpression opens a draft owned by the actor.
	CreateNeedExpression(ctx context.Context, actor domain.Actor, req dto.CreateNeedExpressionRequest) (*domain.NeedExpression, error)

	// EditNeedExpression replaces the lines (and optionally the title) of the actor's draft.
	EditNeedExpression(ctx context.Context, actor domain.Actor, expressionID string, req dto.EditNeedExpressionRequest) (*domain.NeedExpression, error)

	// DeleteNeedExpression removes the actor's draft.
	DeleteNeedExpression(ctx context.Context, actor domain.Actor, expressionID string) error
}

// RequestLifecycleSvc defines the approval state machine operations
type RequestLifecycleSvc interface {
	// Submit moves the owner's draft to pending.
	Submit(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error)

	// Withdraw returns the owner's pending expression to draft.
	Withdraw(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error)

	// Decide approves or rejects a pending expression. Approver or administrator only.
	Decide(ctx context.Context, actor domain.Actor, expressionID string, outcome domain.DecisionOutcome, comment *string) (*domain.NeedExpression, error)

	// MarkInProgress moves an approved expression to in progress. Administrator only.
	MarkInProgress(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error)

	// Reopen returns the owner's rejected expression to draft.
	Reopen(ctx context.Context, actor domain.Actor, expressionID string) (*domain.NeedExpression, error)
}

// NeedExpressionSvcFacade combines all need expression service interfaces
type NeedExpressionSvcFacade interface {
	NeedExpressionReaderSvc
	NeedExpressionWriterSvc
	RequestLifecycleSvc
}
