package repositories

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// NeedExpressionReader defines read operations for need expressions
type NeedExpressionReader interface {
	// FindNeedExpressionByID retrieves an expression with its lines.
	FindNeedExpressionByID(ctx context.Context, expressionID string) (*domain.NeedExpression, error)

	// FindNeedExpressionForUpdate retrieves an expression with its lines and locks its row until tx ends.
	FindNeedExpressionForUpdate(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.NeedExpression, error)

	// ListNeedExpressions returns a page of expressions, newest first, and the token of the next page.
	ListNeedExpressions(ctx context.Context, filter domain.NeedExpressionFilter, limit int, nextToken *string) ([]domain.NeedExpression, *string, error)
}

// NeedExpressionWriter defines write operations for need expressions. All of them run inside tx.
type NeedExpressionWriter interface {
	// SaveNeedExpression inserts a new expression with its lines.
	SaveNeedExpression(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error

	// UpdateNeedExpressionStatus persists status, decision fields and audit fields.
	UpdateNeedExpressionStatus(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error

	// ReplaceNeedExpressionContent persists the title and replaces the full line list.
	ReplaceNeedExpressionContent(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error

	// DeleteNeedExpression removes a draft expression and its lines.
	DeleteNeedExpression(ctx context.Context, tx pgx.Tx, expressionID string) error
}

// NeedExpressionRepositoryFacade combines all need expression repository interfaces
type NeedExpressionRepositoryFacade interface {
	NeedExpressionReader
	NeedExpressionWriter
}

// NeedExpressionRepositoryWithTx extends NeedExpressionRepositoryFacade with transaction capabilities
type NeedExpressionRepositoryWithTx interface {
	NeedExpressionRepositoryFacade
	TransactionManager
}
