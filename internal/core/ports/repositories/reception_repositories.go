package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ReceptionReader defines read operations for receptions
type ReceptionReader interface {
	FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error)

	// ListReceptionsByOrder returns every reception of an order, oldest first.
	ListReceptionsByOrder(ctx context.Context, orderID string) ([]domain.Reception, error)

	CountReceptionsByOrder(ctx context.Context, orderID string) (int, error)
}

// ReceptionWriter defines write operations for receptions. Receptions are append-only.
type ReceptionWriter interface {
	// SaveReception inserts a reception and its lines inside tx.
	SaveReception(ctx context.Context, tx pgx.Tx, reception domain.Reception) error

	// MarkConfirmationGenerated sets the one-way confirmation flag. Setting it twice is not an error.
	MarkConfirmationGenerated(ctx context.Context, receptionID string, userID string, at time.Time) error
}

// ReceptionRepositoryFacade combines all reception repository interfaces
type ReceptionRepositoryFacade interface {
	ReceptionReader
	ReceptionWriter
}

// ReceptionRepositoryWithTx extends ReceptionRepositoryFacade with transaction capabilities
type ReceptionRepositoryWithTx interface {
	ReceptionRepositoryFacade
	TransactionManager
}
