package repositories

import (
	"context"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CatalogReader is the read-only view of reference data the core snapshots from.
type CatalogReader interface {
	// FindMaterialsByIDs returns the found materials keyed by ID. Missing IDs are simply absent.
	FindMaterialsByIDs(ctx context.Context, materialIDs []string) (map[string]domain.Material, error)
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	FindDivisionByID(ctx context.Context, divisionID string) (*domain.Division, error)
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
}

// SequenceRepository issues per-entity sequential numbers.
type SequenceRepository interface {
	// NextValue increments the counter of entity inside tx and returns the new value.
	// A rolled back tx leaves no trace; a committed one never hands the value out again.
	NextValue(ctx context.Context, tx pgx.Tx, entity domain.SequenceEntity) (int64, error)
}
