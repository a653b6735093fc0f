package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_tracker/internal/models"
	"github.com/SscSPs/procurement_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCatalogRepository reads the reference tables. Nothing in the service writes them.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogReader = (*PgxCatalogRepository)(nil)

// FindMaterialsByIDs returns the found materials keyed by ID.
func (r *PgxCatalogRepository) FindMaterialsByIDs(ctx context.Context, materialIDs []string) (map[string]domain.Material, error) {
	out := make(map[string]domain.Material, len(materialIDs))
	if len(materialIDs) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT material_id, code, designation, unit, unit_value
		FROM materials
		WHERE material_id = ANY($1);`, materialIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query materials", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.MaterialID, &m.Code, &m.Designation, &m.Unit, &m.UnitValue); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan material row", err)
		}
		out[m.MaterialID] = mapping.ToDomainMaterial(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating material rows", err)
	}
	return out, nil
}

func (r *PgxCatalogRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	var m models.Supplier
	err := r.Pool.QueryRow(ctx, `SELECT supplier_id, name, address FROM suppliers WHERE supplier_id = $1;`, supplierID).
		Scan(&m.SupplierID, &m.Name, &m.Address)
	if err != nil {
		return nil, catalogLookupError(err, "supplier", supplierID)
	}
	d := mapping.ToDomainSupplier(m)
	return &d, nil
}

func (r *PgxCatalogRepository) FindDivisionByID(ctx context.Context, divisionID string) (*domain.Division, error) {
	var m models.Division
	err := r.Pool.QueryRow(ctx, `SELECT division_id, name FROM divisions WHERE division_id = $1;`, divisionID).
		Scan(&m.DivisionID, &m.Name)
	if err != nil {
		return nil, catalogLookupError(err, "division", divisionID)
	}
	d := mapping.ToDomainDivision(m)
	return &d, nil
}

func (r *PgxCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	var m models.Service
	err := r.Pool.QueryRow(ctx, `SELECT service_id, division_id, name FROM services WHERE service_id = $1;`, serviceID).
		Scan(&m.ServiceID, &m.DivisionID, &m.Name)
	if err != nil {
		return nil, catalogLookupError(err, "service", serviceID)
	}
	d := mapping.ToDomainService(m)
	return &d, nil
}

func catalogLookupError(err error, kind, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(kind, id)
	}
	return apperrors.NewAppError(500, "failed to find "+kind+" "+id, err)
}
