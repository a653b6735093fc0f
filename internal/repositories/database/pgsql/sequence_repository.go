package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository keeps one counter row per entity. Incrementing inside the caller's
// tx holds the row lock until commit, so numbers are gapless and never reissued.
type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) NextValue(ctx context.Context, tx pgx.Tx, entity domain.SequenceEntity) (int64, error) {
	var value int64
	err := tx.QueryRow(ctx, `UPDATE sequences SET value = value + 1 WHERE entity = $1 RETURNING value;`, string(entity)).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewAppError(500, "sequence "+string(entity)+" is not seeded", err)
		}
		return 0, mapWriteError(err, "failed to advance sequence "+string(entity))
	}
	return value, nil
}
