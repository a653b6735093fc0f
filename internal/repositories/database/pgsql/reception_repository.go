package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_tracker/internal/models"
	"github.com/SscSPs/procurement_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceptionRepository struct {
	BaseRepository
}

// newPgxReceptionRepository creates a new repository for the reception ledger.
func newPgxReceptionRepository(pool *pgxpool.Pool) portsrepo.ReceptionRepositoryWithTx {
	return &PgxReceptionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReceptionRepositoryWithTx = (*PgxReceptionRepository)(nil)

const receptionColumns = `
	reception_id, number, order_id, received_at, carrier, observations, confirmation_generated,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReception(row pgx.Row) (models.Reception, error) {
	var m models.Reception
	err := row.Scan(
		&m.ReceptionID,
		&m.Number,
		&m.OrderID,
		&m.ReceivedAt,
		&m.Carrier,
		&m.Observations,
		&m.ConfirmationGenerated,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReceptionRepository) loadReceptionLines(ctx context.Context, receptionIDs []string) (map[string][]models.ReceptionLine, error) {
	query := `
		SELECT line_id, reception_id, order_line_id, quantity_received, quantity_accepted, quantity_rejected, observations
		FROM reception_lines
		WHERE reception_id = ANY($1)
		ORDER BY reception_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, receptionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reception lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.ReceptionLine, len(receptionIDs))
	for rows.Next() {
		var l models.ReceptionLine
		err := rows.Scan(&l.LineID, &l.ReceptionID, &l.OrderLineID, &l.QuantityReceived, &l.QuantityAccepted, &l.QuantityRejected, &l.Observations)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reception line row", err)
		}
		grouped[l.ReceptionID] = append(grouped[l.ReceptionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reception line rows", err)
	}
	return grouped, nil
}

func (r *PgxReceptionRepository) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions WHERE reception_id = $1;`
	m, err := scanReception(r.Pool.QueryRow(ctx, query, receptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("reception", receptionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find reception by ID "+receptionID, err)
	}
	lines, err := r.loadReceptionLines(ctx, []string{receptionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainReception(m, lines[receptionID])
	return &d, nil
}

// ListReceptionsByOrder returns every reception of an order, oldest first.
func (r *PgxReceptionRepository) ListReceptionsByOrder(ctx context.Context, orderID string) ([]domain.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions WHERE order_id = $1 ORDER BY number;`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list receptions of order "+orderID, err)
	}
	defer rows.Close()

	var heads []models.Reception
	for rows.Next() {
		m, err := scanReception(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reception row", err)
		}
		heads = append(heads, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reception rows", err)
	}

	ids := make([]string, len(heads))
	for i, h := range heads {
		ids[i] = h.ReceptionID
	}
	lines, err := r.loadReceptionLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reception, len(heads))
	for i, h := range heads {
		out[i] = mapping.ToDomainReception(h, lines[h.ReceptionID])
	}
	return out, nil
}

func (r *PgxReceptionRepository) CountReceptionsByOrder(ctx context.Context, orderID string) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM receptions WHERE order_id = $1;`, orderID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count receptions of order "+orderID, err)
	}
	return count, nil
}

// SaveReception inserts a reception and its lines inside tx.
func (r *PgxReceptionRepository) SaveReception(ctx context.Context, tx pgx.Tx, reception domain.Reception) error {
	m, lines := mapping.ToModelReception(reception)
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO receptions (
			reception_id, number, order_id, received_at, carrier, observations, confirmation_generated,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.ReceptionID,
		m.Number,
		m.OrderID,
		m.ReceivedAt,
		m.Carrier,
		m.Observations,
		m.ConfirmationGenerated,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	lineQuery := `
		INSERT INTO reception_lines (
			line_id, reception_id, position, order_line_id,
			quantity_received, quantity_accepted, quantity_rejected, observations
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i, l := range lines {
		batch.Queue(lineQuery, l.LineID, l.ReceptionID, i, l.OrderLineID, l.QuantityReceived, l.QuantityAccepted, l.QuantityRejected, l.Observations)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to insert reception "+m.ReceptionID)
	}
	return nil
}

// MarkConfirmationGenerated sets the one-way flag. Audit fields only move on the first call.
func (r *PgxReceptionRepository) MarkConfirmationGenerated(ctx context.Context, receptionID string, userID string, at time.Time) error {
	query := `
		UPDATE receptions
		SET confirmation_generated = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE reception_id = $1 AND NOT confirmation_generated;
	`
	tag, err := r.Pool.Exec(ctx, query, receptionID, at, userID)
	if err != nil {
		return mapWriteError(err, "failed to confirm reception "+receptionID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// Either already confirmed or missing
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM receptions WHERE reception_id = $1);`, receptionID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check reception "+receptionID, err)
	}
	if !exists {
		return apperrors.NewNotFoundError("reception", receptionID)
	}
	return nil
}
