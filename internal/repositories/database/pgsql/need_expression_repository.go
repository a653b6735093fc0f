package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_tracker/internal/models"
	"github.com/SscSPs/procurement_tracker/internal/utils/mapping"
	"github.com/SscSPs/procurement_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNeedExpressionRepository struct {
	BaseRepository
}

// newPgxNeedExpressionRepository creates a new repository for need expressions and their lines.
func newPgxNeedExpressionRepository(pool *pgxpool.Pool) portsrepo.NeedExpressionRepositoryWithTx {
	return &PgxNeedExpressionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxNeedExpressionRepository implements portsrepo.NeedExpressionRepositoryWithTx
var _ portsrepo.NeedExpressionRepositoryWithTx = (*PgxNeedExpressionRepository)(nil)

const expressionColumns = `
	expression_id, number, title, division_id, service_id, status,
	decision_comment, decided_by, decided_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanExpression(row pgx.Row) (models.NeedExpression, error) {
	var m models.NeedExpression
	err := row.Scan(
		&m.ExpressionID,
		&m.Number,
		&m.Title,
		&m.DivisionID,
		&m.ServiceID,
		&m.Status,
		&m.DecisionComment,
		&m.DecidedBy,
		&m.DecidedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// loadNeedLines fetches the lines of the given expressions grouped by expression ID.
func loadNeedLines(ctx context.Context, q querier, expressionIDs []string) (map[string][]models.NeedLine, error) {
	query := `
		SELECT line_id, expression_id, position, description, quantity, justification, material_id
		FROM need_lines
		WHERE expression_id = ANY($1)
		ORDER BY expression_id, position;
	`
	rows, err := q.Query(ctx, query, expressionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query need lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.NeedLine, len(expressionIDs))
	for rows.Next() {
		var l models.NeedLine
		if err := rows.Scan(&l.LineID, &l.ExpressionID, &l.Position, &l.Description, &l.Quantity, &l.Justification, &l.MaterialID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan need line row", err)
		}
		grouped[l.ExpressionID] = append(grouped[l.ExpressionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating need line rows", err)
	}
	return grouped, nil
}

func (r *PgxNeedExpressionRepository) findExpression(ctx context.Context, q querier, expressionID string, lock bool) (*domain.NeedExpression, error) {
	query := `SELECT ` + expressionColumns + ` FROM need_expressions WHERE expression_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanExpression(q.QueryRow(ctx, query, expressionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("need expression", expressionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find need expression by ID "+expressionID, err)
	}

	lines, err := loadNeedLines(ctx, q, []string{expressionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainNeedExpression(m, lines[expressionID])
	return &d, nil
}

// FindNeedExpressionByID retrieves an expression with its lines.
func (r *PgxNeedExpressionRepository) FindNeedExpressionByID(ctx context.Context, expressionID string) (*domain.NeedExpression, error) {
	return r.findExpression(ctx, r.Pool, expressionID, false)
}

// FindNeedExpressionForUpdate locks the expression row until tx ends.
func (r *PgxNeedExpressionRepository) FindNeedExpressionForUpdate(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.NeedExpression, error) {
	return r.findExpression(ctx, tx, expressionID, true)
}

// ListNeedExpressions pages by (created_at, expression_id) descending.
func (r *PgxNeedExpressionRepository) ListNeedExpressions(ctx context.Context, filter domain.NeedExpressionFilter, limit int, nextToken *string) ([]domain.NeedExpression, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether there is a next page
	fetchLimit := limit + 1

	query := `SELECT ` + expressionColumns + ` FROM need_expressions WHERE 1=1`
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		query += ` AND created_by = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, expression_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, expression_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list need expressions", err)
	}
	defer rows.Close()

	var heads []models.NeedExpression
	for rows.Next() {
		m, err := scanExpression(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan need expression row", err)
		}
		heads = append(heads, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating need expression rows", err)
	}

	var next *string
	if len(heads) > limit {
		heads = heads[:limit]
		last := heads[len(heads)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ExpressionID)
		next = &token
	}

	ids := make([]string, len(heads))
	for i, h := range heads {
		ids[i] = h.ExpressionID
	}
	lines, err := loadNeedLines(ctx, r.Pool, ids)
	if err != nil {
		return nil, nil, err
	}

	out := make([]domain.NeedExpression, len(heads))
	for i, h := range heads {
		out[i] = mapping.ToDomainNeedExpression(h, lines[h.ExpressionID])
	}
	return out, next, nil
}

func insertNeedLines(ctx context.Context, tx pgx.Tx, lines []models.NeedLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO need_lines (line_id, expression_id, position, description, quantity, justification, material_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, l := range lines {
		batch.Queue(lineQuery, l.LineID, l.ExpressionID, l.Position, l.Description, l.Quantity, l.Justification, l.MaterialID)
	}
	// Close reports the first failing statement
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to insert need lines")
	}
	return nil
}

// SaveNeedExpression inserts a new expression with its lines.
func (r *PgxNeedExpressionRepository) SaveNeedExpression(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	m, lines := mapping.ToModelNeedExpression(expression)
	query := `
		INSERT INTO need_expressions (
			expression_id, number, title, division_id, service_id, status,
			decision_comment, decided_by, decided_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.ExpressionID,
		m.Number,
		m.Title,
		m.DivisionID,
		m.ServiceID,
		m.Status,
		m.DecisionComment,
		m.DecidedBy,
		m.DecidedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return mapWriteError(err, "failed to insert need expression "+m.ExpressionID)
	}
	return insertNeedLines(ctx, tx, lines)
}

// UpdateNeedExpressionStatus persists status, decision fields and audit fields.
func (r *PgxNeedExpressionRepository) UpdateNeedExpressionStatus(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	query := `
		UPDATE need_expressions
		SET status = $2, decision_comment = $3, decided_by = $4, decided_at = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE expression_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		expression.ExpressionID,
		string(expression.Status),
		expression.DecisionComment,
		expression.DecidedBy,
		expression.DecidedAt,
		expression.LastUpdatedAt,
		expression.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update need expression status "+expression.ExpressionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("need expression", expression.ExpressionID)
	}
	return nil
}

// ReplaceNeedExpressionContent persists the title and replaces the full line list.
func (r *PgxNeedExpressionRepository) ReplaceNeedExpressionContent(ctx context.Context, tx pgx.Tx, expression domain.NeedExpression) error {
	query := `
		UPDATE need_expressions
		SET title = $2, last_updated_at = $3, last_updated_by = $4
		WHERE expression_id = $1;
	`
	tag, err := tx.Exec(ctx, query, expression.ExpressionID, expression.Title, expression.LastUpdatedAt, expression.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "failed to update need expression "+expression.ExpressionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("need expression", expression.ExpressionID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM need_lines WHERE expression_id = $1;`, expression.ExpressionID); err != nil {
		return mapWriteError(err, "failed to delete need lines of "+expression.ExpressionID)
	}
	return insertNeedLines(ctx, tx, mapping.ToModelNeedLines(expression.ExpressionID, expression.Lines))
}

// DeleteNeedExpression removes a draft expression; its lines go with it via ON DELETE CASCADE.
func (r *PgxNeedExpressionRepository) DeleteNeedExpression(ctx context.Context, tx pgx.Tx, expressionID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM need_expressions WHERE expression_id = $1;`, expressionID)
	if err != nil {
		return mapWriteError(err, "failed to delete need expression "+expressionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("need expression", expressionID)
	}
	return nil
}
