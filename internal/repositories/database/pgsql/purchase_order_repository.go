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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// activeOrderIndex is the partial unique index allowing one non-cancelled order per expression.
const activeOrderIndex = "purchase_orders_active_expression_idx"

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

// newPgxPurchaseOrderRepository creates a new repository for purchase orders and their lines.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryWithTx {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseOrderRepository implements portsrepo.PurchaseOrderRepositoryWithTx
var _ portsrepo.PurchaseOrderRepositoryWithTx = (*PgxPurchaseOrderRepository)(nil)

const orderColumns = `
	order_id, number, expression_id, supplier_id, supplier_name, delivery_address,
	tax_rate, discount_rate, observations, status, total_amount, emitted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.OrderID,
		&m.Number,
		&m.ExpressionID,
		&m.SupplierID,
		&m.SupplierName,
		&m.DeliveryAddress,
		&m.TaxRate,
		&m.DiscountRate,
		&m.Observations,
		&m.Status,
		&m.TotalAmount,
		&m.EmittedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// loadOrderLines fetches the lines of the given orders grouped by order ID, optionally locking them.
func loadOrderLines(ctx context.Context, q querier, orderIDs []string, lock bool) (map[string][]models.OrderLine, error) {
	query := `
		SELECT line_id, order_id, position, description, quantity, unit_price,
		       material_id, material_code, material_name, unit, received_quantity
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`
	if lock {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.OrderLine, len(orderIDs))
	for rows.Next() {
		var l models.OrderLine
		err := rows.Scan(
			&l.LineID,
			&l.OrderID,
			&l.Position,
			&l.Description,
			&l.Quantity,
			&l.UnitPrice,
			&l.MaterialID,
			&l.MaterialCode,
			&l.MaterialName,
			&l.Unit,
			&l.ReceivedQuantity,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order line row", err)
		}
		grouped[l.OrderID] = append(grouped[l.OrderID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order line rows", err)
	}
	return grouped, nil
}

func (r *PgxPurchaseOrderRepository) findOrder(ctx context.Context, q querier, where string, arg string, lock bool) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE ` + where
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanOrder(q.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, err
	}
	lines, err := loadOrderLines(ctx, q, []string{m.OrderID}, lock)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPurchaseOrder(m, lines[m.OrderID])
	return &d, nil
}

// FindPurchaseOrderByID retrieves an order with its lines, without locking.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	order, err := r.findOrder(ctx, r.Pool, `order_id = $1`, orderID, false)
	return order, orderLookupError(err, "purchase order", orderID)
}

// FindPurchaseOrderForUpdate locks the order row and its line rows until tx ends.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.PurchaseOrder, error) {
	order, err := r.findOrder(ctx, tx, `order_id = $1`, orderID, true)
	return order, orderLookupError(err, "purchase order", orderID)
}

// FindActivePurchaseOrderByExpression returns the non-cancelled order of an expression.
func (r *PgxPurchaseOrderRepository) FindActivePurchaseOrderByExpression(ctx context.Context, tx pgx.Tx, expressionID string) (*domain.PurchaseOrder, error) {
	order, err := r.findOrder(ctx, tx, `expression_id = $1 AND status <> 'CANCELLED'`, expressionID, false)
	return order, orderLookupError(err, "active purchase order for expression", expressionID)
}

func orderLookupError(err error, kind, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(kind, id)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.NewAppError(500, "failed to find "+kind+" "+id, err)
}

// ListPurchaseOrders pages by (created_at, order_id) descending.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, filter domain.PurchaseOrderFilter, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE 1=1`
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.ExpressionID != nil {
		args = append(args, *filter.ExpressionID)
		query += ` AND expression_id = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		args = append(args, lastCreatedAt, lastID)
		query += ` AND (created_at, order_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY created_at DESC, order_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list purchase orders", err)
	}
	defer rows.Close()

	var heads []models.PurchaseOrder
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan purchase order row", err)
		}
		heads = append(heads, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating purchase order rows", err)
	}

	var next *string
	if len(heads) > limit {
		heads = heads[:limit]
		last := heads[len(heads)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.OrderID)
		next = &token
	}

	ids := make([]string, len(heads))
	for i, h := range heads {
		ids[i] = h.OrderID
	}
	lines, err := loadOrderLines(ctx, r.Pool, ids, false)
	if err != nil {
		return nil, nil, err
	}
	out := make([]domain.PurchaseOrder, len(heads))
	for i, h := range heads {
		out[i] = mapping.ToDomainPurchaseOrder(h, lines[h.OrderID])
	}
	return out, next, nil
}

const upsertOrderLineQuery = `
	INSERT INTO order_lines (
		line_id, order_id, position, description, quantity, unit_price,
		material_id, material_code, material_name, unit, received_quantity
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (line_id) DO UPDATE SET
		position = EXCLUDED.position,
		description = EXCLUDED.description,
		quantity = EXCLUDED.quantity,
		unit_price = EXCLUDED.unit_price,
		material_id = EXCLUDED.material_id,
		material_code = EXCLUDED.material_code,
		material_name = EXCLUDED.material_name,
		unit = EXCLUDED.unit,
		received_quantity = EXCLUDED.received_quantity;
`

func upsertOrderLines(ctx context.Context, tx pgx.Tx, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(upsertOrderLineQuery,
			l.LineID,
			l.OrderID,
			l.Position,
			l.Description,
			l.Quantity,
			l.UnitPrice,
			l.MaterialID,
			l.MaterialCode,
			l.MaterialName,
			l.Unit,
			l.ReceivedQuantity,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to write order lines")
	}
	return nil
}

// SavePurchaseOrder inserts a new order with its lines. A second active order for the
// same expression trips the partial unique index and maps to ErrOrderAlreadyExists.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	m, lines := mapping.ToModelPurchaseOrder(order)
	query := `
		INSERT INTO purchase_orders (
			order_id, number, expression_id, supplier_id, supplier_name, delivery_address,
			tax_rate, discount_rate, observations, status, total_amount, emitted_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.OrderID,
		m.Number,
		m.ExpressionID,
		m.SupplierID,
		m.SupplierName,
		m.DeliveryAddress,
		m.TaxRate,
		m.DiscountRate,
		m.Observations,
		m.Status,
		m.TotalAmount,
		m.EmittedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == activeOrderIndex {
			return apperrors.ErrOrderAlreadyExists
		}
		return mapWriteError(err, "failed to insert purchase order "+m.OrderID)
	}
	return upsertOrderLines(ctx, tx, lines)
}

// ReplacePurchaseOrder overwrites the order-level fields, deletes removedLineIDs and upserts the current lines.
func (r *PgxPurchaseOrderRepository) ReplacePurchaseOrder(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder, removedLineIDs []string) error {
	m, lines := mapping.ToModelPurchaseOrder(order)
	query := `
		UPDATE purchase_orders
		SET supplier_id = $2, supplier_name = $3, delivery_address = $4, tax_rate = $5,
		    discount_rate = $6, observations = $7, status = $8, total_amount = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE order_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.OrderID,
		m.SupplierID,
		m.SupplierName,
		m.DeliveryAddress,
		m.TaxRate,
		m.DiscountRate,
		m.Observations,
		m.Status,
		m.TotalAmount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to update purchase order "+m.OrderID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("purchase order", m.OrderID)
	}

	if len(removedLineIDs) > 0 {
		_, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1 AND line_id = ANY($2);`, m.OrderID, removedLineIDs)
		if err != nil {
			return mapWriteError(err, "failed to delete order lines of "+m.OrderID)
		}
	}
	return upsertOrderLines(ctx, tx, lines)
}

// UpdatePurchaseOrderProgress persists the status and each line's received quantity.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrderProgress(ctx context.Context, tx pgx.Tx, order domain.PurchaseOrder) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE purchase_orders SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;`,
		order.OrderID, string(order.Status), order.LastUpdatedAt, order.LastUpdatedBy)
	for _, l := range order.Lines {
		batch.Queue(`UPDATE order_lines SET received_quantity = $3 WHERE order_id = $1 AND line_id = $2;`,
			order.OrderID, l.LineID, l.ReceivedQuantity)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError(err, "failed to update progress of purchase order "+order.OrderID)
	}
	return nil
}
