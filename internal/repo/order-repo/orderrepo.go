package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const columns = "id, order_number, buyer_id, seller_id, total_amount, currency, status, payment_status, created_at, shipped_at, delivered_at, cancelled_at"

func buildWhere(f domain.OrderFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.PaymentStatus != "" {
		add("payment_status = $%d", f.PaymentStatus)
	}
	if f.Currency != "" {
		add("currency = $%d", f.Currency)
	}
	if f.OrderNumber != "" {
		add("order_number = $%d", f.OrderNumber)
	}
	if f.Window.From != nil {
		add("created_at >= $%d", *f.Window.From)
	}
	if f.Window.To != nil {
		add("created_at <= $%d", *f.Window.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanOrder(rows pgx.Rows) (domain.Order, error) {
	var o domain.Order
	err := rows.Scan(&o.ID, &o.OrderNumber, &o.BuyerID, &o.SellerID, &o.TotalAmount, &o.Currency,
		&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.ShippedAt, &o.DeliveredAt, &o.CancelledAt)
	return o, err
}

// List returns the requested page of orders plus the total match count
// under the same filter.
func (r *Repository) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT count(*) FROM orders" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count orders", zap.Error(err))
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		columns, where, len(args)+1, len(args)+2,
	)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch orders", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE id = $1", columns)
	row := r.db.QueryRow(ctx, query, id)

	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.BuyerID, &o.SellerID, &o.TotalAmount, &o.Currency,
		&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.ShippedAt, &o.DeliveredAt, &o.CancelledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &o, nil
}

// Update persists one admin transition. The previous fulfilment and
// payment statuses are part of the WHERE clause so a concurrent
// transition makes this a no-op rather than a lost update; the caller
// learns about it from the returned flag.
func (r *Repository) Update(ctx context.Context, order *domain.Order, fromStatus, fromPaymentStatus string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, payment_status = $2, shipped_at = $3, delivered_at = $4, cancelled_at = $5
        WHERE id = $6 AND status = $7 AND payment_status = $8
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query,
			order.Status, order.PaymentStatus, order.ShippedAt, order.DeliveredAt, order.CancelledAt,
			order.ID, fromStatus, fromPaymentStatus)
		if err != nil {
			zap.L().Error("can't update order", zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}
