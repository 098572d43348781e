package settlementrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

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

const columns = "id, user_id, amount, currency, channel, status, created_at, processed_at"

func buildWhere(f domain.SettlementFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Channel != "" {
		add("channel = $%d", f.Channel)
	}
	if f.Currency != "" {
		add("currency = $%d", f.Currency)
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

// List returns the requested page of settlement requests plus the total
// match count under the same filter.
func (r *Repository) List(ctx context.Context, f domain.SettlementFilter) ([]domain.SettlementRequest, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT count(*) FROM settlement_requests" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count settlements", zap.Error(err))
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM settlement_requests%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		columns, where, len(args)+1, len(args)+2,
	)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch settlements", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var settlements []domain.SettlementRequest
	for rows.Next() {
		var s domain.SettlementRequest
		err := rows.Scan(&s.ID, &s.UserID, &s.Amount, &s.Currency, &s.Channel, &s.Status, &s.CreatedAt, &s.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, 0, err
		}
		settlements = append(settlements, s)
	}
	return settlements, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SettlementRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM settlement_requests WHERE id = $1", columns)
	row := r.db.QueryRow(ctx, query, id)

	var s domain.SettlementRequest
	err := row.Scan(&s.ID, &s.UserID, &s.Amount, &s.Currency, &s.Channel, &s.Status, &s.CreatedAt, &s.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// UpdateStatus moves a settlement from one status to another. The old
// status is part of the WHERE clause so a concurrent transition makes
// this a no-op rather than a lost update; the caller learns about it
// from the returned flag.
func (r *Repository) UpdateStatus(ctx context.Context, id, from, to string, processedAt *time.Time) (bool, error) {
	query := `
        UPDATE settlement_requests
        SET status = $1, processed_at = $2
        WHERE id = $3 AND status = $4
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, to, processedAt, id, from)
		if err != nil {
			zap.L().Error("can't update settlement status", zap.Error(err))
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
