package transactionrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/pg"
	"github.com/farafina/backoffice/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repository reads gateway transactions. There is no write path: the
// payment subsystem owns the table.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const columns = "id, amount, currency, type, service, provider, status, order_id, ride_id, customer_id, seller_id, created_at"

func buildWhere(f domain.TransactionFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Service != "" {
		add("service = $%d", f.Service)
	}
	if f.Provider != "" {
		add("provider = $%d", f.Provider)
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

// List returns the requested page of transactions plus the total match
// count under the same filter.
func (r *Repository) List(ctx context.Context, f domain.TransactionFilter) ([]domain.ExternalTransaction, int, error) {
	where, args := buildWhere(f)

	var total int
	countQuery := "SELECT count(*) FROM external_transactions" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM external_transactions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		columns, where, len(args)+1, len(args)+2,
	)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var txns []domain.ExternalTransaction
	for rows.Next() {
		var t domain.ExternalTransaction
		var amount *decimal.Decimal
		err := rows.Scan(&t.ID, &amount, &t.Currency, &t.Type, &t.Service, &t.Provider,
			&t.Status, &t.OrderID, &t.RideID, &t.CustomerID, &t.SellerID, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, 0, err
		}
		// gateway has shipped NULL amounts; they count as zero
		t.Amount = money.OrZero(amount)
		txns = append(txns, t)
	}
	return txns, total, nil
}
