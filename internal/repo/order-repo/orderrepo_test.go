package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, pg.NewTXManager(mockDB))
	defer mockDB.Close()

	return repo, mockDB
}

func orderRows(createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "order_number", "buyer_id", "seller_id", "total_amount", "currency",
		"status", "payment_status", "created_at", "shipped_at", "delivered_at", "cancelled_at",
	}).AddRow(
		"ord_1", "ON-1001", "usr_1", "usr_2", decimal.RequireFromString("49.99"), "GMD",
		domain.OrderPending, domain.PaymentPending, createdAt, nil, nil, nil,
	)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		mockSetup func()
		expectErr bool
		total     int
		count     int
	}{
		{
			name: "Filtered page",
			filter: domain.OrderFilter{
				Currency: "GMD",
				Page:     domain.Pagination{Page: 1, Limit: 50},
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM orders WHERE currency = $1")).
					WithArgs("GMD").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_number, buyer_id, seller_id, total_amount, currency, status, payment_status, created_at, shipped_at, delivered_at, cancelled_at FROM orders WHERE currency = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
					WithArgs("GMD", 50, 0).
					WillReturnRows(orderRows(createdAt))
			},
			total: 1,
			count: 1,
		},
		{
			name:   "Count error",
			filter: domain.OrderFilter{Page: domain.Pagination{Page: 1, Limit: 10}},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM orders")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, total, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.total, total)
				assert.Len(t, orders, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	query := regexp.QuoteMeta("SELECT id, order_number, buyer_id, seller_id, total_amount, currency, status, payment_status, created_at, shipped_at, delivered_at, cancelled_at FROM orders WHERE id = $1")

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Order found",
			id:   "ord_1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ord_1").WillReturnRows(orderRows(createdAt))
			},
			found: true,
		},
		{
			name: "Order not found",
			id:   "ord_missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ord_missing").WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			id:   "ord_1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ord_1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.found {
					assert.NotNil(t, order)
					assert.Equal(t, tt.id, order.ID)
				} else {
					assert.Nil(t, order)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        UPDATE orders
        SET status = $1, payment_status = $2, shipped_at = $3, delivered_at = $4, cancelled_at = $5
        WHERE id = $6 AND status = $7 AND payment_status = $8`)

	order := &domain.Order{
		ID:            "ord_1",
		Status:        domain.OrderShipped,
		PaymentStatus: domain.PaymentPaid,
		ShippedAt:     &now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		updated   bool
		expectErr bool
	}{
		{
			name: "Order updated",
			mockSetup: func() {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs(domain.OrderShipped, domain.PaymentPaid, &now, (*time.Time)(nil), (*time.Time)(nil),
						"ord_1", domain.OrderConfirmed, domain.PaymentPaid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			updated: true,
		},
		{
			name: "Statuses moved under us",
			mockSetup: func() {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs(domain.OrderShipped, domain.PaymentPaid, &now, (*time.Time)(nil), (*time.Time)(nil),
						"ord_1", domain.OrderConfirmed, domain.PaymentPaid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectCommit()
			},
			updated: false,
		},
		{
			name: "Database error rolls back",
			mockSetup: func() {
				mock.ExpectBegin()
				mock.ExpectExec(query).
					WithArgs(domain.OrderShipped, domain.PaymentPaid, &now, (*time.Time)(nil), (*time.Time)(nil),
						"ord_1", domain.OrderConfirmed, domain.PaymentPaid).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.Update(context.Background(), order, domain.OrderConfirmed, domain.PaymentPaid)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, updated)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
