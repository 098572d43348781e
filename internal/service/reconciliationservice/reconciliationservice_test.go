package reconciliationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockSettlementRepo, *MockOrderRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	settlementRepo := NewMockSettlementRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(settlementRepo, orderRepo, transactionRepo)
	defer ctrl.Finish()
	return service, settlementRepo, orderRepo, transactionRepo
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func assertBalanced(t *testing.T, g CurrencyGroup) {
	t.Helper()
	assert.True(t, g.TotalDebits.Equal(g.Debits.SettlementRequests.Add(g.Debits.Original)),
		"totalDebits must equal the sum of debit buckets for %s", g.Currency)
	assert.True(t, g.TotalCredits.Equal(g.Credits.GatewayFee.Add(g.Credits.ServiceFee)),
		"totalCredits must equal the sum of credit buckets for %s", g.Currency)
	assert.True(t, g.NetPosition.Equal(g.TotalDebits.Sub(g.TotalCredits)),
		"netPosition must equal totalDebits - totalCredits for %s", g.Currency)
}

func TestReconcileSingleCurrency(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.SettlementRequest{
		{ID: "stl_1", Amount: dec("100.00"), Currency: "GMD", Status: domain.SettlementCompleted},
	}, 1, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ExternalTransaction{
		{ID: "txn_1", Amount: dec("100.00"), Currency: "GMD", Type: domain.TxTypeOriginal, Status: domain.TxSuccess},
		{ID: "txn_2", Amount: dec("5.00"), Currency: "GMD", Type: domain.TxTypeServiceFee, Status: domain.TxSuccess},
	}, 2, nil)

	report, err := service.Reconcile(context.Background(), Query{Currency: "GMD", Page: 1, Limit: 1000})
	assert.NoError(t, err)
	assert.Len(t, report.Groups, 1)

	g := report.Groups[0]
	assert.Equal(t, "GMD", g.Currency)
	assert.Equal(t, "100", g.Debits.SettlementRequests.String())
	assert.Equal(t, "100", g.Debits.Original.String())
	assert.Equal(t, "5", g.Credits.ServiceFee.String())
	assert.Equal(t, "0", g.Credits.GatewayFee.String())
	assert.Equal(t, "200", g.TotalDebits.String())
	assert.Equal(t, "5", g.TotalCredits.String())
	assert.Equal(t, "195", g.NetPosition.String())
	assertBalanced(t, g)

	assert.Len(t, g.Details.Settlements, 1)
	assert.Len(t, g.Details.Transactions, 2)
	assert.Empty(t, g.Details.Orders)

	assert.Equal(t, "GMD", report.Summary.Currency)
	assert.Equal(t, "195", report.Summary.NetPosition.String())
}

func TestReconcileMultiCurrencySorted(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.SettlementRequest{
		{ID: "stl_1", Amount: dec("30.50"), Currency: "USD", Status: domain.SettlementCompleted},
		{ID: "stl_2", Amount: dec("200.00"), Currency: "GMD", Status: domain.SettlementCompleted},
	}, 2, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Order{
		{ID: "ord_1", TotalAmount: dec("99.99"), Currency: "USD"},
	}, 1, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ExternalTransaction{
		{ID: "txn_1", Amount: dec("1.25"), Currency: "USD", Type: domain.TxTypeFee, Status: domain.TxSuccess},
	}, 1, nil)

	report, err := service.Reconcile(context.Background(), Query{Page: 1, Limit: 1000})
	assert.NoError(t, err)
	assert.Len(t, report.Groups, 2)
	assert.Equal(t, "GMD", report.Groups[0].Currency)
	assert.Equal(t, "USD", report.Groups[1].Currency)

	for _, g := range report.Groups {
		assertBalanced(t, g)
	}

	// orders are detail only: USD debits hold just the settlement
	usd := report.Groups[1]
	assert.Equal(t, "30.5", usd.TotalDebits.String())
	assert.Equal(t, "1.25", usd.TotalCredits.String())
	assert.Equal(t, "29.25", usd.NetPosition.String())
	assert.Len(t, usd.Details.Orders, 1)

	gmd := report.Groups[0]
	assert.Equal(t, "200", gmd.TotalDebits.String())
	assert.Equal(t, "0", gmd.TotalCredits.String())
	assert.Equal(t, "200", gmd.NetPosition.String())
}

func TestReconcileUnmodeledTransactionType(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ExternalTransaction{
		{ID: "txn_1", Amount: dec("42.00"), Currency: "GMD", Type: "REFUND", Status: domain.TxSuccess},
	}, 1, nil)

	report, err := service.Reconcile(context.Background(), Query{Page: 1, Limit: 1000})
	assert.NoError(t, err)
	assert.Len(t, report.Groups, 1)

	g := report.Groups[0]
	assert.Equal(t, "0", g.TotalDebits.String())
	assert.Equal(t, "0", g.TotalCredits.String())
	assert.Equal(t, "0", g.NetPosition.String())
	assert.Len(t, g.Details.Transactions, 1, "unmodeled type still lands in the detail list")
}

func TestReconcileBlankCurrencyIsLiteralKey(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.SettlementRequest{
		{ID: "stl_1", Amount: dec("10.00"), Currency: "", Status: domain.SettlementCompleted},
	}, 1, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	report, err := service.Reconcile(context.Background(), Query{Page: 1, Limit: 1000})
	assert.NoError(t, err)
	assert.Len(t, report.Groups, 1)
	assert.Equal(t, "", report.Groups[0].Currency, "blank code stays a literal key, no GMD substitution")

	// the summary still reports the home currency, zeroed
	assert.Equal(t, "GMD", report.Summary.Currency)
	assert.Equal(t, "0", report.Summary.NetPosition.String())
}

func TestReconcileEmptyWindow(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	report, err := service.Reconcile(context.Background(), Query{Currency: "XOF", Page: 1, Limit: 1000})
	assert.NoError(t, err)
	assert.Empty(t, report.Groups)
	assert.Equal(t, 0, report.Pages.TotalRecords)
	assert.Equal(t, 0, report.Pages.TotalPages)
	assert.False(t, report.Pages.HasNextPage)
	assert.False(t, report.Pages.HasPrevPage)
}

func TestReconcileCurrencyFilterPropagated(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	window := domain.Window{From: &from, To: &to}
	page := domain.Pagination{Page: 2, Limit: 10}

	settlementRepo.EXPECT().
		List(gomock.Any(), domain.SettlementFilter{Status: domain.SettlementCompleted, Currency: "USD", Window: window, Page: page}).
		Return(nil, 0, nil)
	orderRepo.EXPECT().
		List(gomock.Any(), domain.OrderFilter{Currency: "USD", Window: window, Page: page}).
		Return(nil, 0, nil)
	transactionRepo.EXPECT().
		List(gomock.Any(), domain.TransactionFilter{Status: domain.TxSuccess, Currency: "USD", Window: window, Page: page}).
		Return(nil, 0, nil)

	_, err := service.Reconcile(context.Background(), Query{Window: window, Currency: "USD", Page: 2, Limit: 10})
	assert.NoError(t, err)
}

func TestReconcilePaginationMath(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 40, nil)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 60, nil)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 20, nil)

	report, err := service.Reconcile(context.Background(), Query{Page: 2, Limit: 50})
	assert.NoError(t, err)
	assert.Equal(t, 40, report.Pages.TotalSettlements)
	assert.Equal(t, 60, report.Pages.TotalOrders)
	assert.Equal(t, 20, report.Pages.TotalTransactions)
	assert.Equal(t, 120, report.Pages.TotalRecords)
	assert.Equal(t, 3, report.Pages.TotalPages)
	assert.True(t, report.Pages.HasNextPage)
	assert.True(t, report.Pages.HasPrevPage)
}

func TestReconcileInvalidInput(t *testing.T) {
	service, _, _, _ := NewMock(t)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		query       Query
		expectedErr error
	}{
		{
			name:        "window out of order",
			query:       Query{Window: domain.Window{From: &from, To: &to}, Page: 1, Limit: 10},
			expectedErr: ErrInvalidWindow,
		},
		{
			name:        "zero limit",
			query:       Query{Page: 1, Limit: 0},
			expectedErr: ErrInvalidPagination,
		},
		{
			name:        "zero page",
			query:       Query{Page: 0, Limit: 10},
			expectedErr: ErrInvalidPagination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.Reconcile(context.Background(), tt.query)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestReconcileSourceFailureAborts(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil).AnyTimes()
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil).AnyTimes()

	report, err := service.Reconcile(context.Background(), Query{Page: 1, Limit: 10})
	assert.Error(t, err)
	assert.Nil(t, report, "no partial output on source failure")
}

func TestReconcileIdempotent(t *testing.T) {
	service, settlementRepo, orderRepo, transactionRepo := NewMock(t)

	settlementRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.SettlementRequest{
		{ID: "stl_1", Amount: dec("100.00"), Currency: "GMD", Status: domain.SettlementCompleted},
	}, 1, nil).Times(2)
	orderRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil).Times(2)
	transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ExternalTransaction{
		{ID: "txn_1", Amount: dec("5.00"), Currency: "GMD", Type: domain.TxTypeServiceFee, Status: domain.TxSuccess},
	}, 1, nil).Times(2)

	q := Query{Currency: "GMD", Page: 1, Limit: 1000}
	first, err := service.Reconcile(context.Background(), q)
	assert.NoError(t, err)
	second, err := service.Reconcile(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListTransactions(t *testing.T) {
	service, _, _, transactionRepo := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		total     int
	}{
		{
			name: "transactions found",
			mockSetup: func() {
				transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ExternalTransaction{
					{ID: "txn_1", Amount: dec("10.00"), Currency: "GMD"},
				}, 1, nil)
			},
			total: 1,
		},
		{
			name: "repo error",
			mockSetup: func() {
				transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			_, total, err := service.ListTransactions(context.Background(), domain.TransactionFilter{})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.total, total)
			}
		})
	}
}
