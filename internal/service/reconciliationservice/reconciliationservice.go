package reconciliationservice

import (
	"context"
	"errors"
	"sort"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/pkg/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SettlementRepo interface {
	List(ctx context.Context, f domain.SettlementFilter) ([]domain.SettlementRequest, int, error)
}

type OrderRepo interface {
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error)
}

type TransactionRepo interface {
	List(ctx context.Context, f domain.TransactionFilter) ([]domain.ExternalTransaction, int, error)
}

var (
	ErrInvalidWindow     = errors.New("invalid date window")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Query bounds one reconciliation run. An empty Currency means all
// currencies; nil window ends are unbounded.
type Query struct {
	Window   domain.Window
	Currency string
	Page     int
	Limit    int
}

type Debits struct {
	SettlementRequests decimal.Decimal
	Original           decimal.Decimal
}

type Credits struct {
	GatewayFee decimal.Decimal
	ServiceFee decimal.Decimal
}

type Details struct {
	Settlements  []domain.SettlementRequest
	Orders       []domain.Order
	Transactions []domain.ExternalTransaction
}

// CurrencyGroup is one currency's reconciled position. Groups are keyed
// by the raw stored currency code: blank or unknown codes form their own
// groups, nothing is folded into the home currency.
type CurrencyGroup struct {
	Currency     string
	Debits       Debits
	Credits      Credits
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	NetPosition  decimal.Decimal
	Details      Details
}

type PageInfo struct {
	Page              int
	Limit             int
	TotalSettlements  int
	TotalOrders       int
	TotalTransactions int
	TotalRecords      int
	TotalPages        int
	HasNextPage       bool
	HasPrevPage       bool
}

// Summary carries the home-currency headline figures. Zeros when the
// window produced no home-currency group.
type Summary struct {
	Currency     string
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	NetPosition  decimal.Decimal
}

type Report struct {
	Groups  []CurrencyGroup
	Pages   PageInfo
	Summary Summary
}

type Service struct {
	settlementRepo  SettlementRepo
	orderRepo       OrderRepo
	transactionRepo TransactionRepo
}

func New(settlementRepo SettlementRepo, orderRepo OrderRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		settlementRepo:  settlementRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
	}
}

// Reconcile produces the per-currency settlement position for the given
// window. The three source reads are independent and run concurrently;
// if any of them fails the whole report is abandoned.
func (s *Service) Reconcile(ctx context.Context, q Query) (*Report, error) {
	if !q.Window.Valid() {
		return nil, ErrInvalidWindow
	}
	if q.Page < 1 || q.Limit < 1 {
		return nil, ErrInvalidPagination
	}

	page := domain.Pagination{Page: q.Page, Limit: q.Limit}

	var (
		settlements     []domain.SettlementRequest
		orders          []domain.Order
		transactions    []domain.ExternalTransaction
		totalSettled    int
		totalOrders     int
		totalTransacted int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settlements, totalSettled, err = s.settlementRepo.List(gctx, domain.SettlementFilter{
			Status:   domain.SettlementCompleted,
			Currency: q.Currency,
			Window:   q.Window,
			Page:     page,
		})
		return err
	})
	g.Go(func() error {
		var err error
		orders, totalOrders, err = s.orderRepo.List(gctx, domain.OrderFilter{
			Currency: q.Currency,
			Window:   q.Window,
			Page:     page,
		})
		return err
	})
	g.Go(func() error {
		var err error
		transactions, totalTransacted, err = s.transactionRepo.List(gctx, domain.TransactionFilter{
			Status:   domain.TxSuccess,
			Currency: q.Currency,
			Window:   q.Window,
			Page:     page,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("reconciliation source fetch failed", zap.Error(err))
		return nil, err
	}

	groups := groupByCurrency(settlements, orders, transactions)

	report := &Report{
		Groups:  groups,
		Pages:   pageInfo(q, totalSettled, totalOrders, totalTransacted),
		Summary: summarize(groups),
	}
	return report, nil
}

// ListTransactions is the admin browsing view over the gateway feed.
func (s *Service) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.ExternalTransaction, int, error) {
	transactions, total, err := s.transactionRepo.List(ctx, f)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}

func groupByCurrency(settlements []domain.SettlementRequest, orders []domain.Order, transactions []domain.ExternalTransaction) []CurrencyGroup {
	acc := make(map[string]*CurrencyGroup)

	group := func(currency string) *CurrencyGroup {
		if g, ok := acc[currency]; ok {
			return g
		}
		g := &CurrencyGroup{Currency: currency}
		acc[currency] = g
		return g
	}

	for _, s := range settlements {
		g := group(s.Currency)
		g.Debits.SettlementRequests = g.Debits.SettlementRequests.Add(s.Amount)
		g.Details.Settlements = append(g.Details.Settlements, s)
	}

	// Orders are contextual detail only: they open a group and show up
	// in it, but their amounts stay out of the debit/credit buckets.
	for _, o := range orders {
		g := group(o.Currency)
		g.Details.Orders = append(g.Details.Orders, o)
	}

	for _, t := range transactions {
		g := group(t.Currency)
		switch t.Type {
		case domain.TxTypeOriginal:
			g.Debits.Original = g.Debits.Original.Add(t.Amount)
		case domain.TxTypeFee:
			g.Credits.GatewayFee = g.Credits.GatewayFee.Add(t.Amount)
		case domain.TxTypeServiceFee:
			g.Credits.ServiceFee = g.Credits.ServiceFee.Add(t.Amount)
		default:
			// unmodeled type: listed in the detail, counted nowhere
		}
		g.Details.Transactions = append(g.Details.Transactions, t)
	}

	currencies := make([]string, 0, len(acc))
	for currency := range acc {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	groups := make([]CurrencyGroup, 0, len(currencies))
	for _, currency := range currencies {
		g := acc[currency]
		g.TotalDebits = g.Debits.SettlementRequests.Add(g.Debits.Original)
		g.TotalCredits = g.Credits.GatewayFee.Add(g.Credits.ServiceFee)
		g.NetPosition = g.TotalDebits.Sub(g.TotalCredits)
		groups = append(groups, *g)
	}
	return groups
}

func pageInfo(q Query, totalSettlements, totalOrders, totalTransactions int) PageInfo {
	totalRecords := totalSettlements + totalOrders + totalTransactions
	totalPages := (totalRecords + q.Limit - 1) / q.Limit

	return PageInfo{
		Page:              q.Page,
		Limit:             q.Limit,
		TotalSettlements:  totalSettlements,
		TotalOrders:       totalOrders,
		TotalTransactions: totalTransactions,
		TotalRecords:      totalRecords,
		TotalPages:        totalPages,
		HasNextPage:       q.Page < totalPages,
		HasPrevPage:       q.Page > 1 && totalRecords > 0,
	}
}

func summarize(groups []CurrencyGroup) Summary {
	summary := Summary{Currency: money.HomeCurrency}
	for _, g := range groups {
		if g.Currency == money.HomeCurrency {
			summary.TotalDebits = g.TotalDebits
			summary.TotalCredits = g.TotalCredits
			summary.NetPosition = g.NetPosition
			break
		}
	}
	return summary
}
