package repo

import (
	"github.com/farafina/backoffice/internal/pg"
	orderrepo "github.com/farafina/backoffice/internal/repo/order-repo"
	settlementrepo "github.com/farafina/backoffice/internal/repo/settlement-repo"
	transactionrepo "github.com/farafina/backoffice/internal/repo/transaction-repo"
	userrepo "github.com/farafina/backoffice/internal/repo/user-repo"
	"github.com/farafina/backoffice/internal/service/authservice"
	"github.com/farafina/backoffice/internal/service/orderservice"
	"github.com/farafina/backoffice/internal/service/reconciliationservice"
	"github.com/farafina/backoffice/internal/service/settlementservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	SettlementRepo  settlementservice.Repo
	OrderRepo       orderservice.Repo
	TransactionRepo reconciliationservice.TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	settlementRepo := settlementrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		SettlementRepo:  settlementRepo,
		OrderRepo:       orderRepo,
		TransactionRepo: transactionRepo,
	}
}
