package service

import (
	"time"

	"github.com/farafina/backoffice/internal/handlers/auth"
	"github.com/farafina/backoffice/internal/handlers/orders"
	"github.com/farafina/backoffice/internal/handlers/reports"
	"github.com/farafina/backoffice/internal/handlers/settlements"

	pkgauth "github.com/farafina/backoffice/pkg/auth"

	"github.com/farafina/backoffice/internal/repo"
	"github.com/farafina/backoffice/internal/service/authservice"
	"github.com/farafina/backoffice/internal/service/orderservice"
	"github.com/farafina/backoffice/internal/service/reconciliationservice"
	"github.com/farafina/backoffice/internal/service/settlementservice"
)

type Services struct {
	AuthService       auth.Service
	SettlementService settlements.Service
	OrderService      orders.Service
	ReportService     reports.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, tokenTTL)
	settlementService := settlementservice.New(repo.SettlementRepo)
	orderService := orderservice.New(repo.OrderRepo)
	reportService := reconciliationservice.New(repo.SettlementRepo, repo.OrderRepo, repo.TransactionRepo)

	return &Services{
		AuthService:       authService,
		SettlementService: settlementService,
		OrderService:      orderService,
		ReportService:     reportService,
	}
}
