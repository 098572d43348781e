package handlers

import (
	"net/http"

	_ "github.com/farafina/backoffice/docs"
	"github.com/farafina/backoffice/internal/config"
	"github.com/farafina/backoffice/internal/domain"
	authhandlers "github.com/farafina/backoffice/internal/handlers/auth"
	ordershandlers "github.com/farafina/backoffice/internal/handlers/orders"
	reportshandlers "github.com/farafina/backoffice/internal/handlers/reports"
	settlementshandlers "github.com/farafina/backoffice/internal/handlers/settlements"
	"github.com/farafina/backoffice/internal/metrics"
	"github.com/farafina/backoffice/internal/service"
	pkgauth "github.com/farafina/backoffice/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Reconciliation(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	SettlementHandler SettlementHandler
	OrderHandler      OrderHandler
	ReportHandler     ReportHandler

	cfg *config.Config
	mw  *pkgauth.Middleware
}

func New(cfg *config.Config, s *service.Services, mw *pkgauth.Middleware) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		SettlementHandler: settlementshandlers.New(s.SettlementService),
		OrderHandler:      ordershandlers.New(s.OrderService),
		ReportHandler:     reportshandlers.New(s.ReportService, cfg.ReportLimit),
		cfg:               cfg,
		mw:                mw,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(h.cfg.QueryTimeout),
		metrics.HTTPMetrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.mw.Authenticate)

			r.Group(func(r chi.Router) {
				r.Use(h.mw.RequireRole(domain.RoleSuperAdmin))
				r.Post("/auth/register", h.AuthHandler.Register)
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.SettlementHandler.List)
				r.Patch("/{settlementID}/status", h.SettlementHandler.UpdateStatus)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.List)
				r.Patch("/{orderID}/status", h.OrderHandler.UpdateStatus)
				r.Patch("/{orderID}/payment-status", h.OrderHandler.UpdatePaymentStatus)
			})
			r.Get("/transactions", h.ReportHandler.Transactions)

			r.Group(func(r chi.Router) {
				r.Use(h.mw.RequireRole(domain.RoleFinance, domain.RoleSuperAdmin))
				r.Get("/reports/reconciliation", h.ReportHandler.Reconciliation)
			})
		})
	})

	return r
}
