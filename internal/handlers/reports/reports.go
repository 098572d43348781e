package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/dto"
	"github.com/farafina/backoffice/internal/handlers/params"
	"github.com/farafina/backoffice/internal/metrics"
	"github.com/farafina/backoffice/internal/service/reconciliationservice"
	"github.com/farafina/backoffice/pkg/utils"
)

const (
	defaultReportLimit = 1000
	defaultListLimit   = 50
)

type Service interface {
	Reconcile(ctx context.Context, q reconciliationservice.Query) (*reconciliationservice.Report, error)
	ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.ExternalTransaction, int, error)
}

type ReportHandler struct {
	reportService Service
	reportLimit   int
}

func New(reportService Service, reportLimit int) *ReportHandler {
	if reportLimit <= 0 {
		reportLimit = defaultReportLimit
	}
	return &ReportHandler{
		reportService: reportService,
		reportLimit:   reportLimit,
	}
}

// Reconciliation godoc
//
//	@Summary		Settlement reconciliation report
//	@Description	Per-currency reconciliation of completed settlements, orders and successful gateway transactions for a date window
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			dateFrom	query		string	false	"ISO-8601 date"
//	@Param			dateTo		query		string	false	"ISO-8601 date"
//	@Param			currency	query		string	false	"Restrict to one currency code"
//	@Param			page		query		int		false	"Page over the detail lists (1-based)"
//	@Param			limit		query		int		false	"Page size, defaults to the configured report limit"
//	@Success		200			{object}	utils.Envelope
//	@Failure		400			{object}	utils.Response	"Invalid query parameters"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reports/reconciliation [get]
func (h *ReportHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	window, err := params.Window(r)
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues("invalid").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := params.Page(r, h.reportLimit)
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues("invalid").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := reconciliationservice.Query{
		Window:   window,
		Currency: r.URL.Query().Get("currency"),
		Page:     page.Page,
		Limit:    page.Limit,
	}

	report, err := h.reportService.Reconcile(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, reconciliationservice.ErrInvalidWindow),
			errors.Is(err, reconciliationservice.ErrInvalidPagination):
			metrics.ReconciliationsTotal.WithLabelValues("invalid").Inc()
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			metrics.ReconciliationsTotal.WithLabelValues("error").Inc()
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.ReconciliationsTotal.WithLabelValues("ok").Inc()
	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    newGroupDTOs(report.Groups),
		Meta: dto.ReconciliationPageMeta{
			PageMeta: dto.PageMeta{
				Page:         report.Pages.Page,
				Limit:        report.Pages.Limit,
				TotalRecords: report.Pages.TotalRecords,
				TotalPages:   report.Pages.TotalPages,
				HasNextPage:  report.Pages.HasNextPage,
				HasPrevPage:  report.Pages.HasPrevPage,
			},
			TotalSettlements:  report.Pages.TotalSettlements,
			TotalOrders:       report.Pages.TotalOrders,
			TotalTransactions: report.Pages.TotalTransactions,
		},
		Summary: dto.ReconciliationSummaryDTO{
			Currency:     report.Summary.Currency,
			TotalDebits:  report.Summary.TotalDebits,
			TotalCredits: report.Summary.TotalCredits,
			NetPosition:  report.Summary.NetPosition,
		},
	})
}

// Transactions godoc
//
//	@Summary		Browse gateway transactions
//	@Description	List external payment-gateway transactions with filters. Read-only.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"SUCCESS, PENDING or FAILED"
//	@Param			type		query		string	false	"Transaction type"
//	@Param			service		query		string	false	"RIDES or ECOMMERCE"
//	@Param			provider	query		string	false	"Gateway provider"
//	@Param			currency	query		string	false	"Currency code"
//	@Param			dateFrom	query		string	false	"ISO-8601 date"
//	@Param			dateTo		query		string	false	"ISO-8601 date"
//	@Param			page		query		int		false	"Page (1-based)"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200			{object}	utils.Envelope
//	@Failure		400			{object}	utils.Response	"Invalid query parameters"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions [get]
func (h *ReportHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	window, err := params.Window(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := params.Page(r, defaultListLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := domain.TransactionFilter{
		Status:   r.URL.Query().Get("status"),
		Type:     r.URL.Query().Get("type"),
		Service:  r.URL.Query().Get("service"),
		Provider: r.URL.Query().Get("provider"),
		Currency: r.URL.Query().Get("currency"),
		Window:   window,
		Page:     page,
	}

	transactions, total, err := h.reportService.ListTransactions(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pageNum, limit, totalPages, hasNext, hasPrev := params.Meta(page, total)
	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    dto.NewTransactionDTOs(transactions),
		Meta: dto.PageMeta{
			Page:         pageNum,
			Limit:        limit,
			TotalRecords: total,
			TotalPages:   totalPages,
			HasNextPage:  hasNext,
			HasPrevPage:  hasPrev,
		},
	})
}

func newGroupDTOs(groups []reconciliationservice.CurrencyGroup) []dto.CurrencyGroupDTO {
	out := make([]dto.CurrencyGroupDTO, len(groups))
	for i, g := range groups {
		out[i] = dto.CurrencyGroupDTO{
			Currency: g.Currency,
			Debits: dto.DebitsDTO{
				SettlementRequests: g.Debits.SettlementRequests,
				Original:           g.Debits.Original,
			},
			Credits: dto.CreditsDTO{
				GatewayFee: g.Credits.GatewayFee,
				ServiceFee: g.Credits.ServiceFee,
			},
			TotalDebits:  g.TotalDebits,
			TotalCredits: g.TotalCredits,
			NetPosition:  g.NetPosition,
			Details: dto.GroupDetailsDTO{
				Settlements:          dto.NewSettlementDTOs(g.Details.Settlements),
				Orders:               dto.NewOrderDTOs(g.Details.Orders),
				ExternalTransactions: dto.NewTransactionDTOs(g.Details.Transactions),
			},
		}
	}
	return out
}
