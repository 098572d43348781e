package settlements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/dto"
	"github.com/farafina/backoffice/internal/handlers/params"
	"github.com/farafina/backoffice/internal/service/settlementservice"
	"github.com/farafina/backoffice/pkg/money"
	"github.com/farafina/backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const defaultLimit = 50

type Service interface {
	List(ctx context.Context, f domain.SettlementFilter) ([]domain.SettlementRequest, int, error)
	UpdateStatus(ctx context.Context, id, next string) (*domain.SettlementRequest, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// List godoc
//
//	@Summary		List settlement requests
//	@Description	List settlement requests filtered by status, channel, currency and date window
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"Lifecycle status"
//	@Param			channel		query		string	false	"RIDES or ECOMMERCE"
//	@Param			currency	query		string	false	"Currency code"
//	@Param			dateFrom	query		string	false	"ISO-8601 date"
//	@Param			dateTo		query		string	false	"ISO-8601 date"
//	@Param			page		query		int		false	"Page (1-based)"
//	@Param			limit		query		int		false	"Page size"
//	@Success		200			{object}	utils.Envelope
//	@Failure		400			{object}	utils.Response	"Invalid query parameters"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settlements [get]
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	window, err := params.Window(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := params.Page(r, defaultLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := domain.SettlementFilter{
		Status:   r.URL.Query().Get("status"),
		Channel:  r.URL.Query().Get("channel"),
		Currency: r.URL.Query().Get("currency"),
		Window:   window,
		Page:     page,
	}

	settlements, total, err := h.settlementService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	data := dto.NewSettlementDTOs(settlements)
	for i := range data {
		data[i].Currency = money.OrFallback(data[i].Currency)
	}

	pageNum, limit, totalPages, hasNext, hasPrev := params.Meta(page, total)
	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    data,
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

// UpdateStatus godoc
//
//	@Summary		Transition a settlement request
//	@Description	Move a settlement request along its lifecycle (PENDING → PROCESSING → COMPLETED/FAILED, or CANCELLED)
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			settlementID	path		string							true	"Settlement ID"
//	@Param			request			body		dto.UpdateSettlementStatusDTO	true	"Target status"
//	@Success		200				{object}	utils.Envelope
//	@Failure		400				{object}	utils.Response	"Invalid request body"
//	@Failure		404				{object}	utils.Response	"Settlement not found"
//	@Failure		409				{object}	utils.Response	"Invalid transition"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settlements/{settlementID}/status [patch]
func (h *SettlementHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "settlementID")

	var req dto.UpdateSettlementStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settlement, err := h.settlementService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrSettlementNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrSettlementFinal),
			errors.Is(err, settlementservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    dto.NewSettlementDTO(*settlement),
	})
}
