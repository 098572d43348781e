package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/dto"
	"github.com/farafina/backoffice/internal/handlers/params"
	"github.com/farafina/backoffice/internal/service/orderservice"
	"github.com/farafina/backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const defaultLimit = 50

type Service interface {
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id, next string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id, next string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// List godoc
//
//	@Summary		List orders
//	@Description	List commerce orders filtered by status, payment status, currency, order number and date window
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status			query		string	false	"Order status"
//	@Param			paymentStatus	query		string	false	"Payment status"
//	@Param			currency		query		string	false	"Currency code"
//	@Param			orderNumber		query		string	false	"Exact order number"
//	@Param			dateFrom		query		string	false	"ISO-8601 date"
//	@Param			dateTo			query		string	false	"ISO-8601 date"
//	@Param			page			query		int		false	"Page (1-based)"
//	@Param			limit			query		int		false	"Page size"
//	@Success		200				{object}	utils.Envelope
//	@Failure		400				{object}	utils.Response	"Invalid query parameters"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
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

	filter := domain.OrderFilter{
		Status:        r.URL.Query().Get("status"),
		PaymentStatus: r.URL.Query().Get("paymentStatus"),
		Currency:      r.URL.Query().Get("currency"),
		OrderNumber:   r.URL.Query().Get("orderNumber"),
		Window:        window,
		Page:          page,
	}

	orders, total, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pageNum, limit, totalPages, hasNext, hasPrev := params.Meta(page, total)
	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    dto.NewOrderDTOs(orders),
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
//	@Summary		Transition an order
//	@Description	Move an order along its fulfilment lifecycle
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string					true	"Order ID"
//	@Param			request	body		dto.UpdateOrderStatusDTO	true	"Target status"
//	@Success		200		{object}	utils.Envelope
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/{orderID}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	var req dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.respondUpdateError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    dto.NewOrderDTO(*order),
	})
}

// UpdatePaymentStatus godoc
//
//	@Summary		Transition an order's payment status
//	@Description	Move an order's payment state (PENDING → PAID → SETTLED, FAILED, REFUNDED)
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string						true	"Order ID"
//	@Param			request	body		dto.UpdatePaymentStatusDTO	true	"Target payment status"
//	@Success		200		{object}	utils.Envelope
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/{orderID}/payment-status [patch]
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	var req dto.UpdatePaymentStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PaymentStatus == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		h.respondUpdateError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Envelope{
		Success: true,
		Data:    dto.NewOrderDTO(*order),
	})
}

func (h *OrderHandler) respondUpdateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
