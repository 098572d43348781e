package dto

import "github.com/farafina/backoffice/internal/domain"

// Mapping keeps stored values as-is, currency codes included. Endpoints
// that want the home-currency fallback apply money.OrFallback on top.

func NewSettlementDTO(s domain.SettlementRequest) SettlementDTO {
	return SettlementDTO{
		ID:          s.ID,
		UserID:      s.UserID,
		Amount:      s.Amount,
		Currency:    s.Currency,
		Channel:     s.Channel,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		ProcessedAt: s.ProcessedAt,
	}
}

func NewSettlementDTOs(settlements []domain.SettlementRequest) []SettlementDTO {
	out := make([]SettlementDTO, len(settlements))
	for i, s := range settlements {
		out[i] = NewSettlementDTO(s)
	}
	return out
}

func NewOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		BuyerID:       o.BuyerID,
		SellerID:      o.SellerID,
		TotalAmount:   o.TotalAmount,
		Currency:      o.Currency,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
	}
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, len(orders))
	for i, o := range orders {
		out[i] = NewOrderDTO(o)
	}
	return out
}

func NewTransactionDTO(t domain.ExternalTransaction) TransactionDTO {
	return TransactionDTO{
		ID:         t.ID,
		Amount:     t.Amount,
		Currency:   t.Currency,
		Type:       t.Type,
		Service:    t.Service,
		Provider:   t.Provider,
		Status:     t.Status,
		OrderID:    t.OrderID,
		RideID:     t.RideID,
		CustomerID: t.CustomerID,
		SellerID:   t.SellerID,
		CreatedAt:  t.CreatedAt,
	}
}

func NewTransactionDTOs(transactions []domain.ExternalTransaction) []TransactionDTO {
	out := make([]TransactionDTO, len(transactions))
	for i, t := range transactions {
		out[i] = NewTransactionDTO(t)
	}
	return out
}
