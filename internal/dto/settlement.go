package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettlementDTO struct {
	ID          string          `json:"id" example:"stl_01j8"`
	UserID      string          `json:"userId" example:"usr_4f2"`
	Amount      decimal.Decimal `json:"amount" example:"1500.00"`
	Currency    string          `json:"currency" example:"GMD"`
	Channel     string          `json:"channel" example:"RIDES"`
	Status      string          `json:"status" example:"PENDING"`
	CreatedAt   time.Time       `json:"createdAt"`
	ProcessedAt *time.Time      `json:"processedAt,omitempty"`
}

type UpdateSettlementStatusDTO struct {
	Status string `json:"status" example:"PROCESSING"`
}

// PageMeta is the pagination block shared by every list endpoint.
type PageMeta struct {
	Page         int  `json:"page" example:"1"`
	Limit        int  `json:"limit" example:"50"`
	TotalRecords int  `json:"totalRecords" example:"120"`
	TotalPages   int  `json:"totalPages" example:"3"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}
