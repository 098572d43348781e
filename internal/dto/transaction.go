package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionDTO struct {
	ID         string          `json:"id" example:"txn_01j8"`
	Amount     decimal.Decimal `json:"amount" example:"100.00"`
	Currency   string          `json:"currency" example:"GMD"`
	Type       string          `json:"type" example:"ORIGINAL"`
	Service    string          `json:"service" example:"ECOMMERCE"`
	Provider   string          `json:"provider" example:"wave"`
	Status     string          `json:"status" example:"SUCCESS"`
	OrderID    *string         `json:"orderId,omitempty"`
	RideID     *string         `json:"rideId,omitempty"`
	CustomerID string          `json:"customerId" example:"usr_9a1"`
	SellerID   string          `json:"sellerId" example:"usr_4f2"`
	CreatedAt  time.Time       `json:"createdAt"`
}
