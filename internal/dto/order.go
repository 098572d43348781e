package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID            string          `json:"id" example:"ord_01j8"`
	OrderNumber   string          `json:"orderNumber" example:"ORD-2024-000117"`
	BuyerID       string          `json:"buyerId" example:"usr_9a1"`
	SellerID      string          `json:"sellerId" example:"usr_4f2"`
	TotalAmount   decimal.Decimal `json:"totalAmount" example:"250.00"`
	Currency      string          `json:"currency" example:"GMD"`
	Status        string          `json:"status" example:"SHIPPED"`
	PaymentStatus string          `json:"paymentStatus" example:"PAID"`
	CreatedAt     time.Time       `json:"createdAt"`
	ShippedAt     *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt   *time.Time      `json:"cancelledAt,omitempty"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" example:"SHIPPED"`
}

type UpdatePaymentStatusDTO struct {
	PaymentStatus string `json:"paymentStatus" example:"SETTLED"`
}
