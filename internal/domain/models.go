package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin      = "ADMIN"
	RoleFinance    = "FINANCE"
	RoleSuperAdmin = "SUPERADMIN"
)

type AdminUser struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	ChannelRides     = "RIDES"
	ChannelEcommerce = "ECOMMERCE"
)

const (
	SettlementPending    = "PENDING"
	SettlementProcessing = "PROCESSING"
	SettlementCompleted  = "COMPLETED"
	SettlementFailed     = "FAILED"
	SettlementCancelled  = "CANCELLED"
)

// SettlementRequest is a seller's or driver's request to withdraw
// accumulated earnings through one of the business channels.
type SettlementRequest struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Channel     string          `db:"channel"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	ProcessedAt *time.Time      `db:"processed_at"`
}

const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentSettled  = "SETTLED"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

type Order struct {
	ID            string          `db:"id"`
	OrderNumber   string          `db:"order_number"`
	BuyerID       string          `db:"buyer_id"`
	SellerID      string          `db:"seller_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Currency      string          `db:"currency"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	CreatedAt     time.Time       `db:"created_at"`
	ShippedAt     *time.Time      `db:"shipped_at"`
	DeliveredAt   *time.Time      `db:"delivered_at"`
	CancelledAt   *time.Time      `db:"cancelled_at"`
}

const (
	TxTypeOriginal   = "ORIGINAL"
	TxTypeFee        = "FEE"
	TxTypeServiceFee = "SERVICE_FEE"
)

const (
	TxSuccess = "SUCCESS"
	TxPending = "PENDING"
	TxFailed  = "FAILED"
)

// ExternalTransaction is a gateway-level money movement record. The
// payment subsystem writes these; the back office only reads them.
// Type is an open set: values outside the known constants are kept as-is.
type ExternalTransaction struct {
	ID         string          `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	Type       string          `db:"type"`
	Service    string          `db:"service"`
	Provider   string          `db:"provider"`
	Status     string          `db:"status"`
	OrderID    *string         `db:"order_id"`
	RideID     *string         `db:"ride_id"`
	CustomerID string          `db:"customer_id"`
	SellerID   string          `db:"seller_id"`
	CreatedAt  time.Time       `db:"created_at"`
}
