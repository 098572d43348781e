package dto

import "github.com/shopspring/decimal"

type DebitsDTO struct {
	SettlementRequests decimal.Decimal `json:"settlementRequests" example:"100.00"`
	Original           decimal.Decimal `json:"original" example:"100.00"`
}

type CreditsDTO struct {
	GatewayFee decimal.Decimal `json:"gatewayFee" example:"0"`
	ServiceFee decimal.Decimal `json:"serviceFee" example:"5.00"`
}

type CurrencyGroupDTO struct {
	Currency     string          `json:"currency" example:"GMD"`
	Debits       DebitsDTO       `json:"debits"`
	Credits      CreditsDTO      `json:"credits"`
	TotalDebits  decimal.Decimal `json:"totalDebits" example:"200.00"`
	TotalCredits decimal.Decimal `json:"totalCredits" example:"5.00"`
	NetPosition  decimal.Decimal `json:"netPosition" example:"195.00"`
	Details      GroupDetailsDTO `json:"details"`
}

type GroupDetailsDTO struct {
	Settlements          []SettlementDTO  `json:"settlements"`
	Orders               []OrderDTO       `json:"orders"`
	ExternalTransactions []TransactionDTO `json:"externalTransactions"`
}

// ReconciliationPageMeta extends the common pagination block with the
// per-source totals the reconciliation report carries.
type ReconciliationPageMeta struct {
	PageMeta
	TotalSettlements  int `json:"totalSettlements" example:"40"`
	TotalOrders       int `json:"totalOrders" example:"60"`
	TotalTransactions int `json:"totalTransactions" example:"20"`
}

// ReconciliationSummaryDTO carries the home-currency headline figures.
type ReconciliationSummaryDTO struct {
	Currency     string          `json:"currency" example:"GMD"`
	TotalDebits  decimal.Decimal `json:"totalDebits" example:"200.00"`
	TotalCredits decimal.Decimal `json:"totalCredits" example:"5.00"`
	NetPosition  decimal.Decimal `json:"netPosition" example:"195.00"`
}
