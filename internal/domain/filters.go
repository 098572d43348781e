package domain

import "time"

// Window bounds a query by creation time. Nil ends are unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

func (w Window) Valid() bool {
	if w.From == nil || w.To == nil {
		return true
	}
	return !w.From.After(*w.To)
}

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type SettlementFilter struct {
	Status   string
	Channel  string
	Currency string
	Window   Window
	Page     Pagination
}

type OrderFilter struct {
	Status        string
	PaymentStatus string
	Currency      string
	OrderNumber   string
	Window        Window
	Page          Pagination
}

type TransactionFilter struct {
	Status   string
	Type     string
	Service  string
	Provider string
	Currency string
	Window   Window
	Page     Pagination
}
