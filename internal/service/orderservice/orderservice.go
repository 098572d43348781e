package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/farafina/backoffice/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order, fromStatus, fromPaymentStatus string) (bool, error)
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var statusTransitions = map[string][]string{
	domain.OrderPending:   {domain.OrderConfirmed, domain.OrderCancelled},
	domain.OrderConfirmed: {domain.OrderShipped, domain.OrderCancelled},
	domain.OrderShipped:   {domain.OrderDelivered},
}

var paymentTransitions = map[string][]string{
	domain.PaymentPending: {domain.PaymentPaid, domain.PaymentFailed},
	domain.PaymentPaid:    {domain.PaymentSettled, domain.PaymentFailed, domain.PaymentRefunded},
	domain.PaymentSettled: {domain.PaymentRefunded},
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error) {
	orders, total, err := s.repo.List(ctx, f)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus applies one fulfilment transition and stamps the
// matching timestamp (shipped/delivered/cancelled).
func (s *Service) UpdateStatus(ctx context.Context, id, next string) (*domain.Order, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowed(statusTransitions, order.Status, next) {
		return nil, ErrInvalidTransition
	}

	from, fromPayment := order.Status, order.PaymentStatus

	now := time.Now()
	order.Status = next
	switch next {
	case domain.OrderShipped:
		order.ShippedAt = &now
	case domain.OrderDelivered:
		order.DeliveredAt = &now
	case domain.OrderCancelled:
		order.CancelledAt = &now
	}

	updated, err := s.repo.Update(ctx, order, from, fromPayment)
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, ErrInvalidTransition
	}
	return order, nil
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id, next string) (*domain.Order, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowed(paymentTransitions, order.PaymentStatus, next) {
		return nil, ErrInvalidTransition
	}

	from, fromPayment := order.Status, order.PaymentStatus

	order.PaymentStatus = next
	updated, err := s.repo.Update(ctx, order, from, fromPayment)
	if err != nil {
		zap.L().Error("failed to update order payment status", zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, ErrInvalidTransition
	}
	return order, nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func allowed(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}
