package settlementservice

import (
	"context"
	"errors"
	"time"

	"github.com/farafina/backoffice/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, f domain.SettlementFilter) ([]domain.SettlementRequest, int, error)
	GetByID(ctx context.Context, id string) (*domain.SettlementRequest, error)
	UpdateStatus(ctx context.Context, id, from, to string, processedAt *time.Time) (bool, error)
}

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrSettlementFinal    = errors.New("settlement is final")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// transitions is the settlement lifecycle: PENDING may start processing
// or be cancelled, PROCESSING resolves to COMPLETED or FAILED. Every
// other status is terminal.
var transitions = map[string][]string{
	domain.SettlementPending:    {domain.SettlementProcessing, domain.SettlementCancelled},
	domain.SettlementProcessing: {domain.SettlementCompleted, domain.SettlementFailed},
}

func terminal(status string) bool {
	switch status {
	case domain.SettlementCompleted, domain.SettlementFailed, domain.SettlementCancelled:
		return true
	}
	return false
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, f domain.SettlementFilter) ([]domain.SettlementRequest, int, error) {
	settlements, total, err := s.repo.List(ctx, f)
	if err != nil {
		zap.L().Error("failed to list settlements", zap.Error(err))
		return nil, 0, err
	}
	return settlements, total, nil
}

// UpdateStatus applies one lifecycle transition. Terminal settlements
// are immutable; an out-of-order transition is rejected before any
// write.
func (s *Service) UpdateStatus(ctx context.Context, id, next string) (*domain.SettlementRequest, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get settlement", zap.Error(err))
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	if terminal(settlement.Status) {
		return nil, ErrSettlementFinal
	}
	if !allowed(settlement.Status, next) {
		return nil, ErrInvalidTransition
	}

	var processedAt *time.Time
	if terminal(next) {
		now := time.Now()
		processedAt = &now
	} else {
		processedAt = settlement.ProcessedAt
	}

	updated, err := s.repo.UpdateStatus(ctx, id, settlement.Status, next, processedAt)
	if err != nil {
		zap.L().Error("failed to update settlement status", zap.Error(err))
		return nil, err
	}
	if !updated {
		// someone moved it first
		return nil, ErrInvalidTransition
	}

	settlement.Status = next
	settlement.ProcessedAt = processedAt
	return settlement, nil
}

func allowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
