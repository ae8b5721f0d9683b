package history

import (
	"context"
	"fmt"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/persistence"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
)

// DefaultLimit applies when a history query does not set one
const DefaultLimit = 100

// Service serves read-only ledger queries
type Service struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

var _ usecase.HistoryUseCase = (*Service)(nil)

// NewService creates a history service
func NewService(uow persistence.UnitOfWork, logger coreport.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// GetTransaction returns one ledger entry
func (s *Service) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: transaction ID cannot be empty", errs.ErrInvalidRequest)
	}
	return s.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
}

// ListUserTransactions returns a user's entries newest first.
// Type and category filters combine.
func (s *Service) ListUserTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	filter, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Listing user transactions", map[string]any{
		"user_id":  userID,
		"type":     string(filter.Type),
		"category": string(filter.Category),
		"limit":    filter.Limit,
	})
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, filter)
}

// ListAllTransactions returns entries of every user; privileged actors only
func (s *Service) ListAllTransactions(ctx context.Context, actor entity.Actor, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if !actor.IsPrivileged() {
		return nil, fmt.Errorf("%w: listing all transactions requires the %s role", errs.ErrForbidden, entity.RoleSuperAdmin)
	}
	filter, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}

func normalize(filter entity.TransactionFilter) (entity.TransactionFilter, error) {
	if err := filter.Validate(); err != nil {
		return filter, err
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	return filter, nil
}
