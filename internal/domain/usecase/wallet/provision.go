package wallet

import (
	"context"
	"time"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/persistence"
)

// GetOrCreateWallet returns the user's wallet, inserting it with the initial
// balance on first access. Concurrent first accesses create exactly one row.
func (s *Service) GetOrCreateWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	start := s.timeProvider.Now()
	var wallet *entity.Wallet
	err := s.retrier.do(ctx, "get_wallet", func() error {
		return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
			repo := s.uow.GetWalletRepository(txCtx)
			if err := s.provision(txCtx, repo, userID); err != nil {
				return err
			}
			w, err := repo.Get(txCtx, userID)
			if err != nil {
				return err
			}
			wallet = w
			return nil
		})
	})
	s.observe("get_wallet", start, err)
	if err != nil {
		s.logger.Error("Failed to get wallet", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return wallet, nil
}

// provision inserts the wallet row unless it already exists
func (s *Service) provision(ctx context.Context, repo persistence.WalletRepository, userID string) error {
	wallet, err := entity.NewWallet(userID, s.config.InitialBalance, s.timeProvider.Now())
	if err != nil {
		return err
	}

	created, err := repo.CreateIfAbsent(ctx, wallet)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("Wallet provisioned", map[string]any{
			"user_id":         userID,
			"initial_balance": s.config.InitialBalance.String(),
		})
	}
	return nil
}

func (s *Service) observe(operation string, start time.Time, err error) {
	outcome := coreport.OutcomeSuccess
	switch {
	case err == nil:
	case isRejection(err):
		outcome = coreport.OutcomeRejected
	default:
		outcome = coreport.OutcomeError
	}
	s.metrics.ObserveOperation(operation, outcome, s.timeProvider.Since(start))
}
