package wallet

import (
	"context"
	"fmt"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// AdminUpdate overwrites the buckets present in delta. It is an escape hatch
// for operators: no conservation check runs and no ledger entry is written,
// so it is restricted to privileged actors and always logged.
func (s *Service) AdminUpdate(ctx context.Context, actor entity.Actor, userID string, delta entity.WalletDelta) (*entity.Wallet, error) {
	start := s.timeProvider.Now()
	const operation = string(entity.OpAdminUpdate)

	if !actor.IsPrivileged() {
		s.logger.Warn("Unprivileged admin wallet update refused", map[string]any{
			"actor_id":   actor.ID,
			"actor_role": actor.Role,
			"user_id":    userID,
		})
		s.observe(operation, start, errs.ErrForbidden)
		return nil, fmt.Errorf("%w: wallet bucket updates require the %s role", errs.ErrForbidden, entity.RoleSuperAdmin)
	}
	if err := entity.ValidateUserID(userID); err != nil {
		s.observe(operation, start, err)
		return nil, err
	}
	if err := delta.Validate(); err != nil {
		s.observe(operation, start, err)
		return nil, err
	}

	var wallet *entity.Wallet
	err := s.sequencer.Submit(ctx, userID, func(ctx context.Context) error {
		return s.retrier.do(ctx, operation, func() error {
			return s.inUnitOfWork(ctx, func(txCtx context.Context) error {
				wallets := s.uow.GetWalletRepository(txCtx)
				w, err := wallets.GetForUpdate(txCtx, userID)
				if err != nil {
					return err
				}
				if err := w.Apply(delta, s.timeProvider.Now()); err != nil {
					return err
				}
				if err := wallets.UpdateBuckets(txCtx, w); err != nil {
					return err
				}
				wallet = w
				return nil
			})
		})
	})
	s.observe(operation, start, err)
	if err != nil {
		s.logger.Error("Admin wallet update failed", map[string]any{
			"actor_id": actor.ID,
			"user_id":  userID,
			"error":    err.Error(),
		})
		return nil, err
	}

	fields := map[string]any{
		"actor_id": actor.ID,
		"user_id":  userID,
	}
	for name, value := range delta.Fields() {
		fields[name] = value.String()
	}
	s.logger.Warn("Wallet buckets overwritten by administrator", fields)

	return wallet, nil
}
