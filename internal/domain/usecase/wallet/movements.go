package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/domain/port/messaging"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
)

// AddMoney credits the balance
func (s *Service) AddMoney(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpDeposit, amount, decimal.Zero, "")
}

// Withdraw debits the balance
func (s *Service) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpWithdraw, amount, decimal.Zero, "")
}

// MoveToEscrow moves funds from balance to escrow
func (s *Service) MoveToEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpMoveToEscrow, amount, decimal.Zero, "")
}

// Invest moves funds from escrow to invested
func (s *Service) Invest(ctx context.Context, userID string, amount decimal.Decimal, tripID string) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpInvest, amount, decimal.Zero, tripID)
}

// ReturnInvestment credits principal plus returns and releases the principal from invested
func (s *Service) ReturnInvestment(ctx context.Context, userID string, principal, returns decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpSettle, principal, returns, "")
}

// ReleaseEscrow moves escrowed funds back to the balance
func (s *Service) ReleaseEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpReleaseEscrow, amount, decimal.Zero, "")
}

// WithdrawFromEscrow pays escrowed funds out of the wallet
func (s *Service) WithdrawFromEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error) {
	return s.move(ctx, userID, entity.OpEscrowWithdrawal, amount, decimal.Zero, "")
}

// move validates the input, then runs the movement through the user's queue
// as one retried unit of work
func (s *Service) move(
	ctx context.Context,
	userID string,
	op entity.Operation,
	amount, returns decimal.Decimal,
	tripID string,
) (*usecase.MovementResult, error) {
	start := s.timeProvider.Now()

	movement, err := buildMovement(userID, op, amount, returns, tripID)
	if err != nil {
		s.observe(string(op), start, err)
		return nil, errs.NewOperationError(string(op), userID, amount.StringFixed(entity.MaxDecimalPlaces), err)
	}

	var result *usecase.MovementResult
	err = s.sequencer.Submit(ctx, userID, func(ctx context.Context) error {
		return s.retrier.do(ctx, string(op), func() error {
			r, err := s.moveOnce(ctx, userID, movement)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
	})
	s.observe(string(op), start, err)

	if err != nil {
		opErr := &errs.OperationError{
			Operation: string(op),
			UserID:    userID,
			Amount:    movement.Amount.String(),
			Err:       err,
		}
		if isRejection(err) {
			s.logger.Warn("Wallet operation rejected", opErr.LogFields())
		} else {
			s.logger.Error("Wallet operation failed", opErr.LogFields())
		}
		return nil, opErr
	}

	s.logger.Info("Wallet operation committed", map[string]any{
		"operation":      string(op),
		"user_id":        userID,
		"transaction_id": result.Transaction.ID,
		"amount":         result.Transaction.Amount.String(),
		"balance_after":  result.Transaction.BalanceAfter.String(),
	})

	s.publish(ctx, op, result)
	return result, nil
}

// moveOnce is a single attempt: lock the row, apply, write the row and the
// ledger entry, commit
func (s *Service) moveOnce(ctx context.Context, userID string, movement entity.Movement) (*usecase.MovementResult, error) {
	var result *usecase.MovementResult
	err := s.inUnitOfWork(ctx, func(txCtx context.Context) error {
		wallets := s.uow.GetWalletRepository(txCtx)
		if err := s.provision(txCtx, wallets, userID); err != nil {
			return err
		}

		wallet, err := wallets.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		draft, err := wallet.Execute(movement, s.config.Policy, now)
		if err != nil {
			return err
		}
		if err := wallet.CheckInvariants(); err != nil {
			return err
		}

		if err := wallets.UpdateBuckets(txCtx, wallet); err != nil {
			return err
		}

		id, err := s.ids.Next(now)
		if err != nil {
			return fmt.Errorf("%w: generate transaction id: %s", errs.ErrInternal, err.Error())
		}
		txn, err := entity.NewTransaction(id, userID, draft, now)
		if err != nil {
			return err
		}
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		result = &usecase.MovementResult{Wallet: wallet, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// publish announces a committed movement; failures are logged and counted only
func (s *Service) publish(ctx context.Context, op entity.Operation, result *usecase.MovementResult) {
	if s.publisher == nil {
		return
	}

	event := messaging.LedgerEvent{
		Operation:   op,
		Transaction: result.Transaction,
		Wallet:      result.Wallet.Clone(),
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.metrics.IncPublishFailure()
		s.logger.Warn("Failed to publish ledger event", map[string]any{
			"operation":      string(op),
			"transaction_id": result.Transaction.ID,
			"error":          err.Error(),
		})
	}
}

func buildMovement(userID string, op entity.Operation, amount, returns decimal.Decimal, tripID string) (entity.Movement, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return entity.Movement{}, err
	}

	amt, err := entity.ValidateAmount(amount)
	if err != nil {
		return entity.Movement{}, err
	}

	movement := entity.Movement{Operation: op, Amount: amt, TripID: tripID}
	if op == entity.OpSettle {
		ret, err := entity.NewMoney(returns)
		if err != nil {
			return entity.Movement{}, err
		}
		if ret.IsNegative() {
			return entity.Movement{}, fmt.Errorf("%w: returns cannot be negative", errs.ErrInvalidAmount)
		}
		movement.Returns = ret
	}
	return movement, nil
}

// isRejection reports failures caused by the request or its caller rather than the system
func isRejection(err error) bool {
	return errs.IsInsufficientError(err) ||
		errs.IsCanceled(err) ||
		errors.Is(err, errs.ErrInvalidAmount) ||
		errors.Is(err, errs.ErrInvalidUserID) ||
		errors.Is(err, errs.ErrInvalidRequest) ||
		errors.Is(err, errs.ErrForbidden) ||
		errs.IsNotFoundError(err)
}
