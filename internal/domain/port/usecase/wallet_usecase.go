package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
)

// MovementResult is the outcome of a committed money movement
type MovementResult struct {
	Wallet      *entity.Wallet
	Transaction *entity.Transaction
}

// WalletUseCase defines the money-movement operations on a user's wallet.
// Each movement runs as one unit of work and appends exactly one ledger entry.
type WalletUseCase interface {
	// GetOrCreateWallet returns the user's wallet, provisioning it with the
	// initial balance on first access
	GetOrCreateWallet(ctx context.Context, userID string) (*entity.Wallet, error)

	// AddMoney credits the balance
	AddMoney(ctx context.Context, userID string, amount decimal.Decimal) (*MovementResult, error)

	// Withdraw debits the balance
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*MovementResult, error)

	// MoveToEscrow moves funds from balance to escrow
	MoveToEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*MovementResult, error)

	// Invest moves funds from escrow to invested; tripID only feeds the description
	Invest(ctx context.Context, userID string, amount decimal.Decimal, tripID string) (*MovementResult, error)

	// ReturnInvestment settles an investment, crediting principal plus returns
	ReturnInvestment(ctx context.Context, userID string, principal, returns decimal.Decimal) (*MovementResult, error)

	// ReleaseEscrow moves escrowed funds back to the balance
	ReleaseEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*MovementResult, error)

	// WithdrawFromEscrow pays escrowed funds out of the wallet
	WithdrawFromEscrow(ctx context.Context, userID string, amount decimal.Decimal) (*MovementResult, error)

	// AdminUpdate overwrites wallet buckets without writing a ledger entry.
	// Only privileged actors may call it.
	AdminUpdate(ctx context.Context, actor entity.Actor, userID string, delta entity.WalletDelta) (*entity.Wallet, error)
}

// HistoryUseCase defines read access to the ledger
type HistoryUseCase interface {
	// GetTransaction returns one ledger entry
	GetTransaction(ctx context.Context, id string) (*entity.Transaction, error)

	// ListUserTransactions returns a user's entries newest first
	ListUserTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// ListAllTransactions returns entries of every user newest first; privileged actors only
	ListAllTransactions(ctx context.Context, actor entity.Actor, filter entity.TransactionFilter) ([]*entity.Transaction, error)
}
