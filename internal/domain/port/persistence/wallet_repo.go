package persistence

import (
	"context"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
)

// WalletRepository reads and writes wallet rows
type WalletRepository interface {
	// CreateIfAbsent inserts the wallet unless a row for the same user exists.
	// It reports whether this call created the row.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the insert fails
	CreateIfAbsent(ctx context.Context, wallet *entity.Wallet) (bool, error)

	// Get reads a wallet without locking it
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrStoreUnavailable: If the query fails
	Get(ctx context.Context, userID string) (*entity.Wallet, error)

	// GetForUpdate reads a wallet and holds an exclusive row lock until the
	// surrounding unit of work ends
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrWalletBusy: If the row lock could not be acquired
	// - ErrStoreUnavailable: If the query fails
	GetForUpdate(ctx context.Context, userID string) (*entity.Wallet, error)

	// UpdateBuckets persists every bucket of the wallet
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrStoreUnavailable: If the update fails
	UpdateBuckets(ctx context.Context, wallet *entity.Wallet) error
}
