package persistence

import (
	"context"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
)

// TransactionRepository is the append-only ledger of money movements.
// There is deliberately no Update or Delete.
type TransactionRepository interface {
	// Create appends a ledger entry
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the insert fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a ledger entry by its identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no entry has the given ID
	// - ErrStoreUnavailable: If the query fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListByUser returns a user's entries newest first, narrowed by the filter
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the query fails
	ListByUser(ctx context.Context, userID string, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// List returns entries of all users newest first, narrowed by the filter
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the query fails
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)
}
