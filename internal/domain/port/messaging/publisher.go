package messaging

import (
	"context"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
)

// LedgerEvent is emitted after a money movement commits
type LedgerEvent struct {
	Operation   entity.Operation
	Transaction *entity.Transaction
	Wallet      *entity.Wallet
}

// EventPublisher fans committed ledger events out to other services.
// Delivery is best effort; a failed publish never undoes a committed movement.
type EventPublisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
	Close() error
}
