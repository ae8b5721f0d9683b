package messaging

import (
	"context"

	"github.com/logifin/wallet-ledger/internal/domain/port/messaging"
)

// NoopPublisher drops every event. Used when Redis is disabled.
type NoopPublisher struct{}

var _ messaging.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, messaging.LedgerEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
