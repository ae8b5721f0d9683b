package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/messaging"
)

// RedisConfig configures the Redis connection used for ledger events
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// ledgerEventMessage is the JSON wire form of a committed ledger event
type ledgerEventMessage struct {
	Operation     string          `json:"operation"`
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        json.Number     `json:"amount"`
	BalanceAfter  json.Number     `json:"balance_after"`
	Description   string          `json:"description"`
	Timestamp     time.Time       `json:"timestamp"`
	Wallet        *walletSnapshot `json:"wallet,omitempty"`
}

type walletSnapshot struct {
	Balance        json.Number `json:"balance"`
	LockedAmount   json.Number `json:"locked_amount"`
	EscrowedAmount json.Number `json:"escrowed_amount"`
	TotalInvested  json.Number `json:"total_invested"`
	TotalReturns   json.Number `json:"total_returns"`
}

// RedisPublisher publishes committed ledger events on a Redis pub/sub channel
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
	logger  coreport.Logger
}

var _ messaging.EventPublisher = (*RedisPublisher)(nil)

// ConnectRedis opens a client and checks it with PING
func ConnectRedis(ctx context.Context, cfg RedisConfig) (redis.UniversalClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		MaxRetries:   1,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisPublisher creates a publisher on an existing client
func NewRedisPublisher(client redis.UniversalClient, channel string, logger coreport.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// Publish sends the event as JSON on the configured channel
func (p *RedisPublisher) Publish(ctx context.Context, event messaging.LedgerEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("encode ledger event: %w", err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("publish ledger event to %s: %w", p.channel, err)
	}

	p.logger.Debug("Ledger event published", map[string]any{
		"channel":        p.channel,
		"transaction_id": event.Transaction.ID,
		"receivers":      receivers,
	})
	return nil
}

// Close closes the Redis client
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func toMessage(event messaging.LedgerEvent) ledgerEventMessage {
	txn := event.Transaction
	msg := ledgerEventMessage{
		Operation:     string(event.Operation),
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Category:      string(txn.Category),
		Amount:        json.Number(txn.Amount.String()),
		BalanceAfter:  json.Number(txn.BalanceAfter.String()),
		Description:   txn.Description,
		Timestamp:     txn.Timestamp.UTC(),
	}
	if w := event.Wallet; w != nil {
		msg.Wallet = &walletSnapshot{
			Balance:        json.Number(w.Balance.String()),
			LockedAmount:   json.Number(w.LockedAmount.String()),
			EscrowedAmount: json.Number(w.EscrowedAmount.String()),
			TotalInvested:  json.Number(w.TotalInvested.String()),
			TotalReturns:   json.Number(w.TotalReturns.String()),
		}
	}
	return msg
}
