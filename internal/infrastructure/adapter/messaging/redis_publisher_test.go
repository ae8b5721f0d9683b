package messaging

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	"github.com/logifin/wallet-ledger/internal/domain/port/messaging"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/logger"
)

// unreachableAddr is a local port nothing listens on
const unreachableAddr = "127.0.0.1:1"

func sampleEvent(t *testing.T) messaging.LedgerEvent {
	t.Helper()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	wallet, err := entity.NewWallet("user-1", entity.MustMoney("500000"), now)
	require.NoError(t, err)
	draft, err := wallet.Execute(entity.Movement{Operation: entity.OpWithdraw, Amount: entity.MustMoney("25")},
		entity.MovementPolicy{}, now)
	require.NoError(t, err)
	txn, err := entity.NewTransaction("txn-2", "user-1", draft, now)
	require.NoError(t, err)
	return messaging.LedgerEvent{Operation: entity.OpWithdraw, Transaction: txn, Wallet: wallet}
}

func TestRedisPublisher_PublishWrapsClientError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        unreachableAddr,
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	publisher := NewRedisPublisher(client, "ledger-events", logger.NewNoopLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := publisher.Publish(ctx, sampleEvent(t))
	require.Error(t, err)
	assert.ErrorContains(t, err, "publish ledger event to ledger-events")

	var netErr *net.OpError
	assert.ErrorAs(t, err, &netErr)
}

func TestConnectRedis_FailsWhenPingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := ConnectRedis(ctx, RedisConfig{Addr: unreachableAddr, Channel: "ledger-events"})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "redis ping "+unreachableAddr)
}

func TestToMessage_RendersMoneyAsNumbers(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	wallet, err := entity.NewWallet("user-1", entity.MustMoney("500000"), now)
	require.NoError(t, err)

	draft, err := wallet.Execute(entity.Movement{Operation: entity.OpDeposit, Amount: entity.MustMoney("1000")},
		entity.MovementPolicy{}, now)
	require.NoError(t, err)
	txn, err := entity.NewTransaction("txn-1", "user-1", draft, now)
	require.NoError(t, err)

	payload, err := json.Marshal(toMessage(messaging.LedgerEvent{
		Operation:   entity.OpDeposit,
		Transaction: txn,
		Wallet:      wallet,
	}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "add_money", decoded["operation"])
	assert.Equal(t, "txn-1", decoded["transaction_id"])
	assert.Equal(t, 1000.0, decoded["amount"])
	assert.Equal(t, 501000.0, decoded["balance_after"])
	assert.Equal(t, "credit", decoded["type"])
	assert.Equal(t, 501000.0, decoded["wallet"].(map[string]any)["balance"])
}
