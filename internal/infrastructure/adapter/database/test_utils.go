package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/logifin/wallet-ledger/internal/infrastructure/adapter/time"
)

var testDBCounter atomic.Int64

// TestDBManager provides utilities for testing against a migrated database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// TestConfig returns a sqlite configuration backed by a private in-memory
// database
func TestConfig() *Config {
	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Path = fmt.Sprintf("file:wallet_ledger_test_%d?mode=memory&cache=shared&_busy_timeout=5000",
		testDBCounter.Add(1))
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.RetryDelay = 10 * time.Millisecond
	config.MonitorInterval = 0
	return config
}

// NewTestDBManager connects to a fresh in-memory database, migrates it and
// closes it when the test ends
func NewTestDBManager(t testing.TB) *TestDBManager {
	t.Helper()

	log := logger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()
	config := TestConfig()

	manager := NewManager(config, log, timeProvider, nil)
	ctx := context.Background()

	_, err := manager.Connect(ctx)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, manager.Migrate(ctx), "failed to migrate test database")

	t.Cleanup(func() {
		_ = manager.Close()
	})

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

