package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/logifin/wallet-ledger/internal/domain/port/core"
)

func TestRealTimeProvider_SleepHonoursContext(t *testing.T) {
	p := NewRealTimeProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := p.Sleep(ctx, core.Duration(time.Minute))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRealTimeProvider_SleepElapses(t *testing.T) {
	p := NewRealTimeProvider()

	start := p.Now()
	assert.NoError(t, p.Sleep(context.Background(), 5*core.Millisecond))
	assert.GreaterOrEqual(t, p.Since(start), 5*core.Millisecond)
	assert.Equal(t, time.UTC, p.Now().Location())
}
