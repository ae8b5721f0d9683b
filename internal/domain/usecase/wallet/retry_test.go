package wallet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/logifin/wallet-ledger/mocks/port/core"
)

func newTestRetrier(t *testing.T, maxRetries int) (*retrier, *coremocks.MockTimeProvider) {
	tp := coremocks.NewMockTimeProvider(t)
	return &retrier{
		config: RetryConfig{
			MaxRetries:    maxRetries,
			RetryInterval: 10 * time.Millisecond,
			MaxInterval:   40 * time.Millisecond,
		},
		timeProvider: tp,
		logger:       logger.NewNoopLogger(),
		metrics:      nopMetrics{},
	}, tp
}

func TestRetrier_RetriesBusyWallet(t *testing.T) {
	r, tp := newTestRetrier(t, 3)
	tp.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Times(2)

	calls := 0
	err := r.do(context.Background(), "withdraw", func() error {
		calls++
		if calls < 3 {
			return fmt.Errorf("%w: lock timeout", errs.ErrWalletBusy)
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_GivesUpAfterMaxRetries(t *testing.T) {
	r, tp := newTestRetrier(t, 2)
	tp.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Times(2)

	calls := 0
	err := r.do(context.Background(), "withdraw", func() error {
		calls++
		return errs.ErrWalletBusy
	})

	assert.ErrorIs(t, err, errs.ErrWalletBusy)
	assert.Equal(t, 3, calls)
}

func TestRetrier_DoesNotRetryOtherErrors(t *testing.T) {
	for _, failure := range []error{errs.ErrStoreUnavailable, errs.ErrInsufficientFunds, errs.ErrInvalidAmount} {
		r, _ := newTestRetrier(t, 5)

		calls := 0
		err := r.do(context.Background(), "withdraw", func() error {
			calls++
			return failure
		})

		assert.ErrorIs(t, err, failure)
		assert.Equal(t, 1, calls, failure.Error())
	}
}

func TestRetrier_StopsWhenContextEnds(t *testing.T) {
	r, tp := newTestRetrier(t, 5)
	tp.EXPECT().Sleep(mock.Anything, mock.Anything).Return(context.Canceled).Once()

	calls := 0
	err := r.do(context.Background(), "withdraw", func() error {
		calls++
		return errs.ErrWalletBusy
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetrier_BackoffIsCapped(t *testing.T) {
	r, _ := newTestRetrier(t, 5)

	assert.Equal(t, 10*time.Millisecond, r.backoff(0))
	assert.Equal(t, 20*time.Millisecond, r.backoff(1))
	assert.Equal(t, 40*time.Millisecond, r.backoff(2))
	assert.Equal(t, 40*time.Millisecond, r.backoff(10))
}
