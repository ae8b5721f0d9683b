package wallet

import (
	"context"
	"math/rand/v2"
	"time"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for re-running a unit of work that lost a
// lock or serialization conflict
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 20 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

// retrier re-runs operations that failed with ErrWalletBusy. Every other
// failure, including ErrStoreUnavailable, is returned as is.
type retrier struct {
	config       RetryConfig
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

func (r *retrier) do(ctx context.Context, operation string, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !errs.IsRetryable(err) {
			return err
		}
		if attempt >= r.config.MaxRetries {
			break
		}

		backoff := r.backoff(attempt)
		r.metrics.IncRetry(operation)
		r.logger.Warn("Wallet busy, retrying operation", map[string]any{
			"operation":   operation,
			"attempt":     attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		if sleepErr := r.timeProvider.Sleep(ctx, coreport.Duration(backoff)); sleepErr != nil {
			r.logger.Warn("Retry canceled by context", map[string]any{
				"operation": operation,
				"attempts":  attempt + 1,
				"error":     sleepErr.Error(),
			})
			return sleepErr
		}
	}

	r.logger.Error("All retry attempts failed", map[string]any{
		"operation":   operation,
		"max_retries": r.config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// backoff computes interval * 2^attempt capped at MaxInterval, plus jitter
func (r *retrier) backoff(attempt int) time.Duration {
	backoff := r.config.RetryInterval * (1 << uint(attempt))
	if backoff > r.config.MaxInterval || backoff <= 0 {
		backoff = r.config.MaxInterval
	}

	if r.config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * r.config.JitterFactor * rand.Float64())
		backoff += jitter
	}
	return backoff
}
