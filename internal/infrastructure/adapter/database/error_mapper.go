package database

import (
	"fmt"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised while managing transactions to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Serialization failures at
// commit become ErrWalletBusy so the caller's retry loop can re-run the unit.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errs.IsCanceled(err) {
		return fmt.Errorf("%w: %s: %w", errs.ErrCanceled, operation, err)
	}
	switch m.classifier.Classify(err) {
	case repository.LockError:
		return fmt.Errorf("%w: %s: %w", errs.ErrWalletBusy, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", errs.ErrStoreUnavailable, operation, err)
	}
}
