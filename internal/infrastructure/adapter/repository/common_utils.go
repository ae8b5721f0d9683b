package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
	UnknownError      ErrorType = "unknown"
)

// PostgreSQL error codes the ledger reacts to
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// ErrorClassifier provides methods to classify database errors.
// SQLSTATE codes are used when the driver exposes them; message matching
// covers sqlite and wrapped errors.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsLockError(err):
		return LockError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return UnknownError
	}
}

// ToDomain maps a store error onto the domain taxonomy. notFound is returned
// for missing rows; lock conflicts become ErrWalletBusy and everything else
// ErrStoreUnavailable. A cancelled caller context becomes ErrCanceled.
func (c *ErrorClassifier) ToDomain(err error, notFound error) error {
	if err != nil && errs.IsCanceled(err) {
		return fmt.Errorf("%w: %w", errs.ErrCanceled, err)
	}
	switch c.Classify(err) {
	case "":
		return nil
	case NotFoundError:
		return notFound
	case LockError:
		return fmt.Errorf("%w: %w", errs.ErrWalletBusy, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code := sqlState(err); code != "" {
		return code == pgUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsLockError checks if the error is a lock or serialization conflict
func (c *ErrorClassifier) IsLockError(err error) bool {
	if code := sqlState(err); code != "" {
		return code == pgSerializationFailure || code == pgDeadlockDetected || code == pgLockNotAvailable
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "sql: database is closed")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if code := sqlState(err); code != "" {
		return strings.HasPrefix(code, "23")
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "not null")
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsCheckViolation reports a CHECK constraint failure, used for the
// non-negative bucket constraints
func (c *ErrorClassifier) IsCheckViolation(err error) bool {
	return sqlState(err) == pgCheckViolation ||
		strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
