package error

import (
	"context"
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount        = 4001
	CodeInvalidUserID        = 4002
	CodeInsufficientFunds    = 4003
	CodeInsufficientEscrow   = 4004
	CodeInsufficientInvested = 4005
	CodeInvalidRequest       = 4006
	CodeUnauthorized         = 4010
	CodeForbidden            = 4030
	CodeWalletNotFound       = 4040
	CodeTransactionNotFound  = 4041
	CodeCanceled             = 4080
	CodeWalletBusy           = 4090

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is non-positive, malformed or out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user identifier is empty or too long
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInsufficientFunds is returned when the balance bucket cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrInsufficientEscrow is returned when the escrow bucket cannot cover a debit
	ErrInsufficientEscrow = errors.New("insufficient escrowed amount")

	// ErrInsufficientInvested is returned when a settlement returns more principal than is invested
	ErrInsufficientInvested = errors.New("insufficient invested principal")

	// ErrWalletNotFound is returned when a wallet row is missing after provisioning
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned when the requested ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStoreUnavailable is returned when the ledger store fails to serve a request
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrWalletBusy is returned when a wallet row could not be locked or serialized
	ErrWalletBusy = errors.New("wallet is locked by another operation")

	// ErrUnauthorized is returned when the caller identity is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller may not act on the requested wallet
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal is returned for unexpected server-side errors
	ErrInternal = errors.New("internal server error")

	// ErrCanceled is returned when the caller gave up before the unit of work committed
	ErrCanceled = errors.New("operation cancelled")

	// ErrShuttingDown is returned when work is submitted after shutdown began
	ErrShuttingDown = errors.New("ledger is shutting down")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case IsCanceled(err):
		return CodeCanceled
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInsufficientEscrow):
		return CodeInsufficientEscrow
	case errors.Is(err, ErrInsufficientInvested):
		return CodeInsufficientInvested
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrWalletBusy):
		return CodeWalletBusy
	case errors.Is(err, ErrStoreUnavailable), errors.Is(err, ErrShuttingDown):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError carries the bucket state that made a debit fail.
// Bucket is one of "balance", "escrowed_amount" or "total_invested".
type InsufficientFundsError struct {
	UserID    string
	Bucket    string
	Requested string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s for user %s: required %s, available %s",
		e.Bucket, e.UserID, e.Requested, e.Available)
}

// Is maps the bucket onto the matching sentinel
func (e *InsufficientFundsError) Is(target error) bool {
	switch e.Bucket {
	case "escrowed_amount":
		return target == ErrInsufficientEscrow
	case "total_invested":
		return target == ErrInsufficientInvested
	default:
		return target == ErrInsufficientFunds
	}
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"bucket":     e.Bucket,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": ErrorCode(e),
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error for the given bucket
func NewInsufficientFundsError(userID, bucket, requested, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Bucket:    bucket,
		Requested: requested,
		Available: available,
	}
}

// OperationError wraps a failure of one money-movement operation
type OperationError struct {
	Operation string
	UserID    string
	Amount    string
	Err       error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed for user %s (amount: %s): %v", e.Operation, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OperationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "operation_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
	var detailed interface{ LogFields() map[string]any }
	if errors.As(e.Err, &detailed) {
		for k, v := range detailed.LogFields() {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}
	return fields
}

// NewOperationError creates a detailed operation error
func NewOperationError(operation, userID, amount string, err error) error {
	return &OperationError{
		Operation: operation,
		UserID:    userID,
		Amount:    amount,
		Err:       err,
	}
}

// IsInsufficientError checks if the error is any insufficient-bucket error
func IsInsufficientError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInsufficientEscrow) ||
		errors.Is(err, ErrInsufficientInvested)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrWalletNotFound) || errors.Is(err, ErrTransactionNotFound)
}

// IsCanceled checks if the caller's context ended the operation
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// IsRetryable reports whether the failure is a lock or serialization conflict
// that can succeed when the unit of work is run again
func IsRetryable(err error) bool {
	return errors.Is(err, ErrWalletBusy)
}
