package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		c.JSON(StatusFor(err), dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: messageFor(err),
		})
	}
}

// StatusFor maps a domain error onto an HTTP status code
func StatusFor(err error) int {
	switch {
	case errs.IsCanceled(err):
		return http.StatusRequestTimeout
	case errs.IsInsufficientError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrInvalidUserID),
		errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrWalletBusy):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable), errors.Is(err, errs.ErrShuttingDown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides the details of server-side failures
func messageFor(err error) string {
	if StatusFor(err) >= http.StatusInternalServerError {
		switch {
		case errors.Is(err, errs.ErrShuttingDown):
			return errs.ErrShuttingDown.Error()
		case errors.Is(err, errs.ErrStoreUnavailable):
			return errs.ErrStoreUnavailable.Error()
		default:
			return "Internal server error"
		}
	}

	// OperationError prefixes the message with operation and user; clients
	// only need the cause
	var opErr *errs.OperationError
	if errors.As(err, &opErr) {
		return opErr.Err.Error()
	}
	return err.Error()
}
