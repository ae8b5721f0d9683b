package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler serves the read-only ledger endpoints
type TransactionHandler struct {
	history usecase.HistoryUseCase
	logger  coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(history usecase.HistoryUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{history: history, logger: logger}
}

// GetTransaction handles GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.history.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	// entries of other users are reported as missing
	actor, _ := middleware.ActorFrom(c)
	if !actor.CanAccess(txn.UserID) {
		h.logger.Warn("Transaction lookup for another user's entry", map[string]any{
			"actor_id":       actor.ID,
			"transaction_id": txn.ID,
			"request_id":     middleware.RequestIDFrom(c),
		})
		_ = c.Error(fmt.Errorf("%w: %s", errs.ErrTransactionNotFound, txn.ID))
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListUserTransactions handles GET /transactions/user/:userId?type=&category=&limit=
func (h *TransactionHandler) ListUserTransactions(c *gin.Context) {
	userID, ok := authorizedUser(c, h.logger)
	if !ok {
		return
	}

	var query dto.TransactionQuery
	if !bindQuery(c, h.logger, &query) {
		return
	}

	txns, err := h.history.ListUserTransactions(c.Request.Context(), userID, query.ToFilter())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query dto.TransactionQuery
	if !bindQuery(c, h.logger, &query) {
		return
	}

	actor, _ := middleware.ActorFrom(c)
	txns, err := h.history.ListAllTransactions(c.Request.Context(), actor, query.ToFilter())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}

func bindQuery(c *gin.Context, logger coreport.Logger, query *dto.TransactionQuery) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		logger.Warn("Invalid history query", map[string]any{
			"query":      c.Request.URL.RawQuery,
			"error":      err.Error(),
			"request_id": middleware.RequestIDFrom(c),
		})
		_ = c.Error(fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}
