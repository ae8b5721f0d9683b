package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	wallets usecase.WalletUseCase
	logger  coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(wallets usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{wallets: wallets, logger: logger}
}

// GetWallet handles GET /wallets/:userId, provisioning the wallet on first access
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := authorizedUser(c, h.logger)
	if !ok {
		return
	}

	wallet, err := h.wallets.GetOrCreateWallet(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}

// AddMoney handles POST /wallets/:userId/add-money
func (h *WalletHandler) AddMoney(c *gin.Context) {
	h.amountMovement(c, h.wallets.AddMoney)
}

// Withdraw handles POST /wallets/:userId/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.amountMovement(c, h.wallets.Withdraw)
}

// MoveToEscrow handles POST /wallets/:userId/escrow
func (h *WalletHandler) MoveToEscrow(c *gin.Context) {
	h.amountMovement(c, h.wallets.MoveToEscrow)
}

// ReleaseEscrow handles POST /wallets/:userId/release-escrow
func (h *WalletHandler) ReleaseEscrow(c *gin.Context) {
	h.amountMovement(c, h.wallets.ReleaseEscrow)
}

// WithdrawFromEscrow handles POST /wallets/:userId/escrow-withdrawal
func (h *WalletHandler) WithdrawFromEscrow(c *gin.Context) {
	h.amountMovement(c, h.wallets.WithdrawFromEscrow)
}

// Invest handles POST /wallets/:userId/invest
func (h *WalletHandler) Invest(c *gin.Context) {
	userID, ok := authorizedUser(c, h.logger)
	if !ok {
		return
	}

	var req dto.InvestRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.wallets.Invest(c.Request.Context(), userID, req.Amount, req.TripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovementResponse(result))
}

// ReturnInvestment handles POST /wallets/:userId/return
func (h *WalletHandler) ReturnInvestment(c *gin.Context) {
	userID, ok := authorizedUser(c, h.logger)
	if !ok {
		return
	}

	var req dto.ReturnRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.wallets.ReturnInvestment(c.Request.Context(), userID, req.Principal, req.Returns)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovementResponse(result))
}

// UpdateWallet handles PUT /wallets/:userId, the administrative bucket overwrite
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)
	userID := c.Param("userId")

	var req dto.WalletUpdateRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	delta, err := req.ToDelta()
	if err != nil {
		_ = c.Error(err)
		return
	}

	wallet, err := h.wallets.AdminUpdate(c.Request.Context(), actor, userID, delta)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}

type amountOperation func(ctx context.Context, userID string, amount decimal.Decimal) (*usecase.MovementResult, error)

func (h *WalletHandler) amountMovement(c *gin.Context, op amountOperation) {
	userID, ok := authorizedUser(c, h.logger)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := op(c.Request.Context(), userID, req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovementResponse(result))
}

// authorizedUser returns the :userId path parameter when the actor may act on it
func authorizedUser(c *gin.Context, logger coreport.Logger) (string, bool) {
	userID := c.Param("userId")
	actor, _ := middleware.ActorFrom(c)
	if !actor.CanAccess(userID) {
		logger.Warn("Wallet access denied", map[string]any{
			"actor_id":   actor.ID,
			"user_id":    userID,
			"path":       c.FullPath(),
			"request_id": middleware.RequestIDFrom(c),
		})
		_ = c.Error(fmt.Errorf("%w: actor %q may not access wallet %q", errs.ErrForbidden, actor.ID, userID))
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, logger coreport.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Invalid request body", map[string]any{
			"path":       c.FullPath(),
			"error":      err.Error(),
			"request_id": middleware.RequestIDFrom(c),
		})
		_ = c.Error(fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}
