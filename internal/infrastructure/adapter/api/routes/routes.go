package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// HealthChecker reports whether a dependency is usable
type HealthChecker func(ctx context.Context) error

// Options collects everything the router needs
type Options struct {
	Logger             coreport.Logger
	WalletHandler      *handler.WalletHandler
	TransactionHandler *handler.TransactionHandler
	Verifier           middleware.TokenVerifier // nil disables authentication
	HTTPObserver       middleware.HTTPObserver  // nil disables request metrics
	MetricsHandler     http.Handler             // nil disables GET /metrics
	Health             HealthChecker
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	if opts.HTTPObserver != nil {
		router.Use(middleware.Metrics(opts.HTTPObserver))
	}
	router.Use(middleware.ErrorHandler(opts.Logger))
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, opts Options) {
	router.GET("/healthz", healthz(opts.Health))
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	authenticated := router.Group("/", middleware.Auth(opts.Verifier))

	wallets := authenticated.Group("/wallets")
	{
		wallets.GET("/:userId", opts.WalletHandler.GetWallet)
		wallets.PUT("/:userId", opts.WalletHandler.UpdateWallet)
		wallets.POST("/:userId/add-money", opts.WalletHandler.AddMoney)
		wallets.POST("/:userId/withdraw", opts.WalletHandler.Withdraw)
		wallets.POST("/:userId/escrow", opts.WalletHandler.MoveToEscrow)
		wallets.POST("/:userId/invest", opts.WalletHandler.Invest)
		wallets.POST("/:userId/return", opts.WalletHandler.ReturnInvestment)
		wallets.POST("/:userId/release-escrow", opts.WalletHandler.ReleaseEscrow)
		wallets.POST("/:userId/escrow-withdrawal", opts.WalletHandler.WithdrawFromEscrow)
	}

	transactions := authenticated.Group("/transactions")
	{
		transactions.GET("", opts.TransactionHandler.ListTransactions)
		transactions.GET("/:id", opts.TransactionHandler.GetTransaction)
		transactions.GET("/user/:userId", opts.TransactionHandler.ListUserTransactions)
	}
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, opts)
	SetupRoutes(router, opts)
	return router
}

func healthz(check HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
