package wallet

import (
	"context"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/domain/port/messaging"
	"github.com/logifin/wallet-ledger/internal/domain/port/persistence"
	"github.com/logifin/wallet-ledger/internal/domain/port/usecase"
)

// DefaultInitialBalance seeds every newly provisioned wallet
var DefaultInitialBalance = entity.MustMoney("500000")

// Config tunes the ledger service
type Config struct {
	InitialBalance entity.Money
	Policy         entity.MovementPolicy
	Retry          RetryConfig
	QueueSize      int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		InitialBalance: DefaultInitialBalance,
		Policy:         entity.MovementPolicy{EnforceInvestedPrincipal: true},
		Retry:          DefaultRetryConfig(),
		QueueSize:      defaultQueueSize,
	}
}

// Service implements usecase.WalletUseCase on top of a UnitOfWork
type Service struct {
	uow          persistence.UnitOfWork
	publisher    messaging.EventPublisher
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config

	sequencer *Sequencer
	retrier   *retrier
	ids       *entity.IDGenerator
}

var _ usecase.WalletUseCase = (*Service)(nil)

// NewService creates the ledger service. publisher and metrics may be nil.
func NewService(
	uow persistence.UnitOfWork,
	publisher messaging.EventPublisher,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		uow:          uow,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
		sequencer:    NewSequencer(logger, config.QueueSize),
		retrier: &retrier{
			config:       config.Retry,
			timeProvider: timeProvider,
			logger:       logger,
			metrics:      metrics,
		},
		ids: entity.NewIDGenerator(),
	}
}

// Shutdown waits for queued operations to finish
func (s *Service) Shutdown(ctx context.Context) error {
	return s.sequencer.Shutdown(ctx)
}

// inUnitOfWork runs fn inside a transaction, committing on success and rolling
// back on any error or panic
func (s *Service) inUnitOfWork(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back wallet transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	if err = s.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string, coreport.Duration) {}
func (nopMetrics) IncRetry(string) {}
func (nopMetrics) IncPublishFailure() {}
