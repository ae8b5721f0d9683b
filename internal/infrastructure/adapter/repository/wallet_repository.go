package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/model"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func walletToModel(w *entity.Wallet) model.Wallet {
	return model.Wallet{
		UserID:         w.UserID,
		Balance:        w.Balance.Decimal(),
		LockedAmount:   w.LockedAmount.Decimal(),
		EscrowedAmount: w.EscrowedAmount.Decimal(),
		TotalInvested:  w.TotalInvested.Decimal(),
		TotalReturns:   w.TotalReturns.Decimal(),
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	return &entity.Wallet{
		UserID:         m.UserID,
		Balance:        entity.MoneyFromDecimal(m.Balance),
		LockedAmount:   entity.MoneyFromDecimal(m.LockedAmount),
		EscrowedAmount: entity.MoneyFromDecimal(m.EscrowedAmount),
		TotalInvested:  entity.MoneyFromDecimal(m.TotalInvested),
		TotalReturns:   entity.MoneyFromDecimal(m.TotalReturns),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *WalletRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorClassifier.ToDomain(err, errs.ErrWalletNotFound)
	fields := map[string]any{
		"user_id":   userID,
		"operation": operation,
		"error":     err.Error(),
	}

	if errs.IsCanceled(err) {
		r.logger.Warn("Wallet query cancelled", fields)
		return mapped
	}
	switch r.errorClassifier.Classify(err) {
	case NotFoundError:
		r.logger.Warn("Wallet not found", fields)
	case LockError:
		r.logger.Warn("Wallet is locked by another transaction", fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// CreateIfAbsent inserts the wallet with ON CONFLICT DO NOTHING so that
// concurrent first accesses leave exactly one row
func (r *WalletRepository) CreateIfAbsent(ctx context.Context, wallet *entity.Wallet) (bool, error) {
	walletModel := walletToModel(wallet)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&walletModel)
	if result.Error != nil {
		return false, r.handleDatabaseError("creating wallet", result.Error, wallet.UserID)
	}

	return result.RowsAffected == 1, nil
}

// Get reads a wallet without locking it
func (r *WalletRepository) Get(ctx context.Context, userID string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet", result.Error, userID)
	}
	return walletToEntity(&walletModel), nil
}

// GetForUpdate reads a wallet with SELECT ... FOR UPDATE. The sqlite dialect
// drops the locking clause; there the single writer connection serializes access.
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking wallet", result.Error, userID)
	}

	r.logger.Debug("Wallet locked for update", map[string]any{
		"user_id": userID,
		"balance": walletModel.Balance.StringFixed(entity.MaxDecimalPlaces),
	})
	return walletToEntity(&walletModel), nil
}

// UpdateBuckets writes every bucket of the wallet
func (r *WalletRepository) UpdateBuckets(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("user_id = ?", wallet.UserID).
		Updates(map[string]any{
			entity.BucketBalance:        wallet.Balance.Decimal(),
			entity.BucketLockedAmount:   wallet.LockedAmount.Decimal(),
			entity.BucketEscrowedAmount: wallet.EscrowedAmount.Decimal(),
			entity.BucketTotalInvested:  wallet.TotalInvested.Decimal(),
			entity.BucketTotalReturns:   wallet.TotalReturns.Decimal(),
			"updated_at":                wallet.UpdatedAt,
		})

	if result.Error != nil {
		if r.errorClassifier.IsCheckViolation(result.Error) {
			r.logger.Error("Wallet bucket constraint violated", map[string]any{
				"user_id": wallet.UserID,
				"error":   result.Error.Error(),
			})
			return fmt.Errorf("%w: %w", errs.ErrInternal, result.Error)
		}
		return r.handleDatabaseError("updating wallet", result.Error, wallet.UserID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet not found during update", map[string]any{
			"user_id": wallet.UserID,
		})
		return errs.ErrWalletNotFound
	}
	return nil
}
