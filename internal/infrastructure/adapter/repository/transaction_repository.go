package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the append-only ledger using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transactionToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount.Decimal(),
		Category:     string(t.Category),
		Description:  t.Description,
		BalanceAfter: t.BalanceAfter.Decimal(),
		Timestamp:    t.Timestamp,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Amount:       entity.MoneyFromDecimal(m.Amount),
		Category:     entity.Category(m.Category),
		Description:  m.Description,
		BalanceAfter: entity.MoneyFromDecimal(m.BalanceAfter),
		Timestamp:    m.Timestamp,
	}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := transactionToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		fields := map[string]any{
			"transaction_id": transaction.ID,
			"user_id":        transaction.UserID,
			"error":          result.Error.Error(),
		}
		if errs.IsCanceled(result.Error) {
			r.logger.Warn("Transaction insert cancelled", fields)
		} else {
			r.logger.Error("Failed to create transaction", fields)
		}
		return r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionNotFound)
	}

	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
	})
	return nil
}

// GetByID retrieves a ledger entry by its identifier
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.Classify(result.Error) == NotFoundError {
			r.logger.Warn("Transaction not found", map[string]any{
				"transaction_id": id,
			})
		} else {
			r.logger.Error("Failed to get transaction", map[string]any{
				"transaction_id": id,
				"error":          result.Error.Error(),
			})
		}
		return nil, r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionNotFound)
	}
	return transactionToEntity(&transactionModel), nil
}

// ListByUser returns a user's entries newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID), filter)
}

// List returns entries of all users newest first
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx), filter)
}

func (r *TransactionRepository) list(query *gorm.DB, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.Transaction
	if err := query.Order("timestamp DESC").Order("id DESC").Find(&models).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions, nil
}
