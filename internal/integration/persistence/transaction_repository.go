// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	"github.com/my-wallet/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID. A missing row yields (nil, nil);
// ownership checks belong to the use case layer.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUserAndRange retrieves all transactions for a user with
// start <= created_at < end.
func (r *transactionRepository) FindByUserAndRange(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindPage retrieves one zero-based page of a user's transactions, newest
// first. It fetches one extra row to learn whether another page exists.
func (r *transactionRepository) FindPage(
	ctx context.Context,
	userID uuid.UUID,
	page, pageSize int,
) (*adapter.TransactionPage, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * pageSize).
		Limit(pageSize + 1).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	hasMore := len(transactionModels) > pageSize
	if hasMore {
		transactionModels = transactionModels[:pageSize]
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return &adapter.TransactionPage{Transactions: transactions, HasMore: hasMore}, nil
}

// SumExpensesByCategory sums expense amounts for an exact category label
// within [start, end). The comparison is byte-exact, matching how labels are
// stored.
func (r *transactionRepository) SumExpensesByCategory(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	start, end time.Time,
) (decimal.Decimal, error) {
	var sum decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND category = ? AND created_at >= ? AND created_at < ?",
			userID, string(entity.TransactionTypeExpense), category, start, end).
		Scan(&sum)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return sum, nil
}

// Update updates an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"type":     transactionModel.Type,
			"amount":   transactionModel.Amount,
			"category": transactionModel.Category,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
