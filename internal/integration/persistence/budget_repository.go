package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	"github.com/my-wallet/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget or overwrites the amount of the existing row for
// the same (user_id, category, year, month) key.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "category"}, {Name: "year"}, {Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}

	// On conflict the stored row keeps its original ID, so read it back.
	var stored model.BudgetModel
	result = r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND year = ? AND month = ?",
			budget.UserID, budget.Category, budget.Year, budget.Month).
		First(&stored)
	if result.Error != nil {
		return nil, result.Error
	}
	return stored.ToEntity(), nil
}

// FindByKey retrieves the budget for an exact key, or (nil, nil) when no
// budget is defined.
func (r *budgetRepository) FindByKey(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	year, month int,
) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND year = ? AND month = ?", userID, category, year, month).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndMonth retrieves all budgets a user defined for a month.
func (r *budgetRepository) FindByUserAndMonth(
	ctx context.Context,
	userID uuid.UUID,
	year, month int,
) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Order("category ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// Delete removes a budget scoped to the owning user.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.BudgetModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
