package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	"github.com/my-wallet/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new saving goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create inserts a new saving goal.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID. A missing row yields (nil, nil).
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user, oldest first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates a goal's name and target amount.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	result := r.db.WithContext(ctx).
		Model(&model.SavingGoalModel{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"goal_name":     goal.GoalName,
			"target_amount": goal.TargetAmount,
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal scoped to the owning user.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.SavingGoalModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AddContribution applies the increment as a single UPDATE so two concurrent
// contributions never overwrite each other. A zero rows-affected count means
// the goal does not exist or belongs to another user; (nil, nil) is returned.
func (r *goalRepository) AddContribution(
	ctx context.Context,
	goalID, userID uuid.UUID,
	amount decimal.Decimal,
) (*entity.SavingGoal, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SavingGoalModel{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("current_amount", gorm.Expr("current_amount + ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var goalModel model.SavingGoalModel
	if err := r.db.WithContext(ctx).Where("id = ?", goalID).First(&goalModel).Error; err != nil {
		return nil, err
	}
	return goalModel.ToEntity(), nil
}
