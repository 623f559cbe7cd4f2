package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for saving goal update. Only the name
// and target are editable; the current amount moves exclusively through
// contributions.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	GoalName     string
	TargetAmount decimal.Decimal
}

// UpdateGoalOutput represents the output of saving goal update.
type UpdateGoalOutput struct {
	Goal *entity.SavingGoal
}

// UpdateGoalUseCase handles saving goal updates.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute updates the goal's name and target after verifying ownership.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if err := validateGoalFields(input.GoalName, input.TargetAmount); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saving goal: %w", err)
	}
	if goal == nil || goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"saving goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	goal.GoalName = input.GoalName
	goal.TargetAmount = input.TargetAmount

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update saving goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
