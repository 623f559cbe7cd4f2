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

// ContributeToGoalInput represents the input for adding money to a goal.
type ContributeToGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// ContributeToGoalOutput represents the output of a contribution.
type ContributeToGoalOutput struct {
	Goal *entity.SavingGoal
}

// ContributeToGoalUseCase handles contributions. The increment is applied by
// the repository as one atomic UPDATE so concurrent contributions to the same
// goal never lose money to a read-modify-write race.
type ContributeToGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(goalRepo adapter.GoalRepository) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute adds the amount to the goal's current amount. The current amount is
// allowed to pass the target; reaching a goal is a milestone, not a cap.
func (uc *ContributeToGoalUseCase) Execute(
	ctx context.Context,
	input ContributeToGoalInput,
) (*ContributeToGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be positive",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := uc.goalRepo.AddContribution(ctx, input.GoalID, input.UserID, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"saving goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	return &ContributeToGoalOutput{Goal: goal}, nil
}
