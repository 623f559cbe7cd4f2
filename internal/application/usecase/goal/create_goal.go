// Package goal contains saving-goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// CreateGoalInput represents the input for saving goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	GoalName     string
	TargetAmount decimal.Decimal
}

// CreateGoalOutput represents the output of saving goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingGoal
}

// CreateGoalUseCase handles saving goal creation. New goals always start
// with a zero current amount.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    func() time.Time
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    time.Now,
	}
}

// Execute performs the saving goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.GoalName, input.TargetAmount); err != nil {
		return nil, err
	}

	goal := entity.NewSavingGoal(input.UserID, input.GoalName, input.TargetAmount, uc.clock().UTC())

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create saving goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateGoalFields validates the name and target shared by create and update.
func validateGoalFields(goalName string, targetAmount decimal.Decimal) error {
	if goalName == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}

	if targetAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeNegativeTargetAmount,
			"target amount must not be negative",
			domainerror.ErrNegativeTargetAmount,
		)
	}

	return nil
}
