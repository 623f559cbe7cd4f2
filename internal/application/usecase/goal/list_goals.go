package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing a user's saving goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing saving goals.
type ListGoalsOutput struct {
	Goals []*entity.SavingGoal
}

// ListGoalsUseCase handles listing saving goals.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists all saving goals for the user.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
