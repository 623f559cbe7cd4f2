package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for saving goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles saving goal deletion. Transactions that funded
// the goal are never touched.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute deletes the goal, scoped to the owning user.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.GoalID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete saving goal: %w", err)
	}
	return nil
}
