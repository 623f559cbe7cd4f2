// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// GoalRepository defines the interface for saving goal persistence operations.
type GoalRepository interface {
	// Create inserts a new saving goal.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingGoal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Update updates a goal's name and target amount.
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// Delete removes a goal. Contribution transactions are a separate concern
	// and are never touched.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// AddContribution increases current_amount by the given amount as a single
	// atomic UPDATE and returns the updated goal. Two concurrent contributions
	// must both be applied in full.
	AddContribution(ctx context.Context, goalID, userID uuid.UUID, amount decimal.Decimal) (*entity.SavingGoal, error)
}
