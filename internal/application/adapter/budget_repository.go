// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// Months are 1-based (1 = January) everywhere on this interface, matching the
// budgets table.
type BudgetRepository interface {
	// Upsert creates the budget or, when a row already exists for
	// (user_id, category, year, month), overwrites its amount.
	Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// FindByKey retrieves the budget for an exact (user, category, year, month)
	// key. Returns nil without error when no budget is defined, since the
	// absence of a budget is not a constraint.
	FindByKey(ctx context.Context, userID uuid.UUID, category string, year, month int) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets a user defined for a month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.Budget, error)

	// Delete removes a budget. Deleting a budget never cascades to the
	// transactions recorded under its category.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
