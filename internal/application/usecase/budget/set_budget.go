package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// SetBudgetInput represents the input for creating or replacing a budget.
// Month is 1-based.
type SetBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Year     int
	Month    int
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase handles budget creation. Saving a budget for a
// (category, year, month) that already has one overwrites its amount.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute creates or replaces the budget.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.Amount, input.Year, input.Month)

	saved, err := uc.budgetRepo.Upsert(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return &SetBudgetOutput{Budget: saved}, nil
}

// validateInput validates the input parameters.
func (uc *SetBudgetUseCase) validateInput(input SetBudgetInput) error {
	if input.Category == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}

	if input.Month < 1 || input.Month > 12 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	return nil
}
