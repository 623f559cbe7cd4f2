// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/period"
)

// Outcome classifies the result of a pre-spend budget check.
type Outcome string

const (
	// OutcomeNoBudget means no budget is defined for the category and month.
	OutcomeNoBudget Outcome = "no_budget"
	// OutcomeWithinBudget means the expense fits under the cap.
	OutcomeWithinBudget Outcome = "within_budget"
	// OutcomeWouldExceed means the expense would push spending over the cap.
	OutcomeWouldExceed Outcome = "would_exceed"
)

// Decision is the advisory result of a budget check. It never blocks the
// expense by itself; callers decide whether to ask the user for confirmation.
type Decision struct {
	Outcome      Outcome         `json:"outcome"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	AlreadySpent decimal.Decimal `json:"already_spent"`
	OverBy       decimal.Decimal `json:"over_by"`
}

// CheckBudgetInput represents the input for a pre-spend budget check.
// Month is 1-based.
type CheckBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Year     int
	Month    int
}

// CheckBudgetUseCase evaluates a prospective expense against the category's
// monthly budget.
type CheckBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewCheckBudgetUseCase creates a new CheckBudgetUseCase instance.
func NewCheckBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *CheckBudgetUseCase {
	return &CheckBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute checks whether the expense would exceed the category's budget for
// the month. The category label is matched exactly as entered.
func (uc *CheckBudgetUseCase) Execute(ctx context.Context, input CheckBudgetInput) (*Decision, error) {
	budget, err := uc.budgetRepo.FindByKey(ctx, input.UserID, input.Category, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}
	if budget == nil {
		return &Decision{
			Outcome:      OutcomeNoBudget,
			BudgetAmount: decimal.Zero,
			AlreadySpent: decimal.Zero,
			OverBy:       decimal.Zero,
		}, nil
	}

	start, end, err := period.MonthRange(input.Year, input.Month, period.MonthOneBased)
	if err != nil {
		return nil, err
	}

	spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, input.Category, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category spending: %w", err)
	}

	projected := spent.Add(input.Amount)
	if projected.GreaterThan(budget.Amount) {
		return &Decision{
			Outcome:      OutcomeWouldExceed,
			BudgetAmount: budget.Amount,
			AlreadySpent: spent,
			OverBy:       projected.Sub(budget.Amount),
		}, nil
	}

	return &Decision{
		Outcome:      OutcomeWithinBudget,
		BudgetAmount: budget.Amount,
		AlreadySpent: spent,
		OverBy:       decimal.Zero,
	}, nil
}
