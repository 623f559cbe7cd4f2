package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/dashboard"
	"github.com/my-wallet/backend/internal/application/usecase/period"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing a month's budgets.
// Month is 1-based.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// ListBudgetsOutput represents the output of listing budgets, each joined
// with the spending recorded under its category for the month.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpending
}

// ListBudgetsUseCase handles listing budgets with their current spending.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's budgets for a month, each with the amount spent
// in its category. Spending is joined on the exact category label; a budget
// whose category has no transactions reports zero spending.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	start, end, err := period.MonthRange(input.Year, input.Month, period.MonthOneBased)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	spendByCategory := make(map[string]decimal.Decimal)
	for _, spend := range dashboard.SpendByCategory(transactions) {
		spendByCategory[spend.Category] = spend.Amount
	}

	joined := make([]*entity.BudgetWithSpending, 0, len(budgets))
	for _, b := range budgets {
		spent, ok := spendByCategory[b.Category]
		if !ok {
			spent = decimal.Zero
		}
		joined = append(joined, &entity.BudgetWithSpending{Budget: b, SpentAmount: spent})
	}

	return &ListBudgetsOutput{Budgets: joined}, nil
}
