package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/period"
	"github.com/my-wallet/backend/internal/domain/entity"
)

// RecentTransactionCount is how many latest transactions the overview carries.
const RecentTransactionCount = 5

// GetOverviewInput represents the input for building the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput represents the dashboard overview for the current month.
type GetOverviewOutput struct {
	Totals             Totals                `json:"totals"`
	WeeklySpending     []DayBucket           `json:"weekly_spending"`
	RecentTransactions []*entity.Transaction `json:"recent_transactions"`
}

// GetOverviewUseCase assembles the current-month totals, the trailing-week
// spending chart and the latest transactions.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(transactionRepo adapter.TransactionRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		clock:           time.Now,
	}
}

// Execute builds the overview for the user's current calendar month.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := uc.clock().UTC()

	monthStart, monthEnd, err := period.MonthRange(now.Year(), int(now.Month()), period.MonthOneBased)
	if err != nil {
		return nil, err
	}

	monthTransactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month transactions: %w", err)
	}

	totals, err := Summarize(monthTransactions)
	if err != nil {
		return nil, err
	}

	// The trailing week can reach into the previous month, so it needs its
	// own query window: the last seven days up to and including now.
	weekStart := now.AddDate(0, 0, -7)
	weekEnd := now.Add(time.Nanosecond)
	weekTransactions, err := uc.transactionRepo.FindByUserAndRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load trailing week transactions: %w", err)
	}

	recentPage, err := uc.transactionRepo.FindPage(ctx, input.UserID, 0, RecentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &GetOverviewOutput{
		Totals:             totals,
		WeeklySpending:     WeeklyExpenseBuckets(weekTransactions, now),
		RecentTransactions: recentPage.Transactions,
	}, nil
}
