package dto

import (
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/dashboard"
)

// TotalsResponse represents income and expense totals in API responses.
type TotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// DayBucketResponse represents one day of the trailing-week spending chart.
type DayBucketResponse struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	Totals             TotalsResponse        `json:"totals"`
	WeeklySpending     []DayBucketResponse   `json:"weekly_spending"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// ToTotalsResponse converts aggregated totals to a TotalsResponse DTO.
func ToTotalsResponse(t dashboard.Totals) TotalsResponse {
	return TotalsResponse{
		Income:  t.Income,
		Expense: t.Expense,
		Balance: t.Balance(),
	}
}

// ToOverviewResponse converts a GetOverviewOutput to its DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	buckets := make([]DayBucketResponse, len(output.WeeklySpending))
	for i, b := range output.WeeklySpending {
		buckets[i] = DayBucketResponse{Label: b.Label, Total: b.Total}
	}

	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(t)
	}

	return OverviewResponse{
		Totals:             ToTotalsResponse(output.Totals),
		WeeklySpending:     buckets,
		RecentTransactions: recent,
	}
}
