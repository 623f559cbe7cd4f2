package dto

import (
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/report"
)

// MonthlySummaryResponse represents one point on the report trend line.
type MonthlySummaryResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BreakdownEntryResponse represents one slice of the expense breakdown.
type BreakdownEntryResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// ReportResponse represents the spending report.
type ReportResponse struct {
	Trend     []MonthlySummaryResponse `json:"trend"`
	Totals    TotalsResponse           `json:"totals"`
	Breakdown []BreakdownEntryResponse `json:"breakdown"`
}

// ToReportResponse converts a built Report to its DTO.
func ToReportResponse(r *report.Report) ReportResponse {
	trend := make([]MonthlySummaryResponse, len(r.Trend))
	for i, point := range r.Trend {
		trend[i] = MonthlySummaryResponse{
			Year:    point.Year,
			Month:   point.Month,
			Label:   point.Label,
			Income:  point.Income,
			Expense: point.Expense,
		}
	}

	breakdown := make([]BreakdownEntryResponse, len(r.Breakdown))
	for i, entry := range r.Breakdown {
		breakdown[i] = BreakdownEntryResponse{
			Category:   entry.Category,
			Amount:     entry.Amount,
			Percentage: entry.Percentage,
			Color:      entry.Color,
		}
	}

	return ReportResponse{
		Trend:     trend,
		Totals:    ToTotalsResponse(r.Totals),
		Breakdown: breakdown,
	}
}
