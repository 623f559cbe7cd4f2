package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/dashboard"
	"github.com/my-wallet/backend/internal/application/usecase/period"
	"github.com/my-wallet/backend/internal/domain/entity"
)

// MonthlySummary is one point on the report's income/expense trend line.
// Month is 0-based.
type MonthlySummary struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryBreakdownEntry is one slice of the report's expense pie.
type CategoryBreakdownEntry struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// Report is the assembled spending report for a window of months.
type Report struct {
	Trend     []MonthlySummary         `json:"trend"`
	Totals    dashboard.Totals         `json:"totals"`
	Breakdown []CategoryBreakdownEntry `json:"breakdown"`
}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BuildReport assembles a report from the transactions of each month in the
// window. periods and transactionsByPeriod are parallel slices, oldest month
// first.
//
// Breakdown colors are assigned by the order categories first appear in the
// data, before the slices are sorted by amount. Sorting is stable, so two
// categories with the same total keep their first-seen order, and a
// category's color does not change when its ranking does.
func BuildReport(periods []period.Period, transactionsByPeriod [][]*entity.Transaction) (*Report, error) {
	trend := make([]MonthlySummary, 0, len(periods))
	var all []*entity.Transaction

	for i, p := range periods {
		transactions := transactionsByPeriod[i]
		totals, err := dashboard.Summarize(transactions)
		if err != nil {
			return nil, err
		}
		trend = append(trend, MonthlySummary{
			Year:    p.Year,
			Month:   p.Month,
			Label:   monthLabels[p.Month],
			Income:  totals.Income,
			Expense: totals.Expense,
		})
		all = append(all, transactions...)
	}

	totals, err := dashboard.Summarize(all)
	if err != nil {
		return nil, err
	}

	spend := dashboard.SpendByCategory(all)

	breakdown := make([]CategoryBreakdownEntry, 0, len(spend))
	for i, s := range spend {
		var percentage float64
		if !totals.Expense.IsZero() {
			percentage, _ = s.Amount.Mul(decimal.NewFromInt(100)).Div(totals.Expense).Round(2).Float64()
		}
		breakdown = append(breakdown, CategoryBreakdownEntry{
			Category:   s.Category,
			Amount:     s.Amount,
			Percentage: percentage,
			Color:      ColorForIndex(i),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return &Report{
		Trend:     trend,
		Totals:    totals,
		Breakdown: breakdown,
	}, nil
}
