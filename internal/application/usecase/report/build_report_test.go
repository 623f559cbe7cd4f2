package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/period"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

func transactionIn(
	userID uuid.UUID,
	transactionType entity.TransactionType,
	amount, category string,
	year int, month time.Month, day int,
) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      transactionType,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		CreatedAt: time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildReport(t *testing.T) {
	userID := uuid.New()

	t.Run("trend carries one point per month in order", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 0}, {Year: 2024, Month: 1}, {Year: 2024, Month: 2}}
		transactionsByPeriod := [][]*entity.Transaction{
			{
				transactionIn(userID, entity.TransactionTypeIncome, "3000", "Salary", 2024, time.January, 5),
				transactionIn(userID, entity.TransactionTypeExpense, "500", "Food", 2024, time.January, 10),
			},
			{},
			{
				transactionIn(userID, entity.TransactionTypeExpense, "200", "Food", 2024, time.March, 3),
			},
		}

		report, err := BuildReport(periods, transactionsByPeriod)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.Trend) != 3 {
			t.Fatalf("expected 3 trend points, got %d", len(report.Trend))
		}
		if report.Trend[0].Label != "Jan" || report.Trend[1].Label != "Feb" || report.Trend[2].Label != "Mar" {
			t.Errorf("unexpected labels: %s %s %s",
				report.Trend[0].Label, report.Trend[1].Label, report.Trend[2].Label)
		}
		if !report.Trend[1].Income.IsZero() || !report.Trend[1].Expense.IsZero() {
			t.Error("expected an empty month to report zero totals")
		}
		if !report.Totals.Income.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected total income 3000, got %s", report.Totals.Income)
		}
		if !report.Totals.Expense.Equal(decimal.RequireFromString("700")) {
			t.Errorf("expected total expense 700, got %s", report.Totals.Expense)
		}
	})

	t.Run("breakdown is sorted by amount with stable colors", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 2}}
		transactionsByPeriod := [][]*entity.Transaction{{
			transactionIn(userID, entity.TransactionTypeExpense, "100", "Food", 2024, time.March, 1),
			transactionIn(userID, entity.TransactionTypeExpense, "300", "Rent", 2024, time.March, 2),
			transactionIn(userID, entity.TransactionTypeExpense, "100", "Transport", 2024, time.March, 3),
		}}

		report, err := BuildReport(periods, transactionsByPeriod)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.Breakdown) != 3 {
			t.Fatalf("expected 3 breakdown entries, got %d", len(report.Breakdown))
		}

		// Rent has the largest amount and leads, but keeps the color of its
		// first-seen position (second).
		if report.Breakdown[0].Category != "Rent" {
			t.Errorf("expected Rent first, got %s", report.Breakdown[0].Category)
		}
		if report.Breakdown[0].Color != ColorForIndex(1) {
			t.Errorf("expected Rent to keep color %s, got %s", ColorForIndex(1), report.Breakdown[0].Color)
		}

		// Food and Transport tie; stable sort keeps first-seen order.
		if report.Breakdown[1].Category != "Food" || report.Breakdown[2].Category != "Transport" {
			t.Errorf("expected tie broken by first appearance, got %s then %s",
				report.Breakdown[1].Category, report.Breakdown[2].Category)
		}
		if report.Breakdown[1].Color != ColorForIndex(0) {
			t.Errorf("expected Food to keep color %s, got %s", ColorForIndex(0), report.Breakdown[1].Color)
		}
	})

	t.Run("percentages sum to roughly 100", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 2}}
		transactionsByPeriod := [][]*entity.Transaction{{
			transactionIn(userID, entity.TransactionTypeExpense, "33.33", "Food", 2024, time.March, 1),
			transactionIn(userID, entity.TransactionTypeExpense, "33.33", "Rent", 2024, time.March, 2),
			transactionIn(userID, entity.TransactionTypeExpense, "33.34", "Transport", 2024, time.March, 3),
		}}

		report, err := BuildReport(periods, transactionsByPeriod)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var sum float64
		for _, entry := range report.Breakdown {
			sum += entry.Percentage
		}
		if math.Abs(sum-100) > 0.05 {
			t.Errorf("expected percentages to sum to ~100, got %v", sum)
		}
	})

	t.Run("zero expenses yield an empty breakdown and zero percentages", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 2}}
		transactionsByPeriod := [][]*entity.Transaction{{
			transactionIn(userID, entity.TransactionTypeIncome, "3000", "Salary", 2024, time.March, 1),
		}}

		report, err := BuildReport(periods, transactionsByPeriod)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Breakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(report.Breakdown))
		}
	})

	t.Run("more categories than colors wraps the palette", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 2}}
		transactions := make([]*entity.Transaction, 0, 9)
		categories := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
		for i, category := range categories {
			transactions = append(transactions, transactionIn(
				userID, entity.TransactionTypeExpense,
				decimal.NewFromInt(int64(100-i)).String(), category,
				2024, time.March, i+1,
			))
		}

		report, err := BuildReport(periods, [][]*entity.Transaction{transactions})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Amounts already descend, so order and first-seen index coincide.
		if report.Breakdown[7].Color != ColorForIndex(0) {
			t.Errorf("expected the 8th category to reuse the first color, got %s", report.Breakdown[7].Color)
		}
	})

	t.Run("unknown type fails the build", func(t *testing.T) {
		periods := []period.Period{{Year: 2024, Month: 2}}
		transactionsByPeriod := [][]*entity.Transaction{{
			transactionIn(userID, "transfer", "10", "Misc", 2024, time.March, 1),
		}}

		_, err := BuildReport(periods, transactionsByPeriod)
		if !errors.Is(err, domainerror.ErrUnknownTransactionType) {
			t.Errorf("expected ErrUnknownTransactionType, got %v", err)
		}
	})
}

func TestColorForIndex(t *testing.T) {
	if ColorForIndex(0) != ColorForIndex(len(chartPalette)) {
		t.Error("expected the palette to wrap around")
	}
	seen := make(map[string]bool)
	for i := 0; i < len(chartPalette); i++ {
		if seen[ColorForIndex(i)] {
			t.Errorf("color %s repeated inside one palette cycle", ColorForIndex(i))
		}
		seen[ColorForIndex(i)] = true
	}
}
