package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

func newTestTransaction(
	transactionType entity.TransactionType,
	amount string,
	category string,
	createdAt time.Time,
) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      transactionType,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		CreatedAt: createdAt,
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("sums income and expense separately", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeIncome, "5000", "Salary", now),
			newTestTransaction(entity.TransactionTypeExpense, "120.50", "Food", now),
			newTestTransaction(entity.TransactionTypeExpense, "79.50", "Transport", now),
		}

		totals, err := Summarize(transactions)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.Equal(decimal.RequireFromString("5000")) {
			t.Errorf("expected income 5000, got %s", totals.Income)
		}
		if !totals.Expense.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected expense 200, got %s", totals.Expense)
		}
		if !totals.Balance().Equal(decimal.RequireFromString("4800")) {
			t.Errorf("expected balance 4800, got %s", totals.Balance())
		}
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		totals, err := Summarize(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.IsZero() || !totals.Expense.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s", totals.Income, totals.Expense)
		}
	})

	t.Run("unknown type fails the aggregation", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeIncome, "100", "Salary", now),
			newTestTransaction(entity.TransactionType("transfer"), "50", "Misc", now),
		}

		_, err := Summarize(transactions)
		if !errors.Is(err, domainerror.ErrUnknownTransactionType) {
			t.Errorf("expected ErrUnknownTransactionType, got %v", err)
		}
	})
}

func TestSpendByCategory(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("groups by exact label in first-seen order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeExpense, "30", "Food", now),
			newTestTransaction(entity.TransactionTypeExpense, "15", "Transport", now),
			newTestTransaction(entity.TransactionTypeExpense, "20", "Food", now),
		}

		spend := SpendByCategory(transactions)
		if len(spend) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(spend))
		}
		if spend[0].Category != "Food" || !spend[0].Amount.Equal(decimal.RequireFromString("50")) {
			t.Errorf("expected Food=50 first, got %s=%s", spend[0].Category, spend[0].Amount)
		}
		if spend[1].Category != "Transport" || !spend[1].Amount.Equal(decimal.RequireFromString("15")) {
			t.Errorf("expected Transport=15 second, got %s=%s", spend[1].Category, spend[1].Amount)
		}
	})

	t.Run("labels are case-sensitive", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeExpense, "10", "Food", now),
			newTestTransaction(entity.TransactionTypeExpense, "10", "food", now),
		}

		spend := SpendByCategory(transactions)
		if len(spend) != 2 {
			t.Fatalf("expected 'Food' and 'food' to stay distinct, got %d categories", len(spend))
		}
	})

	t.Run("income is ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeIncome, "5000", "Salary", now),
			newTestTransaction(entity.TransactionTypeExpense, "10", "Food", now),
		}

		spend := SpendByCategory(transactions)
		if len(spend) != 1 || spend[0].Category != "Food" {
			t.Fatalf("expected only Food, got %+v", spend)
		}
	})
}

func TestWeeklyExpenseBuckets(t *testing.T) {
	// Sunday.
	reference := time.Date(2024, time.March, 10, 18, 30, 0, 0, time.UTC)

	t.Run("places transactions by whole elapsed days", func(t *testing.T) {
		transactions := []*entity.Transaction{
			// Reference day itself, last bucket.
			newTestTransaction(entity.TransactionTypeExpense, "25", "Food", reference.Add(-2*time.Hour)),
			// Six days before, first bucket.
			newTestTransaction(entity.TransactionTypeExpense, "40", "Food", reference.AddDate(0, 0, -6)),
			// Three days before.
			newTestTransaction(entity.TransactionTypeExpense, "10", "Transport", reference.AddDate(0, 0, -3)),
		}

		buckets := WeeklyExpenseBuckets(transactions, reference)
		if len(buckets) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(buckets))
		}
		if !buckets[6].Total.Equal(decimal.RequireFromString("25")) {
			t.Errorf("expected 25 in the reference-day bucket, got %s", buckets[6].Total)
		}
		if !buckets[0].Total.Equal(decimal.RequireFromString("40")) {
			t.Errorf("expected 40 in the oldest bucket, got %s", buckets[0].Total)
		}
		if !buckets[3].Total.Equal(decimal.RequireFromString("10")) {
			t.Errorf("expected 10 three days back, got %s", buckets[3].Total)
		}
	})

	t.Run("elapsed days are counted on raw timestamps, not calendar days", func(t *testing.T) {
		morning := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
		transactions := []*entity.Transaction{
			// 13 hours ago, the previous calendar day: still the last bucket.
			newTestTransaction(entity.TransactionTypeExpense, "10", "Food", morning.Add(-13*time.Hour)),
			// 25 hours ago: one bucket earlier.
			newTestTransaction(entity.TransactionTypeExpense, "20", "Food", morning.Add(-25*time.Hour)),
		}

		buckets := WeeklyExpenseBuckets(transactions, morning)
		if !buckets[6].Total.Equal(decimal.RequireFromString("10")) {
			t.Errorf("expected 10 within the last 24 hours, got %s", buckets[6].Total)
		}
		if !buckets[5].Total.Equal(decimal.RequireFromString("20")) {
			t.Errorf("expected 20 between 24 and 48 hours, got %s", buckets[5].Total)
		}
	})

	t.Run("future-dated within a day is skipped, not rounded in", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeExpense, "99", "Food", reference.Add(30*time.Minute)),
		}

		buckets := WeeklyExpenseBuckets(transactions, reference)
		if !buckets[6].Total.IsZero() {
			t.Errorf("expected future transaction to be skipped, got %s", buckets[6].Total)
		}
	})

	t.Run("labels follow the weekday of each bucket", func(t *testing.T) {
		buckets := WeeklyExpenseBuckets(nil, reference)

		wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		for i, want := range wantLabels {
			if buckets[i].Label != want {
				t.Errorf("bucket %d: expected label %s, got %s", i, want, buckets[i].Label)
			}
		}
	})

	t.Run("skips transactions outside the window", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeExpense, "99", "Food", reference.AddDate(0, 0, -7)),
			newTestTransaction(entity.TransactionTypeExpense, "99", "Food", reference.AddDate(0, 0, 1)),
		}

		buckets := WeeklyExpenseBuckets(transactions, reference)
		for i, bucket := range buckets {
			if !bucket.Total.IsZero() {
				t.Errorf("bucket %d: expected zero, got %s", i, bucket.Total)
			}
		}
	})

	t.Run("skips income", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(entity.TransactionTypeIncome, "500", "Salary", reference),
		}

		buckets := WeeklyExpenseBuckets(transactions, reference)
		if !buckets[6].Total.IsZero() {
			t.Errorf("expected income to be skipped, got %s", buckets[6].Total)
		}
	})
}
