package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	rangeCalls   int
}

func (f *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) FindByUserAndRange(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Transaction, error) {
	f.rangeCalls++
	var result []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID != userID {
			continue
		}
		if transaction.CreatedAt.Before(start) || !transaction.CreatedAt.Before(end) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

func (f *fakeTransactionRepository) FindPage(
	ctx context.Context,
	userID uuid.UUID,
	page, pageSize int,
) (*adapter.TransactionPage, error) {
	return &adapter.TransactionPage{}, nil
}

func (f *fakeTransactionRepository) SumExpensesByCategory(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	start, end time.Time,
) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeReportCache struct {
	store    map[string][]byte
	getErr   error
	setCalls int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{store: make(map[string][]byte)}
}

func (f *fakeReportCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store[userID.String()+":"+key], nil
}

func (f *fakeReportCache) Set(ctx context.Context, userID uuid.UUID, key string, payload []byte) error {
	f.setCalls++
	f.store[userID.String()+":"+key] = payload
	return nil
}

func (f *fakeReportCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	for key := range f.store {
		delete(f.store, key)
	}
	return nil
}

func TestGetReportUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	newUseCase := func(repo *fakeTransactionRepository, cache *fakeReportCache) *GetReportUseCase {
		useCase := NewGetReportUseCase(repo, cache)
		useCase.clock = func() time.Time { return now }
		return useCase
	}

	t.Run("builds a three month report", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			transactionIn(userID, entity.TransactionTypeIncome, "3000", "Salary", 2024, time.January, 5),
			transactionIn(userID, entity.TransactionTypeExpense, "200", "Food", 2024, time.February, 10),
			transactionIn(userID, entity.TransactionTypeExpense, "150", "Food", 2024, time.March, 5),
			// Outside the window.
			transactionIn(userID, entity.TransactionTypeExpense, "999", "Food", 2023, time.December, 20),
		}}
		useCase := newUseCase(repo, newFakeReportCache())

		output, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FromCache {
			t.Error("expected a cold build")
		}
		if len(output.Report.Trend) != 3 {
			t.Fatalf("expected 3 trend points, got %d", len(output.Report.Trend))
		}
		if output.Report.Trend[0].Label != "Jan" {
			t.Errorf("expected the window to start in Jan, got %s", output.Report.Trend[0].Label)
		}
		if !output.Report.Totals.Expense.Equal(decimal.RequireFromString("350")) {
			t.Errorf("expected expense 350 inside the window, got %s", output.Report.Totals.Expense)
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			transactionIn(userID, entity.TransactionTypeExpense, "100", "Food", 2024, time.March, 5),
		}}
		cache := newFakeReportCache()
		useCase := newUseCase(repo, cache)

		first, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		callsAfterBuild := repo.rangeCalls

		second, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.FromCache {
			t.Error("expected the second call to hit the cache")
		}
		if repo.rangeCalls != callsAfterBuild {
			t.Error("expected no repository reads on a cache hit")
		}
		if !second.Report.Totals.Expense.Equal(first.Report.Totals.Expense) {
			t.Error("expected the cached report to match the built one")
		}
	})

	t.Run("cache failure falls through to a rebuild", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			transactionIn(userID, entity.TransactionTypeExpense, "100", "Food", 2024, time.March, 5),
		}}
		cache := newFakeReportCache()
		cache.getErr = errors.New("redis down")
		useCase := newUseCase(repo, cache)

		output, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1})
		if err != nil {
			t.Fatalf("expected the report despite the cache failure, got %v", err)
		}
		if output.FromCache {
			t.Error("expected a rebuild when the cache is down")
		}
	})

	t.Run("cached report does not survive a month rollover", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			transactionIn(userID, entity.TransactionTypeExpense, "100", "Food", 2024, time.March, 5),
		}}
		cache := newFakeReportCache()
		useCase := NewGetReportUseCase(repo, cache)
		current := now
		useCase.clock = func() time.Time { return current }

		if _, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		current = time.Date(2024, time.April, 1, 0, 30, 0, 0, time.UTC)
		output, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FromCache {
			t.Error("expected a rebuild in the new month, not March's cached report")
		}
		if !output.Report.Totals.Expense.IsZero() {
			t.Errorf("expected April's window to exclude March spending, got %s", output.Report.Totals.Expense)
		}
	})

	t.Run("different windows use different cache keys", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		cache := newFakeReportCache()
		useCase := newUseCase(repo, cache)

		if _, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.setCalls != 2 {
			t.Errorf("expected 2 cache writes, got %d", cache.setCalls)
		}
	})

	t.Run("unsupported windows are rejected", func(t *testing.T) {
		useCase := newUseCase(&fakeTransactionRepository{}, newFakeReportCache())

		for _, months := range []int{0, 2, 12, -1} {
			_, err := useCase.Execute(context.Background(), GetReportInput{UserID: userID, Months: months})
			if !errors.Is(err, domainerror.ErrUnsupportedReportPeriod) {
				t.Errorf("months=%d: expected ErrUnsupportedReportPeriod, got %v", months, err)
			}
		}
	})
}
