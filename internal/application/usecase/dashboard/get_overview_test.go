package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
)

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	rangeCalls   [][2]time.Time
}

func (f *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, transaction := range f.transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepository) FindByUserAndRange(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Transaction, error) {
	f.rangeCalls = append(f.rangeCalls, [2]time.Time{start, end})
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
	var owned []*entity.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID == userID {
			owned = append(owned, transaction)
		}
	}
	for i := 0; i < len(owned); i++ {
		for j := i + 1; j < len(owned); j++ {
			if owned[j].CreatedAt.After(owned[i].CreatedAt) {
				owned[i], owned[j] = owned[j], owned[i]
			}
		}
	}
	offset := page * pageSize
	if offset >= len(owned) {
		return &adapter.TransactionPage{Transactions: nil, HasMore: false}, nil
	}
	end := offset + pageSize
	hasMore := end < len(owned)
	if end > len(owned) {
		end = len(owned)
	}
	return &adapter.TransactionPage{Transactions: owned[offset:end], HasMore: hasMore}, nil
}

func (f *fakeTransactionRepository) SumExpensesByCategory(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	start, end time.Time,
) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, transaction := range f.transactions {
		if transaction.UserID != userID ||
			transaction.Type != entity.TransactionTypeExpense ||
			transaction.Category != category {
			continue
		}
		if transaction.CreatedAt.Before(start) || !transaction.CreatedAt.Before(end) {
			continue
		}
		sum = sum.Add(transaction.Amount)
	}
	return sum, nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	for i, existing := range f.transactions {
		if existing.ID == transaction.ID {
			f.transactions[i] = transaction
		}
	}
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, existing := range f.transactions {
		if existing.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestGetOverviewUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	repo := &fakeTransactionRepository{
		transactions: []*entity.Transaction{
			{
				ID: uuid.New(), UserID: userID,
				Type: entity.TransactionTypeIncome, Amount: decimal.RequireFromString("3000"),
				Category: "Salary", CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
			},
			{
				ID: uuid.New(), UserID: userID,
				Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("120"),
				Category: "Food", CreatedAt: time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC),
			},
			// Previous month, outside both the totals and the trailing week.
			{
				ID: uuid.New(), UserID: userID,
				Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("80"),
				Category: "Transport", CreatedAt: time.Date(2024, time.February, 28, 10, 0, 0, 0, time.UTC),
			},
			// Another user's transaction, never visible.
			{
				ID: uuid.New(), UserID: uuid.New(),
				Type: entity.TransactionTypeExpense, Amount: decimal.RequireFromString("999"),
				Category: "Food", CreatedAt: time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC),
			},
		},
	}

	useCase := NewGetOverviewUseCase(repo)
	useCase.clock = func() time.Time { return now }

	output, err := useCase.Execute(context.Background(), GetOverviewInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Totals.Income.Equal(decimal.RequireFromString("3000")) {
		t.Errorf("expected month income 3000, got %s", output.Totals.Income)
	}
	if !output.Totals.Expense.Equal(decimal.RequireFromString("120")) {
		t.Errorf("expected month expense 120, got %s", output.Totals.Expense)
	}

	if len(output.WeeklySpending) != 7 {
		t.Fatalf("expected 7 weekly buckets, got %d", len(output.WeeklySpending))
	}
	// March 9 at 19:00 is 17 hours before the reference, so it lands in the
	// last bucket even though it is the previous calendar day.
	if !output.WeeklySpending[6].Total.Equal(decimal.RequireFromString("120")) {
		t.Errorf("expected 120 in bucket 6, got %s", output.WeeklySpending[6].Total)
	}

	if len(repo.rangeCalls) != 2 {
		t.Fatalf("expected 2 range queries, got %d", len(repo.rangeCalls))
	}
	weekWindow := repo.rangeCalls[1]
	if !weekWindow[0].Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("expected week window to start 7 days before now, got %s", weekWindow[0])
	}
	if weekWindow[1].Before(now) {
		t.Errorf("expected week window to include now, got end %s", weekWindow[1])
	}

	if len(output.RecentTransactions) != 3 {
		t.Fatalf("expected 3 recent transactions, got %d", len(output.RecentTransactions))
	}
	if !output.RecentTransactions[0].CreatedAt.After(output.RecentTransactions[1].CreatedAt) {
		t.Error("expected recent transactions ordered newest first")
	}
}
