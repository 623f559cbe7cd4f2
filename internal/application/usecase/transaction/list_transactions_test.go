package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

func seedTransactions(userID uuid.UUID, count int, base time.Time) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, &entity.Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      entity.TransactionTypeExpense,
			Amount:    decimal.NewFromInt(int64(i + 1)),
			Category:  "Food",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return transactions
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full page signals more data", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: seedTransactions(userID, 5, base)}
		useCase := NewListTransactionsUseCase(repo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: userID, Page: 0, PageSize: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(output.Transactions))
		}
		if !output.HasMore {
			t.Error("expected HasMore on a full page with remaining rows")
		}
		if !output.Transactions[0].CreatedAt.After(output.Transactions[1].CreatedAt) {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("short page ends the listing", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: seedTransactions(userID, 5, base)}
		useCase := NewListTransactionsUseCase(repo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: userID, Page: 2, PageSize: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction on the last page, got %d", len(output.Transactions))
		}
		if output.HasMore {
			t.Error("expected HasMore false on the last page")
		}
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: seedTransactions(userID, 3, base)}
		useCase := NewListTransactionsUseCase(repo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{
			UserID: userID, Page: 9, PageSize: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 0 || output.HasMore {
			t.Errorf("expected empty page, got %d transactions", len(output.Transactions))
		}
	})

	t.Run("zero page size selects the default", func(t *testing.T) {
		repo := &fakeTransactionRepository{transactions: seedTransactions(userID, DefaultPageSize+1, base)}
		useCase := NewListTransactionsUseCase(repo)

		output, err := useCase.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != DefaultPageSize {
			t.Errorf("expected the default page size, got %d", len(output.Transactions))
		}
	})

	t.Run("invalid pagination is rejected", func(t *testing.T) {
		useCase := NewListTransactionsUseCase(&fakeTransactionRepository{})

		tests := []ListTransactionsInput{
			{UserID: userID, Page: -1, PageSize: 10},
			{UserID: userID, Page: 0, PageSize: -5},
			{UserID: userID, Page: 0, PageSize: MaxPageSize + 1},
		}
		for _, input := range tests {
			if _, err := useCase.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidPagination) {
				t.Errorf("input %+v: expected ErrInvalidPagination, got %v", input, err)
			}
		}
	})
}
