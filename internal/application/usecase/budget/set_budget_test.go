package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

func TestSetBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a budget", func(t *testing.T) {
		repo := &fakeBudgetRepository{}
		useCase := NewSetBudgetUseCase(repo)

		output, err := useCase.Execute(context.Background(), SetBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.RequireFromString("500"),
			Year:     2024,
			Month:    3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.Category != "Food" || output.Budget.Month != 3 || output.Budget.Year != 2024 {
			t.Errorf("unexpected budget: %+v", output.Budget)
		}
		if len(repo.budgets) != 1 {
			t.Fatalf("expected 1 stored budget, got %d", len(repo.budgets))
		}
	})

	t.Run("saving the same key twice overwrites the amount", func(t *testing.T) {
		repo := &fakeBudgetRepository{}
		useCase := NewSetBudgetUseCase(repo)

		input := SetBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.RequireFromString("500"),
			Year:     2024,
			Month:    3,
		}
		if _, err := useCase.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input.Amount = decimal.RequireFromString("650")
		output, err := useCase.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.budgets) != 1 {
			t.Fatalf("expected the key to stay unique, got %d rows", len(repo.budgets))
		}
		if !output.Budget.Amount.Equal(decimal.RequireFromString("650")) {
			t.Errorf("expected amount 650 after overwrite, got %s", output.Budget.Amount)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		useCase := NewSetBudgetUseCase(&fakeBudgetRepository{})

		_, err := useCase.Execute(context.Background(), SetBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.Zero,
			Year:     2024,
			Month:    3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			input   SetBudgetInput
			wantErr error
		}{
			{
				name: "missing category",
				input: SetBudgetInput{
					UserID: userID, Amount: decimal.RequireFromString("100"), Year: 2024, Month: 3,
				},
				wantErr: domainerror.ErrMissingBudgetCategory,
			},
			{
				name: "month zero",
				input: SetBudgetInput{
					UserID: userID, Category: "Food", Amount: decimal.RequireFromString("100"), Year: 2024, Month: 0,
				},
				wantErr: domainerror.ErrInvalidBudgetMonth,
			},
			{
				name: "month thirteen",
				input: SetBudgetInput{
					UserID: userID, Category: "Food", Amount: decimal.RequireFromString("100"), Year: 2024, Month: 13,
				},
				wantErr: domainerror.ErrInvalidBudgetMonth,
			},
			{
				name: "negative amount",
				input: SetBudgetInput{
					UserID: userID, Category: "Food", Amount: decimal.RequireFromString("-1"), Year: 2024, Month: 3,
				},
				wantErr: domainerror.ErrNegativeBudgetAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				useCase := NewSetBudgetUseCase(&fakeBudgetRepository{})
				_, err := useCase.Execute(context.Background(), tt.input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})
}

func TestDeleteBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	budget := entity.NewBudget(userID, "Food", decimal.RequireFromString("500"), 2024, 3)
	repo := &fakeBudgetRepository{budgets: []*entity.Budget{budget}}

	useCase := NewDeleteBudgetUseCase(repo)
	err := useCase.Execute(context.Background(), DeleteBudgetInput{BudgetID: budget.ID, UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.budgets) != 0 {
		t.Errorf("expected budget to be removed, %d rows remain", len(repo.budgets))
	}
}
