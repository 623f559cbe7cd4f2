package dto

import (
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/budget"
	"github.com/my-wallet/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for creating or replacing a
// budget. Month is 1-based.
type SetBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Year     int             `json:"year" binding:"required"`
	Month    int             `json:"month" binding:"required,min=1,max=12"`
}

// CheckBudgetRequest represents the request body for a pre-spend budget check.
type CheckBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Year     int             `json:"year" binding:"required"`
	Month    int             `json:"month" binding:"required,min=1,max=12"`
}

// BudgetResponse represents a single budget in API responses, joined with
// the spending recorded under its category.
type BudgetResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
	Remaining   decimal.Decimal `json:"remaining"`
	Progress    float64         `json:"progress"`
}

// SetBudgetResponse represents the saved budget returned by the upsert
// endpoint.
type SetBudgetResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget joined with its spending to a DTO.
func ToBudgetResponse(b *entity.BudgetWithSpending) BudgetResponse {
	return BudgetResponse{
		ID:          b.Budget.ID.String(),
		Category:    b.Budget.Category,
		Amount:      b.Budget.Amount,
		Year:        b.Budget.Year,
		Month:       b.Budget.Month,
		SpentAmount: b.SpentAmount,
		Remaining:   b.Remaining(),
		Progress:    b.Progress(),
	}
}

// ToSetBudgetResponse converts a saved budget to its DTO.
func ToSetBudgetResponse(b *entity.Budget) SetBudgetResponse {
	return SetBudgetResponse{
		ID:       b.ID.String(),
		Category: b.Category,
		Amount:   b.Amount,
		Year:     b.Year,
		Month:    b.Month,
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to its DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: budgets}
}
