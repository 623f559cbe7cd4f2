package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/usecase/budget"
	"github.com/my-wallet/backend/internal/application/usecase/transaction"
	"github.com/my-wallet/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type              string          `json:"type" binding:"required,oneof=expense income"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	CreatedAt         *time.Time      `json:"created_at,omitempty"`
	ConfirmOverBudget bool            `json:"confirm_over_budget,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type     *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateTransactionResponse represents the response for transaction creation.
// Transaction is null when the budget check asked for confirmation.
type CreateTransactionResponse struct {
	Transaction          *TransactionResponse   `json:"transaction"`
	RequiresConfirmation bool                   `json:"requires_confirmation"`
	BudgetWarning        *BudgetWarningResponse `json:"budget_warning,omitempty"`
}

// BudgetWarningResponse carries the numbers for an over-budget prompt.
type BudgetWarningResponse struct {
	Outcome      string          `json:"outcome"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	AlreadySpent decimal.Decimal `json:"already_spent"`
	OverBy       decimal.Decimal `json:"over_by"`
}

// TransactionListResponse represents one page of a user's history.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	HasMore      bool                  `json:"has_more"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		Type:      string(t.Type),
		Amount:    t.Amount,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}

// ToBudgetWarningResponse converts a budget Decision to a BudgetWarningResponse DTO.
func ToBudgetWarningResponse(d *budget.Decision) *BudgetWarningResponse {
	if d == nil {
		return nil
	}
	return &BudgetWarningResponse{
		Outcome:      string(d.Outcome),
		BudgetAmount: d.BudgetAmount,
		AlreadySpent: d.AlreadySpent,
		OverBy:       d.OverBy,
	}
}

// ToCreateTransactionResponse converts a CreateTransactionOutput to its DTO.
func ToCreateTransactionResponse(output *transaction.CreateTransactionOutput) CreateTransactionResponse {
	response := CreateTransactionResponse{
		RequiresConfirmation: output.RequiresConfirmation,
		BudgetWarning:        ToBudgetWarningResponse(output.BudgetWarning),
	}
	if output.Transaction != nil {
		t := ToTransactionResponse(output.Transaction)
		response.Transaction = &t
	}
	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		HasMore:      output.HasMore,
	}
}
