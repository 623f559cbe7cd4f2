// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/budget"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// CreatedAt is optional; a zero value means "now". ConfirmOverBudget marks
// that the user has already seen the over-budget warning and wants the
// expense recorded anyway.
type CreateTransactionInput struct {
	UserID            uuid.UUID
	Type              entity.TransactionType
	Amount            decimal.Decimal
	Category          string
	CreatedAt         time.Time
	ConfirmOverBudget bool
}

// CreateTransactionOutput represents the output of transaction creation.
// When RequiresConfirmation is true nothing was persisted; BudgetWarning
// carries the numbers for the confirmation prompt.
type CreateTransactionOutput struct {
	Transaction          *entity.Transaction
	RequiresConfirmation bool
	BudgetWarning        *budget.Decision
}

// CreateTransactionUseCase handles transaction creation. Expenses are run
// through the budget check first; the check is advisory and an over-budget
// expense is persisted once the user confirms.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	checkBudget     *budget.CheckBudgetUseCase
	reportCache     adapter.ReportCache
	clock           func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	checkBudget *budget.CheckBudgetUseCase,
	reportCache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		checkBudget:     checkBudget,
		reportCache:     reportCache,
		clock:           time.Now,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = uc.clock().UTC()
	}

	var warning *budget.Decision
	if input.Type == entity.TransactionTypeExpense {
		decision, err := uc.checkBudget.Execute(ctx, budget.CheckBudgetInput{
			UserID:   input.UserID,
			Category: input.Category,
			Amount:   input.Amount,
			Year:     createdAt.UTC().Year(),
			Month:    int(createdAt.UTC().Month()),
		})
		if err != nil {
			return nil, err
		}
		if decision.Outcome == budget.OutcomeWouldExceed {
			warning = decision
			if !input.ConfirmOverBudget {
				return &CreateTransactionOutput{
					RequiresConfirmation: true,
					BudgetWarning:        decision,
				}, nil
			}
		}
	}

	transaction := entity.NewTransaction(input.UserID, input.Type, input.Amount, input.Category, createdAt)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Cached reports are stale the moment a transaction lands. Invalidation
	// failures are logged, not surfaced; the write already succeeded.
	if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate report cache after transaction create",
			"userID", input.UserID,
			"error", err,
		)
	}

	return &CreateTransactionOutput{
		Transaction:   transaction,
		BudgetWarning: warning,
	}, nil
}

// validateInput validates the input parameters.
func (uc *CreateTransactionUseCase) validateInput(input CreateTransactionInput) error {
	if !input.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if input.Category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	return nil
}
