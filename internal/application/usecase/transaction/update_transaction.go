package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	reportCache     adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	reportCache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		reportCache:     reportCache,
	}
}

// Execute applies the provided fields to the transaction. A transaction
// belonging to another user is reported as not found, never as forbidden,
// so the response does not leak whether the ID exists.
func (uc *UpdateTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateTransactionInput,
) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if transaction == nil || transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingCategory,
				"category is required",
				domainerror.ErrMissingCategory,
			)
		}
		transaction.Category = *input.Category
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := uc.reportCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate report cache after transaction update",
			"userID", input.UserID,
			"error", err,
		)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
