package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/domain/entity"
	domainerror "github.com/my-wallet/backend/internal/domain/error"
)

const (
	// DefaultPageSize is used when the caller does not specify a page size.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100
)

// ListTransactionsInput represents the input for listing transactions.
// Page is zero-based. A PageSize of zero selects the default.
type ListTransactionsInput struct {
	UserID   uuid.UUID
	Page     int
	PageSize int
}

// ListTransactionsOutput represents one page of a user's history, newest
// first. HasMore tells the client whether another page exists.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	HasMore      bool
}

// ListTransactionsUseCase handles paginated transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves one page of the user's transactions ordered by creation
// time descending. A page past the end of the data returns an empty list,
// not an error.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	if input.Page < 0 || pageSize < 0 || pageSize > MaxPageSize {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPagination,
			fmt.Sprintf("page must be >= 0 and page size between 1 and %d", MaxPageSize),
			domainerror.ErrInvalidPagination,
		)
	}

	page, err := uc.transactionRepo.FindPage(ctx, input.UserID, input.Page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: page.Transactions,
		HasMore:      page.HasMore,
	}, nil
}
