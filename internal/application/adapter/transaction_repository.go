// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// TransactionPage holds one page of a user's transaction history.
// A page shorter than the requested size signals the end of the data set.
type TransactionPage struct {
	Transactions []*entity.Transaction
	HasMore      bool
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserAndRange retrieves all transactions for a user with
	// start <= created_at < end. The upper bound is exclusive so that a
	// transaction dated exactly at a month boundary is counted once.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindPage retrieves one page of a user's transactions ordered by
	// created_at descending. Page numbering is zero-based.
	FindPage(ctx context.Context, userID uuid.UUID, page, pageSize int) (*TransactionPage, error)

	// SumExpensesByCategory returns the total expense amount for an exact
	// category label within [start, end). The label is matched case-sensitively.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. Deleting a transaction never adjusts
	// budgets or saving goals that reference its category.
	Delete(ctx context.Context, id uuid.UUID) error
}
