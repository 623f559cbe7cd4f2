// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
// Anything else is a data error and must never be silently bucketed.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single financial transaction in My Wallet.
// The category is a free-text, user-entered label; it is stored and matched
// exactly as entered (case-sensitive, no trimming).
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal // Always non-negative; Type carries the sign semantics.
	Category  string
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity stamped at the given time.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		CreatedAt: createdAt,
	}
}
