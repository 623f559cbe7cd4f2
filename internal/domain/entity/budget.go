// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending cap for a single category.
// A budget is uniquely identified by (user_id, category, year, month);
// saving a budget for an existing key overwrites the amount rather than
// creating a duplicate row. Month is stored 1-based (1 = January), the
// convention used by the budget forms and the budgets table.
type Budget struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal // The cap; non-negative.
	Month    int             // 1-12
	Year     int
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, amount decimal.Decimal, year, month int) *Budget {
	return &Budget{
		ID:       uuid.New(),
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}
}

// BudgetWithSpending pairs a budget with the amount already spent in its
// category for the budget's month. Derived on demand, never persisted.
type BudgetWithSpending struct {
	Budget      *Budget
	SpentAmount decimal.Decimal
}

// Remaining returns the budget amount minus the spent amount. It can be
// negative when the category is over budget.
func (b *BudgetWithSpending) Remaining() decimal.Decimal {
	return b.Budget.Amount.Sub(b.SpentAmount)
}

// Progress returns spent/cap as a percentage. A zero cap yields 0, never
// a division error.
func (b *BudgetWithSpending) Progress() float64 {
	if !b.Budget.Amount.IsPositive() {
		return 0
	}
	pct, _ := b.SpentAmount.Div(b.Budget.Amount).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}
