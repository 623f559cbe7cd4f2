// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal represents a savings target in My Wallet. CurrentAmount starts
// at zero and only ever grows through contributions, which are applied as a
// single atomic increment on the server side. Deleting a goal never touches
// the transactions that funded it.
type SavingGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GoalName      string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	CreatedAt     time.Time
}

// NewSavingGoal creates a new SavingGoal entity with a zero current amount.
func NewSavingGoal(userID uuid.UUID, goalName string, targetAmount decimal.Decimal, createdAt time.Time) *SavingGoal {
	return &SavingGoal{
		ID:            uuid.New(),
		UserID:        userID,
		GoalName:      goalName,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		CreatedAt:     createdAt,
	}
}

// Progress returns current/target as a ratio in [0, ...). A zero target
// yields 0 rather than a division error.
func (g *SavingGoal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Round(4).Float64()
	return ratio
}
