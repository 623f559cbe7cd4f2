package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. The composite
// unique index backs the upsert: one budget per user, category and month.
type BudgetModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_period"`
	Category string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_budgets_user_category_period"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Year     int             `gorm:"not null;uniqueIndex:idx_budgets_user_category_period"`
	Month    int             `gorm:"not null;uniqueIndex:idx_budgets_user_category_period"` // 1-12
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:       m.ID,
		UserID:   m.UserID,
		Category: m.Category,
		Amount:   m.Amount,
		Year:     m.Year,
		Month:    m.Month,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:       budget.ID,
		UserID:   budget.UserID,
		Category: budget.Category,
		Amount:   budget.Amount,
		Year:     budget.Year,
		Month:    budget.Month,
	}
}
