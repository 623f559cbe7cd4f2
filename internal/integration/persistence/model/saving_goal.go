package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// SavingGoalModel represents the saving_goals table in the database.
type SavingGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalName      string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "saving_goals"
}

// ToEntity converts a SavingGoalModel to a domain SavingGoal entity.
func (m *SavingGoalModel) ToEntity() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		GoalName:      m.GoalName,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		CreatedAt:     m.CreatedAt,
	}
}

// SavingGoalFromEntity creates a SavingGoalModel from a domain SavingGoal entity.
func SavingGoalFromEntity(goal *entity.SavingGoal) *SavingGoalModel {
	return &SavingGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		GoalName:      goal.GoalName,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		CreatedAt:     goal.CreatedAt,
	}
}
