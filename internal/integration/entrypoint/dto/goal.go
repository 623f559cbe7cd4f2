package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for saving goal creation.
type CreateGoalRequest struct {
	GoalName     string          `json:"goal_name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
}

// UpdateGoalRequest represents the request body for saving goal update.
type UpdateGoalRequest struct {
	GoalName     string          `json:"goal_name" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
}

// ContributionRequest represents the request body for a goal contribution.
type ContributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a single saving goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	GoalName      string          `json:"goal_name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Progress      float64         `json:"progress"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GoalListResponse represents the response for listing saving goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain SavingGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingGoal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		GoalName:      g.GoalName,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Progress:      g.Progress(),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalListResponse converts a list of goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.SavingGoal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}
