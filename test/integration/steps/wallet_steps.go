package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/my-wallet/backend/internal/domain/entity"
	"github.com/my-wallet/backend/internal/integration/persistence"
)

// registerWalletSteps registers domain seeding and assistant control steps.
func registerWalletSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have an? (expense|income) of "([^"]*)" in category "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have an? (expense|income) of "([^"]*)" in category "([^"]*)" created at "([^"]*)"$`, iHaveATransactionCreatedAt)
	ctx.Step(`^another user has an? (expense|income) of "([^"]*)" in category "([^"]*)"$`, anotherUserHasATransaction)
	ctx.Step(`^I have a budget of "([^"]*)" for "([^"]*)" in (\d+)-(\d+)$`, iHaveABudget)
	ctx.Step(`^I have a saving goal "([^"]*)" with target "([^"]*)"$`, iHaveASavingGoal)
	ctx.Step(`^the assistant replies with "([^"]*)"$`, theAssistantRepliesWith)
	ctx.Step(`^the assistant is not configured$`, theAssistantIsNotConfigured)
}

func (tc *TestContext) seedTransaction(userID uuid.UUID, transactionType, amount, category string, createdAt time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	tx := entity.NewTransaction(userID, entity.TransactionType(transactionType), value, category, createdAt)
	repo := persistence.NewTransactionRepository(tc.db.DbConn)
	if err := repo.Create(context.Background(), tx); err != nil {
		return fmt.Errorf("failed to seed transaction: %w", err)
	}
	tc.lastTransactionID = tx.ID.String()
	return nil
}

func iHaveATransaction(ctx context.Context, transactionType, amount, category string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedTransaction(tc.userID, transactionType, amount, category, time.Now().UTC()); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveATransactionCreatedAt(ctx context.Context, transactionType, amount, category, createdAt string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	when, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ctx, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	if err := tc.seedTransaction(tc.userID, transactionType, amount, category, when); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func anotherUserHasATransaction(ctx context.Context, transactionType, amount, category string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.seedTransaction(uuid.New(), transactionType, amount, category, time.Now().UTC()); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveABudget(ctx context.Context, amount, category string, year, month int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	repo := persistence.NewBudgetRepository(tc.db.DbConn)
	saved, err := repo.Upsert(context.Background(), entity.NewBudget(tc.userID, category, value, year, month))
	if err != nil {
		return ctx, fmt.Errorf("failed to seed budget: %w", err)
	}
	tc.lastBudgetID = saved.ID.String()
	return SetTestContext(ctx, tc), nil
}

func iHaveASavingGoal(ctx context.Context, goalName, target string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := decimal.NewFromString(target)
	if err != nil {
		return ctx, fmt.Errorf("invalid target %q: %w", target, err)
	}

	goal := entity.NewSavingGoal(tc.userID, goalName, value, time.Now().UTC())
	repo := persistence.NewGoalRepository(tc.db.DbConn)
	if err := repo.Create(context.Background(), goal); err != nil {
		return ctx, fmt.Errorf("failed to seed saving goal: %w", err)
	}
	tc.lastGoalID = goal.ID.String()
	return SetTestContext(ctx, tc), nil
}

func theAssistantRepliesWith(ctx context.Context, reply string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.SetReply(reply)
	return nil
}

func theAssistantIsNotConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.assistant.SetAvailable(false)
	return nil
}
