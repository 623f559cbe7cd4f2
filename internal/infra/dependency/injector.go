// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/my-wallet/backend/config"
	"github.com/my-wallet/backend/internal/application/adapter"
	"github.com/my-wallet/backend/internal/application/usecase/assistant"
	"github.com/my-wallet/backend/internal/application/usecase/budget"
	"github.com/my-wallet/backend/internal/application/usecase/dashboard"
	"github.com/my-wallet/backend/internal/application/usecase/goal"
	"github.com/my-wallet/backend/internal/application/usecase/report"
	"github.com/my-wallet/backend/internal/application/usecase/transaction"
	"github.com/my-wallet/backend/internal/infra/server/router"
	"github.com/my-wallet/backend/internal/integration/adapters"
	"github.com/my-wallet/backend/internal/integration/cache"
	"github.com/my-wallet/backend/internal/integration/entrypoint/controller"
	"github.com/my-wallet/backend/internal/integration/entrypoint/middleware"
	"github.com/my-wallet/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The assistant service is passed in so tests can substitute a stub for the
// Gemini-backed implementation.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	assistantService adapter.AssistantService,
) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	reportCache := cache.NewReportCache(redisClient, cfg.Cache.ReportTTL)
	tokenVerifier := adapters.NewTokenVerifier(cfg.Auth.JWTSecret)
	if assistantService == nil {
		assistantService = adapters.NewGeminiAssistant(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}

	// Create budget use cases
	checkBudgetUseCase := budget.NewCheckBudgetUseCase(budgetRepo, transactionRepo)
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, checkBudgetUseCase, reportCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeToGoalUseCase := goal.NewContributeToGoalUseCase(goalRepo)

	// Create dashboard, report and assistant use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo)
	getReportUseCase := report.NewGetReportUseCase(transactionRepo, reportCache)
	sendMessageUseCase := assistant.NewSendMessageUseCase(assistantService)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
		checkBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeToGoalUseCase,
	)

	dashboardController := controller.NewDashboardController(getOverviewUseCase)
	reportController := controller.NewReportController(getReportUseCase)
	assistantController := controller.NewAssistantController(sendMessageUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var assistantRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		assistantRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		assistantRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		budgetController,
		goalController,
		dashboardController,
		reportController,
		assistantController,
		assistantRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
