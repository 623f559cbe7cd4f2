// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/my-wallet/backend/config"
	"github.com/my-wallet/backend/internal/infra/dependency"
	"github.com/my-wallet/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string
	userID      uuid.UUID

	// Captured IDs for path substitution
	lastTransactionID string
	lastBudgetID      string
	lastGoalID        string

	// Dependencies
	db        *mock.Db
	assistant *mock.Assistant
	cfg       *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

var sharedAssistant = mock.NewAssistant()

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
		os.Setenv("JWT_SECRET", "integration-test-secret")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		db := mock.NewDb()
		redisClient := mock.NewRedis()

		if err := db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}
		sharedAssistant.Reset()

		injector := dependency.NewInjector(cfg, db.DbConn, redisClient, sharedAssistant)
		engine := injector.Router.Setup("test")

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			userID:         uuid.New(),
			db:             db,
			assistant:      sharedAssistant,
			cfg:            cfg,
			engine:         engine,
			server:         httptest.NewServer(engine),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerWalletSteps(ctx)
}

// signToken mints a bearer token the way the external identity provider does.
func (tc *TestContext) signToken(userID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   time.Now().Add(1 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tc.cfg.Auth.JWTSecret))
}
