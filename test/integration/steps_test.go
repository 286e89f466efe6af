//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tax-planner/backend/config"
	authusecase "github.com/tax-planner/backend/internal/application/usecase/auth"
	historyusecase "github.com/tax-planner/backend/internal/application/usecase/history"
	taxusecase "github.com/tax-planner/backend/internal/application/usecase/tax"
	"github.com/tax-planner/backend/internal/infra/server/router"
	"github.com/tax-planner/backend/internal/integration/adapters"
	"github.com/tax-planner/backend/internal/integration/entrypoint/controller"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/tax-planner/backend/internal/integration/persistence"
	"github.com/tax-planner/backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server *httptest.Server
	sqlDB  *sql.DB

	response     *http.Response
	responseBody []byte

	// Tokens issued through the register step, keyed by username.
	tokens      map[string]string
	accessToken string

	// Values captured from responses, usable as ${name} in endpoints.
	captured map[string]string
}

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

// newTestApp wires the full application against a fresh in-memory
// database and returns it behind an httptest server.
func newTestApp() (*httptest.Server, *sql.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	// Each pooled connection to an in-memory sqlite database gets its own
	// empty database, so pin the pool to a single connection.
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.UserModel{}, &model.TaxCalculationModel{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate: %w", err)
	}

	userRepo := persistence.NewUserRepository(gdb)
	calculationRepo := persistence.NewTaxCalculationRepository(gdb)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-test-secret")

	registerUseCase := authusecase.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := authusecase.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getUserUseCase := authusecase.NewGetUserUseCase(userRepo)
	deleteAccountUseCase := authusecase.NewDeleteAccountUseCase(userRepo, passwordService)
	calculateUseCase := taxusecase.NewCalculateTaxUseCase(calculationRepo)
	compareUseCase := taxusecase.NewCompareRegimesUseCase()
	slabsUseCase := taxusecase.NewSlabBreakdownUseCase()
	listHistoryUseCase := historyusecase.NewListHistoryUseCase(calculationRepo)
	deleteCalculationUseCase := historyusecase.NewDeleteCalculationUseCase(calculationRepo)

	r := router.NewRouter(
		&config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		controller.NewHealthController(func() bool { return true }),
		controller.NewAuthController(registerUseCase, loginUseCase),
		controller.NewUserController(getUserUseCase, deleteAccountUseCase),
		controller.NewTaxController(calculateUseCase, compareUseCase, slabsUseCase),
		controller.NewHistoryController(listHistoryUseCase, deleteCalculationUseCase),
		middleware.NewRateLimiterWithConfig(1000, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)
	engine := r.Setup("test")

	return httptest.NewServer(engine), sqlDB, nil
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		server, sqlDB, err := newTestApp()
		if err != nil {
			return ctx, err
		}
		tc := &TestContext{
			server:   server,
			sqlDB:    sqlDB,
			tokens:   make(map[string]string),
			captured: make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.sqlDB != nil {
				_ = tc.sqlDB.Close()
			}
		}
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I capture the response field "([^"]*)" as "([^"]*)"$`, iCaptureTheResponseFieldAs)

	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmRegisteredAsWithPassword(ctx context.Context, username, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	resp, err := http.Post(tc.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("failed to register %s: %w", username, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration of %s failed with status %d: %s", username, resp.StatusCode, string(respBody))
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}
	if auth.AccessToken == "" {
		return ctx, fmt.Errorf("registration of %s returned no access token", username)
	}

	tc.tokens[username] = auth.AccessToken
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticatedAs(ctx context.Context, username string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	token, ok := tc.tokens[username]
	if !ok {
		return ctx, fmt.Errorf("user %s has not been registered in this scenario", username)
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, strings.NewReader(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	// Substitute ${name} placeholders with previously captured values.
	for name, value := range tc.captured {
		endpoint = strings.ReplaceAll(endpoint, "${"+name+"}", value)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iCaptureTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, ok := responseField(tc, field)
	if !ok {
		return ctx, fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	tc.captured[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok := responseField(tc, field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, ok := responseField(tc, field); !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok := responseField(tc, field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(list) != expected {
		return fmt.Errorf("list '%s' expected %d items, got %d. Body: %s", field, expected, len(list), string(tc.responseBody))
	}
	return nil
}

// responseField resolves a dot-separated path in the response body.
// Numeric path segments index into arrays.
func responseField(tc *TestContext, path string) (interface{}, bool) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, false
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			value, ok := v[part]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current = v[index]
		default:
			return nil, false
		}
	}
	return current, true
}
