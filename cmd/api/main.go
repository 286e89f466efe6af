// Package main is the entry point for the Tax Planner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tax-planner/backend/config"
	authusecase "github.com/tax-planner/backend/internal/application/usecase/auth"
	historyusecase "github.com/tax-planner/backend/internal/application/usecase/history"
	taxusecase "github.com/tax-planner/backend/internal/application/usecase/tax"
	"github.com/tax-planner/backend/internal/infra/db"
	"github.com/tax-planner/backend/internal/infra/server/router"
	"github.com/tax-planner/backend/internal/integration/adapters"
	"github.com/tax-planner/backend/internal/integration/entrypoint/controller"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/tax-planner/backend/internal/integration/persistence"
	"github.com/tax-planner/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Tax Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.TaxCalculationModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	calculationRepo := persistence.NewTaxCalculationRepositoryWithTimeout(database.DB(), cfg.Database.QueryTimeout)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenServiceWithDuration(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create use cases
	registerUseCase := authusecase.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := authusecase.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getUserUseCase := authusecase.NewGetUserUseCase(userRepo)
	deleteAccountUseCase := authusecase.NewDeleteAccountUseCase(userRepo, passwordService)
	calculateUseCase := taxusecase.NewCalculateTaxUseCase(calculationRepo)
	compareUseCase := taxusecase.NewCompareRegimesUseCase()
	slabsUseCase := taxusecase.NewSlabBreakdownUseCase()
	listHistoryUseCase := historyusecase.NewListHistoryUseCase(calculationRepo)
	deleteCalculationUseCase := historyusecase.NewDeleteCalculationUseCase(calculationRepo)

	// Create controllers and middleware
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(getUserUseCase, deleteAccountUseCase)
	taxController := controller.NewTaxController(calculateUseCase, compareUseCase, slabsUseCase)
	historyController := controller.NewHistoryController(listHistoryUseCase, deleteCalculationUseCase)
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		&cfg.CORS,
		healthController,
		authController,
		userController,
		taxController,
		historyController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
