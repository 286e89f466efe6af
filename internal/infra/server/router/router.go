// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tax-planner/backend/config"
	"github.com/tax-planner/backend/internal/integration/entrypoint/controller"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	corsConfig        *config.CORSConfig
	healthController  *controller.HealthController
	authController    *controller.AuthController
	userController    *controller.UserController
	taxController     *controller.TaxController
	historyController *controller.HistoryController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	corsConfig *config.CORSConfig,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	taxController *controller.TaxController,
	historyController *controller.HistoryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		corsConfig:        corsConfig,
		healthController:  healthController,
		authController:    authController,
		userController:    userController,
		taxController:     taxController,
		historyController: historyController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.corsConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.Me)
				users.DELETE("/me", r.userController.DeleteMe)
			}
		}

		// Tax routes (require authentication)
		if r.taxController != nil && r.authMiddleware != nil {
			tax := v1.Group("/tax")
			tax.Use(r.authMiddleware.Authenticate())
			{
				tax.POST("/calculate", r.taxController.Calculate)
				tax.POST("/compare", r.taxController.Compare)
				tax.GET("/slabs", r.taxController.Slabs)

				if r.historyController != nil {
					tax.GET("/history", r.historyController.List)
					tax.DELETE("/history/:id", r.historyController.Delete)
				}
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
