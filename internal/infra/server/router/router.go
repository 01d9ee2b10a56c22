// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/goals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	goalController        *controller.GoalController
	transactionController *controller.TransactionController
	writeRateLimiter      *middleware.RateLimiter // Optional
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// writeRateLimiter may be nil to leave mutating routes unlimited.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	transactionController *controller.TransactionController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		goalController:        goalController,
		transactionController: transactionController,
		writeRateLimiter:      writeRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	v1.Use(r.authMiddleware.Authenticate())
	{
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.GET("/:id", r.goalController.Get)
			goals.POST("", r.limitWrites(), r.goalController.Create)
			goals.PATCH("/:id", r.limitWrites(), r.goalController.Update)
			goals.DELETE("/:id", r.limitWrites(), r.goalController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.limitWrites(), r.transactionController.Create)
			transactions.DELETE("/:id", r.limitWrites(), r.transactionController.Delete)
		}
	}
}

// limitWrites returns the rate limiting handler for mutating routes.
func (r *Router) limitWrites() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}
