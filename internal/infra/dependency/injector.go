// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/goals/config"
	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/application/usecase/transaction"
	"github.com/finance-tracker/goals/internal/infra/cache"
	"github.com/finance-tracker/goals/internal/infra/db"
	"github.com/finance-tracker/goals/internal/infra/server/router"
	"github.com/finance-tracker/goals/internal/integration/adapters"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/goals/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Database     *db.Database
	Router       *router.Router
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter // Nil when rate limiting is disabled
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case goal progress is never cached.
// now is the clock every use case reads "today" from.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client, now goal.Clock) *Injector {
	gormDB := database.DB()

	// Repositories
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)

	// Adapters
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiry)

	var progressCache adapter.GoalProgressCache
	var cacheHealth controller.HealthChecker
	if redisClient != nil {
		progressCache = cache.NewRedisProgressCache(redisClient, cfg.Cache.ProgressTTL)
		cacheHealth = cache.NewHealthChecker(redisClient)
	}

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, transactionRepo, categoryRepo, progressCache, now)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, transactionRepo, categoryRepo, progressCache, now)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, transactionRepo, categoryRepo, now)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, transactionRepo, categoryRepo, progressCache, now)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, progressCache)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo, now)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, goalRepo, progressCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, progressCache)

	// Controllers
	healthController := controller.NewHealthController(database, cacheHealth)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(healthController, goalController, transactionController, rateLimiter, authMiddleware)

	return &Injector{
		Config:       cfg,
		Database:     database,
		Router:       r,
		TokenService: tokenService,
		RateLimiter:  rateLimiter,
	}
}
