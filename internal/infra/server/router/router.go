// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	expenseController *controller.ExpenseController
	savingController  *controller.SavingController
	budgetController  *controller.BudgetController
	reportController  *controller.ReportController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	savingController *controller.SavingController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		expenseController: expenseController,
		savingController:  savingController,
		budgetController:  budgetController,
		reportController:  reportController,
		writeRateLimiter:  writeRateLimiter,
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Mutating routes share the write rate limiter; reads are unthrottled.
		var writeLimit gin.HandlerFunc
		if r.writeRateLimiter != nil {
			writeLimit = r.writeRateLimiter.Middleware()
		} else {
			writeLimit = func(c *gin.Context) { c.Next() }
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.POST("", writeLimit, r.expenseController.Create)
				expenses.PUT("/:id", writeLimit, r.expenseController.Update)
				expenses.DELETE("/:id", writeLimit, r.expenseController.Delete)
			}
		}

		if r.savingController != nil {
			savings := v1.Group("/savings")
			{
				savings.GET("", r.savingController.List)
				savings.GET("/:id", r.savingController.Get)
				savings.POST("", writeLimit, r.savingController.Create)
				savings.PUT("/:id", writeLimit, r.savingController.Update)
				savings.DELETE("/:id", writeLimit, r.savingController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.POST("", writeLimit, r.budgetController.Create)
				budgets.PUT("/:id", writeLimit, r.budgetController.Update)
				budgets.DELETE("/:id", writeLimit, r.budgetController.Delete)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/top-categories", r.reportController.TopCategories)
				reports.GET("/trends", r.reportController.Trends)
				reports.GET("/category-comparison", r.reportController.CategoryComparison)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
