// Package main is the entry point for the FinTrack API server.
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

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/usecase/budget"
	"github.com/fintrack/backend/internal/application/usecase/expense"
	"github.com/fintrack/backend/internal/application/usecase/report"
	"github.com/fintrack/backend/internal/application/usecase/saving"
	"github.com/fintrack/backend/internal/infra/db"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
	"github.com/fintrack/backend/internal/integration/persistence"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FinTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.ExpenseModel{},
			&model.SavingModel{},
			&model.BudgetModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var expenseController *controller.ExpenseController
	var savingController *controller.SavingController
	var budgetController *controller.BudgetController
	var reportController *controller.ReportController
	var writeRateLimiter *middleware.RateLimiter

	if database != nil {
		// Create repositories
		expenseRepo := persistence.NewExpenseRepository(database.DB())
		savingRepo := persistence.NewSavingRepository(database.DB())
		budgetRepo := persistence.NewBudgetRepository(database.DB())

		// Create expense use cases
		listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
		createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
		getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
		updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
		deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

		// Create saving use cases
		listSavingsUseCase := saving.NewListSavingsUseCase(savingRepo)
		createSavingUseCase := saving.NewCreateSavingUseCase(savingRepo)
		getSavingUseCase := saving.NewGetSavingUseCase(savingRepo)
		updateSavingUseCase := saving.NewUpdateSavingUseCase(savingRepo)
		deleteSavingUseCase := saving.NewDeleteSavingUseCase(savingRepo)

		// Create budget use cases
		listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
		createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
		getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
		updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
		deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

		// Create report use cases
		summaryUseCase := report.NewGetSummaryUseCase(expenseRepo, budgetRepo)
		topCategoriesUseCase := report.NewGetTopCategoriesUseCase(expenseRepo)
		trendUseCase := report.NewGetTrendUseCase(expenseRepo)
		comparisonUseCase := report.NewGetCategoryComparisonUseCase(expenseRepo)

		expenseController = controller.NewExpenseController(
			listExpensesUseCase,
			createExpenseUseCase,
			getExpenseUseCase,
			updateExpenseUseCase,
			deleteExpenseUseCase,
		)

		savingController = controller.NewSavingController(
			listSavingsUseCase,
			createSavingUseCase,
			getSavingUseCase,
			updateSavingUseCase,
			deleteSavingUseCase,
		)

		budgetController = controller.NewBudgetController(
			listBudgetsUseCase,
			createBudgetUseCase,
			getBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
		)

		reportController = controller.NewReportController(
			summaryUseCase,
			topCategoriesUseCase,
			trendUseCase,
			comparisonUseCase,
		)

		writeRateLimiter = middleware.NewRateLimiterWithConfig(
			cfg.RateLimit.MaxAttempts,
			cfg.RateLimit.WindowDuration,
		)

		slog.Info("Expense, saving, budget and report systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		expenseController,
		savingController,
		budgetController,
		reportController,
		writeRateLimiter,
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
