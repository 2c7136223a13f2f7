package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.ExpenseModel{},
		&model.SavingModel{},
		&model.BudgetModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestExpense(t *testing.T, userID uuid.UUID, category, amount, date string) *entity.Expense {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid date %q: %v", date, err)
	}

	return entity.NewExpense(userID, amt, category, "", day)
}

func newTestSaving(t *testing.T, userID uuid.UUID, goal, amount, date string) *entity.Saving {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid date %q: %v", date, err)
	}

	return entity.NewSaving(userID, amt, goal, "", day)
}

func newTestBudget(t *testing.T, userID uuid.UUID, category, amount string, period entity.BudgetPeriod) *entity.Budget {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}

	return entity.NewBudget(userID, category, amt, period)
}
