// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

func TestGetSummaryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("computes totals, breakdown and budget status", func(t *testing.T) {
		expenseRepo := &stubExpenseRepository{expenses: []*entity.Expense{
			testExpense(t, "Food", 100, "2024-01-05"),
			testExpense(t, "Food", 50, "2024-01-20"),
			testExpense(t, "Travel", 200, "2024-01-10"),
		}}
		budgetRepo := &stubBudgetRepository{budgets: []*entity.Budget{
			testBudget("Food", 100, entity.BudgetPeriodMonth),
		}}

		uc := NewGetSummaryUseCase(expenseRepo, budgetRepo)
		uc.now = fixedClock("2024-01-25")

		output, err := uc.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			Period: PeriodMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "total spent", output.TotalSpent, "350")
		if output.ExpenseCount != 3 {
			t.Errorf("expected 3 expenses, got %d", output.ExpenseCount)
		}

		if len(output.CategoryBreakdown) != 2 {
			t.Fatalf("expected 2 breakdown items, got %d", len(output.CategoryBreakdown))
		}
		// Ordered by amount descending.
		first, second := output.CategoryBreakdown[0], output.CategoryBreakdown[1]
		if first.Category != "Travel" || second.Category != "Food" {
			t.Errorf("expected breakdown order [Travel Food], got [%s %s]",
				first.Category, second.Category)
		}
		assertDecimal(t, "Travel amount", first.Amount, "200")
		if first.Percentage != 57 {
			t.Errorf("expected Travel at 57%%, got %d%%", first.Percentage)
		}
		assertDecimal(t, "Food amount", second.Amount, "150")
		if second.Percentage != 43 {
			t.Errorf("expected Food at 43%%, got %d%%", second.Percentage)
		}

		if len(output.BudgetStatus) != 1 {
			t.Fatalf("expected 1 budget status, got %d", len(output.BudgetStatus))
		}
		status := output.BudgetStatus[0]
		assertDecimal(t, "spent", status.Spent, "150")
		assertDecimal(t, "remaining", status.Remaining, "-50")
		assertDecimal(t, "percentage", status.Percentage, "150")
		if status.Status != BudgetHealthOver {
			t.Errorf("expected status over, got %s", status.Status)
		}
	})

	t.Run("empty expense list still evaluates budgets", func(t *testing.T) {
		expenseRepo := &stubExpenseRepository{}
		budgetRepo := &stubBudgetRepository{budgets: []*entity.Budget{
			testBudget("Food", 100, entity.BudgetPeriodMonth),
		}}

		uc := NewGetSummaryUseCase(expenseRepo, budgetRepo)
		uc.now = fixedClock("2024-01-25")

		output, err := uc.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			Period: PeriodMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalSpent.IsZero() {
			t.Errorf("expected zero total, got %s", output.TotalSpent)
		}
		if len(output.CategoryBreakdown) != 0 {
			t.Errorf("expected empty breakdown, got %d items", len(output.CategoryBreakdown))
		}
		if len(output.BudgetStatus) != 1 {
			t.Fatalf("expected budget status entry with zero spend, got %d", len(output.BudgetStatus))
		}
		assertDecimal(t, "spent", output.BudgetStatus[0].Spent, "0")
		if output.BudgetStatus[0].Status != BudgetHealthGood {
			t.Errorf("expected status good, got %s", output.BudgetStatus[0].Status)
		}
	})

	t.Run("missing user id is rejected before touching storage", func(t *testing.T) {
		uc := NewGetSummaryUseCase(
			&stubExpenseRepository{err: errors.New("should not be called")},
			&stubBudgetRepository{err: errors.New("should not be called")},
		)

		_, err := uc.Execute(context.Background(), GetSummaryInput{Period: PeriodMonth})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("expected ReportError, got %v", err)
		}
		if reportErr.Code != domainerror.ErrCodeMissingUserID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingUserID, reportErr.Code)
		}
	})

	t.Run("storage failure aborts the whole report", func(t *testing.T) {
		storageErr := errors.New("connection refused")
		uc := NewGetSummaryUseCase(
			&stubExpenseRepository{err: storageErr},
			&stubBudgetRepository{},
		)
		uc.now = fixedClock("2024-01-25")

		output, err := uc.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			Period: PeriodMonth,
		})

		if output != nil {
			t.Error("expected no partial report on storage failure")
		}
		if !errors.Is(err, storageErr) {
			t.Errorf("expected wrapped storage error, got %v", err)
		}
	})
}
