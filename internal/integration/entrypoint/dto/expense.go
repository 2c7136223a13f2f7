// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
// All fields are optional; absent fields keep their stored values.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        *string  `json:"date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ExpenseDataResponse wraps a single expense payload.
type ExpenseDataResponse struct {
	Success bool            `json:"success"`
	Data    ExpenseResponse `json:"data"`
}

// ExpenseListData represents the data section of the expense list response.
type ExpenseListData struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Success bool            `json:"success"`
	Data    ExpenseListData `json:"data"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	amount, _ := expense.Amount.Float64()
	return ExpenseResponse{
		ID:          expense.ID.String(),
		UserID:      expense.UserID.String(),
		Amount:      amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt.Format(timeFormat),
		UpdatedAt:   expense.UpdatedAt.Format(timeFormat),
	}
}

// ToExpenseListResponse converts a slice of Expense entities to the list response.
func ToExpenseListResponse(expenses []*entity.Expense, count int) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Success: true,
		Data: ExpenseListData{
			Expenses: items,
			Count:    count,
		},
	}
}
