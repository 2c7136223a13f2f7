package dto

import (
	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Period   string  `json:"period" binding:"required,oneof=week month year"`
}

// UpdateBudgetRequest represents the request body for budget update.
// All fields are optional; absent fields keep their stored values.
type UpdateBudgetRequest struct {
	Category *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Amount   *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period   *string  `json:"period,omitempty" binding:"omitempty,oneof=week month year"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Period    string  `json:"period"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// BudgetDataResponse wraps a single budget payload.
type BudgetDataResponse struct {
	Success bool           `json:"success"`
	Data    BudgetResponse `json:"data"`
}

// BudgetListData represents the data section of the budget list response.
type BudgetListData struct {
	Budgets []BudgetResponse `json:"budgets"`
	Count   int              `json:"count"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Success bool           `json:"success"`
	Data    BudgetListData `json:"data"`
}

// ToBudgetResponse converts a Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	amount, _ := budget.Amount.Float64()
	return BudgetResponse{
		ID:        budget.ID.String(),
		UserID:    budget.UserID.String(),
		Category:  budget.Category,
		Amount:    amount,
		Period:    string(budget.Period),
		CreatedAt: budget.CreatedAt.Format(timeFormat),
		UpdatedAt: budget.UpdatedAt.Format(timeFormat),
	}
}

// ToBudgetListResponse converts a slice of Budget entities to the list response.
func ToBudgetListResponse(budgets []*entity.Budget, count int) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Success: true,
		Data: BudgetListData{
			Budgets: items,
			Count:   count,
		},
	}
}
