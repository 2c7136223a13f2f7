package dto

import (
	"github.com/fintrack/backend/internal/application/usecase/report"
)

// DateRangeResponse represents the resolved reporting window.
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CategoryBreakdownResponse represents a category share of the total spend.
type CategoryBreakdownResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// BudgetStatusResponse represents the compliance result for one budget.
type BudgetStatusResponse struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// SummaryData represents the data section of the summary report response.
type SummaryData struct {
	Period            string                      `json:"period"`
	TotalSpent        float64                     `json:"totalSpent"`
	ExpenseCount      int                         `json:"expenseCount"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	BudgetStatus      []BudgetStatusResponse      `json:"budgetStatus"`
	DateRange         DateRangeResponse           `json:"dateRange"`
}

// SummaryResponse represents the spending summary report.
type SummaryResponse struct {
	Success bool        `json:"success"`
	Data    SummaryData `json:"data"`
}

// TopCategoryResponse represents a single ranked category.
type TopCategoryResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TopCategoriesResponse represents the top spending categories report.
type TopCategoriesResponse struct {
	Success bool                  `json:"success"`
	Period  string                `json:"period"`
	Data    []TopCategoryResponse `json:"data"`
}

// TrendPointResponse represents spending aggregated on one calendar day.
type TrendPointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// TrendsResponse represents the daily spending trend report.
type TrendsResponse struct {
	Success bool                 `json:"success"`
	Period  string               `json:"period"`
	Data    []TrendPointResponse `json:"data"`
}

// MonthAmountResponse represents spending aggregated on one YYYY-MM month.
type MonthAmountResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// CategoryComparisonData represents the data section of the comparison response.
type CategoryComparisonData struct {
	Category      string                `json:"category"`
	Comparison    []MonthAmountResponse `json:"comparison"`
	TotalExpenses int                   `json:"totalExpenses"`
	TotalAmount   float64               `json:"totalAmount"`
}

// CategoryComparisonResponse represents the category comparison report.
type CategoryComparisonResponse struct {
	Success bool                   `json:"success"`
	Data    CategoryComparisonData `json:"data"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(output.CategoryBreakdown))
	for i, item := range output.CategoryBreakdown {
		amount, _ := item.Amount.Float64()
		breakdown[i] = CategoryBreakdownResponse{
			Category:   item.Category,
			Amount:     amount,
			Percentage: item.Percentage,
		}
	}

	statuses := make([]BudgetStatusResponse, len(output.BudgetStatus))
	for i, status := range output.BudgetStatus {
		budget, _ := status.BudgetAmount.Float64()
		spent, _ := status.Spent.Float64()
		remaining, _ := status.Remaining.Float64()
		percentage, _ := status.Percentage.Float64()
		statuses[i] = BudgetStatusResponse{
			Category:   status.Category,
			Budget:     budget,
			Spent:      spent,
			Remaining:  remaining,
			Percentage: percentage,
			Status:     string(status.Status),
		}
	}

	totalSpent, _ := output.TotalSpent.Float64()

	return SummaryResponse{
		Success: true,
		Data: SummaryData{
			Period:            string(output.Period),
			TotalSpent:        totalSpent,
			ExpenseCount:      output.ExpenseCount,
			CategoryBreakdown: breakdown,
			BudgetStatus:      statuses,
			DateRange: DateRangeResponse{
				Start: output.DateRange.Start.Format(timeFormat),
				End:   output.DateRange.End.Format(timeFormat),
			},
		},
	}
}

// ToTopCategoriesResponse converts a GetTopCategoriesOutput to its DTO.
func ToTopCategoriesResponse(period report.Period, output *report.GetTopCategoriesOutput) TopCategoriesResponse {
	items := make([]TopCategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		amount, _ := c.Amount.Float64()
		items[i] = TopCategoryResponse{
			Category: c.Category,
			Amount:   amount,
		}
	}
	return TopCategoriesResponse{
		Success: true,
		Period:  string(period),
		Data:    items,
	}
}

// ToTrendsResponse converts a GetTrendOutput to its DTO.
func ToTrendsResponse(output *report.GetTrendOutput) TrendsResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, p := range output.Points {
		amount, _ := p.Amount.Float64()
		points[i] = TrendPointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Amount: amount,
		}
	}
	return TrendsResponse{
		Success: true,
		Period:  string(output.Period),
		Data:    points,
	}
}

// ToCategoryComparisonResponse converts a GetCategoryComparisonOutput to its DTO.
func ToCategoryComparisonResponse(output *report.GetCategoryComparisonOutput) CategoryComparisonResponse {
	comparison := make([]MonthAmountResponse, len(output.Comparison))
	for i, m := range output.Comparison {
		amount, _ := m.Amount.Float64()
		comparison[i] = MonthAmountResponse{
			Month:  m.Month,
			Amount: amount,
		}
	}
	totalAmount, _ := output.TotalAmount.Float64()
	return CategoryComparisonResponse{
		Success: true,
		Data: CategoryComparisonData{
			Category:      output.Category,
			Comparison:    comparison,
			TotalExpenses: output.TotalCount,
			TotalAmount:   totalAmount,
		},
	}
}
