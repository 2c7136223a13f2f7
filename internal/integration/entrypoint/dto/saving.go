package dto

import (
	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateSavingRequest represents the request body for saving creation.
type CreateSavingRequest struct {
	UserID      string  `json:"userId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Goal        string  `json:"goal" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateSavingRequest represents the request body for saving update.
// All fields are optional; absent fields keep their stored values.
type UpdateSavingRequest struct {
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Goal        *string  `json:"goal,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        *string  `json:"date,omitempty"`
}

// SavingResponse represents a single saving in API responses.
type SavingResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Amount      float64 `json:"amount"`
	Goal        string  `json:"goal"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// SavingDataResponse wraps a single saving payload.
type SavingDataResponse struct {
	Success bool           `json:"success"`
	Data    SavingResponse `json:"data"`
}

// SavingListData represents the data section of the saving list response.
type SavingListData struct {
	Savings    []SavingResponse `json:"savings"`
	Count      int              `json:"count"`
	TotalSaved float64          `json:"totalSaved"`
}

// SavingListResponse represents the response for listing savings.
type SavingListResponse struct {
	Success bool           `json:"success"`
	Data    SavingListData `json:"data"`
}

// ToSavingResponse converts a Saving entity to a SavingResponse DTO.
func ToSavingResponse(saving *entity.Saving) SavingResponse {
	amount, _ := saving.Amount.Float64()
	return SavingResponse{
		ID:          saving.ID.String(),
		UserID:      saving.UserID.String(),
		Amount:      amount,
		Goal:        saving.Goal,
		Description: saving.Description,
		Date:        saving.Date.Format("2006-01-02"),
		CreatedAt:   saving.CreatedAt.Format(timeFormat),
		UpdatedAt:   saving.UpdatedAt.Format(timeFormat),
	}
}

// ToSavingListResponse converts listed savings to the list response.
func ToSavingListResponse(savings []*entity.Saving, count int, totalSaved float64) SavingListResponse {
	items := make([]SavingResponse, len(savings))
	for i, s := range savings {
		items[i] = ToSavingResponse(s)
	}
	return SavingListResponse{
		Success: true,
		Data: SavingListData{
			Savings:    items,
			Count:      count,
			TotalSaved: totalSaved,
		},
	}
}
