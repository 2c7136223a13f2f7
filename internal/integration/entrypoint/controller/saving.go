package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/usecase/saving"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// SavingController handles saving endpoints.
type SavingController struct {
	listUseCase   *saving.ListSavingsUseCase
	createUseCase *saving.CreateSavingUseCase
	getUseCase    *saving.GetSavingUseCase
	updateUseCase *saving.UpdateSavingUseCase
	deleteUseCase *saving.DeleteSavingUseCase
}

// NewSavingController creates a new saving controller instance.
func NewSavingController(
	listUseCase *saving.ListSavingsUseCase,
	createUseCase *saving.CreateSavingUseCase,
	getUseCase *saving.GetSavingUseCase,
	updateUseCase *saving.UpdateSavingUseCase,
	deleteUseCase *saving.DeleteSavingUseCase,
) *SavingController {
	return &SavingController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings requests.
// Optional query parameters: startDate, endDate (YYYY-MM-DD) and goal,
// which performs a case-insensitive substring search.
func (c *SavingController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := saving.ListSavingsInput{
		UserID: userID,
		Goal:   ctx.Query("goal"),
	}

	startDate, ok := parseOptionalDate(ctx, "startDate")
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(ctx, "endDate")
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	totalSaved, _ := output.TotalSaved.Float64()
	ctx.JSON(http.StatusOK, dto.ToSavingListResponse(output.Savings, output.Count, totalSaved))
}

// Create handles POST /savings requests.
func (c *SavingController) Create(ctx *gin.Context) {
	var req dto.CreateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body: "+err.Error(),
			string(domainerror.ErrCodeInvalidSavingAmount),
		))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid userId format", "",
		))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid date format, expected YYYY-MM-DD",
			string(domainerror.ErrCodeMissingSavingDate),
		))
		return
	}

	input := saving.CreateSavingInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Goal:        req.Goal,
		Description: req.Description,
		Date:        date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SavingDataResponse{
		Success: true,
		Data:    dto.ToSavingResponse(output.Saving),
	})
}

// Get handles GET /savings/:id requests.
func (c *SavingController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid saving ID format", "",
		))
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), saving.GetSavingInput{
		UserID: userID,
		ID:     savingID,
	})
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SavingDataResponse{
		Success: true,
		Data:    dto.ToSavingResponse(output.Saving),
	})
}

// Update handles PUT /savings/:id requests.
func (c *SavingController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid saving ID format", "",
		))
		return
	}

	var req dto.UpdateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid request body: "+err.Error(), "",
		))
		return
	}

	input := saving.UpdateSavingInput{
		UserID:      userID,
		ID:          savingID,
		Goal:        req.Goal,
		Description: req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"Invalid date format, expected YYYY-MM-DD",
				string(domainerror.ErrCodeMissingSavingDate),
			))
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SavingDataResponse{
		Success: true,
		Data:    dto.ToSavingResponse(output.Saving),
	})
}

// Delete handles DELETE /savings/:id requests.
func (c *SavingController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid saving ID format", "",
		))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), saving.DeleteSavingInput{
		UserID: userID,
		ID:     savingID,
	}); err != nil {
		c.handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Saving deleted successfully",
	})
}

// handleSavingError maps saving errors to HTTP responses.
func (c *SavingController) handleSavingError(ctx *gin.Context, err error) {
	var savErr *domainerror.SavingError
	if errors.As(err, &savErr) {
		ctx.JSON(statusCodeForSavingError(savErr.Code), dto.NewErrorResponse(
			savErr.Message,
			string(savErr.Code),
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		"An internal error occurred", "",
	))
}

// statusCodeForSavingError maps saving error codes to HTTP status codes.
func statusCodeForSavingError(code domainerror.SavingErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSavingAmount,
		domainerror.ErrCodeMissingSavingGoal,
		domainerror.ErrCodeMissingSavingDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
