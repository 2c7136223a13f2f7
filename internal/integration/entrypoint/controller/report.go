package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/report"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	summaryUseCase       *report.GetSummaryUseCase
	topCategoriesUseCase *report.GetTopCategoriesUseCase
	trendUseCase         *report.GetTrendUseCase
	comparisonUseCase    *report.GetCategoryComparisonUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	topCategoriesUseCase *report.GetTopCategoriesUseCase,
	trendUseCase *report.GetTrendUseCase,
	comparisonUseCase *report.GetCategoryComparisonUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:       summaryUseCase,
		topCategoriesUseCase: topCategoriesUseCase,
		trendUseCase:         trendUseCase,
		comparisonUseCase:    comparisonUseCase,
	}
}

// Summary handles GET /reports/summary requests.
// Query parameters: userId (required), period (week|month|year, default month).
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := report.GetSummaryInput{
		UserID: userID,
		Period: report.ParsePeriod(ctx.Query("period")),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// TopCategories handles GET /reports/top-categories requests.
// Query parameters: userId (required), period (default month) and limit.
// A missing, malformed or non-positive limit falls back to the default.
func (c *ReportController) TopCategories(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	period := report.ParsePeriod(ctx.Query("period"))

	limit := report.DefaultTopLimit
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	input := report.GetTopCategoriesInput{
		UserID: userID,
		Period: period,
		Limit:  limit,
	}

	output, err := c.topCategoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopCategoriesResponse(period, output))
}

// Trends handles GET /reports/trends requests.
// Query parameters: userId (required), period (default month).
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := report.GetTrendInput{
		UserID: userID,
		Period: report.ParsePeriod(ctx.Query("period")),
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// CategoryComparison handles GET /reports/category-comparison requests.
// Query parameters: userId and category, both required. The comparison spans
// the user's entire history rather than a resolved period.
func (c *ReportController) CategoryComparison(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := report.GetCategoryComparisonInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryComparisonResponse(output))
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(statusCodeForReportError(rptErr.Code), dto.NewErrorResponse(
			rptErr.Message,
			string(rptErr.Code),
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		"An internal error occurred", "",
	))
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingUserID,
		domainerror.ErrCodeInvalidUserID,
		domainerror.ErrCodeMissingCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
