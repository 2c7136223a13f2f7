package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

// requireUserID reads the userId query parameter. A missing or malformed
// value writes a 400 response and returns ok=false.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.Query("userId")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"userId is required",
			string(domainerror.ErrCodeMissingUserID),
		))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid userId format",
			string(domainerror.ErrCodeInvalidUserID),
		))
		return uuid.Nil, false
	}

	return userID, true
}

// parseOptionalDate reads an optional YYYY-MM-DD query parameter. A present
// but malformed value writes a 400 response and returns ok=false.
func parseOptionalDate(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Invalid "+name+" format, expected YYYY-MM-DD", "",
		))
		return nil, false
	}

	return &parsed, true
}
