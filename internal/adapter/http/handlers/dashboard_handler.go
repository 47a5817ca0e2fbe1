package handlers

import (
	"net/http"
	"time"

	response "taller_andino/internal/adapter/http/dto/response"
	"taller_andino/internal/usecase"
	"taller_andino/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the daily summary.

type DashboardHandler struct {
	usecase usecase.IPeriodSummaryUseCase
}

func NewDashboardHandler(uc usecase.IPeriodSummaryUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDailySummary returns the dashboard figures for one calendar day (UTC).
// The day comes from the optional ?date=YYYY-MM-DD query and defaults to
// today.
func (h *DashboardHandler) GetDailySummary(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Date must be YYYY-MM-DD", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		day = parsed
	}

	summary, err := h.usecase.Summarize(c.Request.Context(), day)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
