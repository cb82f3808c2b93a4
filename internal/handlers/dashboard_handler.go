package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkendrick/jobtrack/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// Summary is GET /dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.Dashboard.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
