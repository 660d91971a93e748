// Package dashboard provides HTTP handlers for the derived status views.
package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	agg "jobcrm-backend/internal/dashboard"
	"jobcrm-backend/internal/utilities"
)

// DashboardController handles dashboard related endpoints
type DashboardController struct {
	Aggregator *agg.Aggregator
}

// NewDashboardController creates a new instance of DashboardController with the provided aggregator.
func NewDashboardController(aggregator *agg.Aggregator) *DashboardController {
	return &DashboardController{
		Aggregator: aggregator,
	}
}

// GetMetrics returns the headline pipeline counters.
// @Summary Total, active and interview counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Metrics "Return pipeline metrics"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /dashboard/metrics [get]
func (dc *DashboardController) GetMetrics(c *gin.Context) {
	metrics, err := dc.Aggregator.Metrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to compute metrics: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetActionItems returns applications that need attention now.
// @Summary Applications requiring action within the follow-up window
// @Description Optional today query (YYYY-MM-DD) pins the evaluation date, defaulting to the current date
// @Tags Dashboard
// @Produce json
// @Param today query string false "Evaluation date (YYYY-MM-DD)"
// @Success 200 {array} dashboard.ActionItem "Return applications needing attention"
// @Failure 400 {object} utilities.ErrorResponse "Invalid today parameter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /dashboard/actions [get]
func (dc *DashboardController) GetActionItems(c *gin.Context) {
	today := time.Now()
	if raw := c.Query("today"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid today: %s", err.Error()),
			})
			return
		}
		today = parsed
	}

	items, err := dc.Aggregator.ActionItems(c.Request.Context(), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to compute action items: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetFunnel returns application counts grouped by status.
// @Summary Applications grouped by pipeline stage
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]int64 "Return funnel buckets"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /dashboard/funnel [get]
func (dc *DashboardController) GetFunnel(c *gin.Context) {
	funnel, err := dc.Aggregator.FunnelByStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to compute funnel: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, funnel)
}
