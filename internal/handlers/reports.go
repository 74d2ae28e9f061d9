package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DailyReport handles GET /reports/daily?startDate=&endDate=.
func (h *Handlers) DailyReport(c *gin.Context) {
	report, err := h.reports.DailyReport(
		c.Request.Context(),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		h.logger.Error("failed to generate daily report", "error", err)
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// MonthlyReport handles GET /reports/monthly?year=.
func (h *Handlers) MonthlyReport(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'year' deve ser um número válido."})
			return
		}
		year = &parsed
	}

	report, err := h.reports.MonthlyReport(c.Request.Context(), year)
	if err != nil {
		h.logger.Error("failed to generate monthly report", "error", err)
		handleReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
