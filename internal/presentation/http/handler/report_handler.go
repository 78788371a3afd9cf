package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the admin sales reports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDailySummary returns today's summary
func (h *ReportHandler) GetDailySummary(c *gin.Context) {
	summary, err := h.reportService.ComputeDailySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved successfully", summary)
}

// GetDailyReportText returns the daily report as console text
func (h *ReportHandler) GetDailyReportText(c *gin.Context) {
	summary, err := h.reportService.ComputeDailySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, h.reportService.RenderDailyReport(summary))
}

// ListTodayTransactions returns today's sales, paginated
func (h *ReportHandler) ListTodayTransactions(c *gin.Context) {
	result, err := h.reportService.ListTodayTransactions(c.Request.Context(), GetPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Transactions retrieved successfully", result)
}
