package handlers

import (
	"errors"
	"net/http"
	"time"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes sales and stock reporting.
type ReportHandler struct {
	reports services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reports: rs}
}

func bindReportFilters(c *gin.Context) models.ReportFilters {
	var filters models.ReportFilters
	if from := c.Query("from"); from != "" {
		filters.From = &from
	}
	if to := c.Query("to"); to != "" {
		filters.To = &to
	}
	return filters
}

// GetSalesReport returns the aggregated sales summary.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	summary, err := h.reports.SalesSummary(bindReportFilters(c))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format. Use YYYY-MM-DD.", err.Error()))
			return
		}
		utils.LogError(err, "GetSalesReport: Error from reports.SalesSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build sales report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportSalesCSV streams the sales export as a downloadable CSV file.
func (h *ReportHandler) ExportSalesCSV(c *gin.Context) {
	filters := bindReportFilters(c)

	// Validate the range before any header is written; once streaming
	// starts there is no clean way to switch to an error response.
	for _, d := range []*string{filters.From, filters.To} {
		if d == nil {
			continue
		}
		if _, err := time.Parse("2006-01-02", *d); err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format. Use YYYY-MM-DD.", err.Error()))
			return
		}
	}

	filename := "sales-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.reports.ExportSalesCSV(c.Writer, filters); err != nil {
		utils.LogError(err, "ExportSalesCSV: Error from reports.ExportSalesCSV")
	}
}

// GetLowStock lists ingredients at or below their reorder threshold.
func (h *ReportHandler) GetLowStock(c *gin.Context) {
	low := h.reports.LowStock()
	if low == nil {
		low = []models.Ingredient{}
	}
	c.JSON(http.StatusOK, low)
}
