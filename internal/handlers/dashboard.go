package handlers

import (
	"fmt"
	"net/http"
	"time"

	"prdash/internal/middleware"
	"prdash/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	exportService    *services.ExportService
}

func NewDashboardHandler(dashboardService *services.DashboardService, exportService *services.ExportService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// Fetch runs a full dashboard refresh and returns the snapshot
func (h *DashboardHandler) Fetch(c *gin.Context) {
	response, err := h.dashboardService.FetchDashboard(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Export runs a refresh and streams the snapshot as an Excel workbook
func (h *DashboardHandler) Export(c *gin.Context) {
	response, err := h.dashboardService.FetchDashboard(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		renderError(c, err)
		return
	}

	buf, err := h.exportService.BuildWorkbook(response)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("prdash-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
