package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api/sales")
	{
		sales.GET("/summary", h.Summary)
		sales.GET("/monthly-trend", h.MonthlyTrend)
		sales.GET("/by-fish", h.SalesByFishType)
		sales.GET("/recent", h.RecentMovements)
		sales.GET("/export", h.ExportReport)
	}
}

// Summary returns total sales, purchases, profit and movement count
// @Summary      Sales summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=service.SalesSummary}
// @Failure      500  {object}  response.Response
// @Router       /api/sales/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// MonthlyTrend returns sales and purchase totals per month
// @Summary      Monthly trend
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TrendPoint}
// @Failure      500  {object}  response.Response
// @Router       /api/sales/monthly-trend [get]
func (h *DashboardHandler) MonthlyTrend(c *gin.Context) {
	trend, err := h.dashboardService.MonthlyTrend(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, trend))
}

// SalesByFishType breaks sales down per fish type
// @Summary      Sales by fish type
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]repository.FishBreakdown}
// @Failure      500  {object}  response.Response
// @Router       /api/sales/by-fish [get]
func (h *DashboardHandler) SalesByFishType(c *gin.Context) {
	breakdown, err := h.dashboardService.SalesByFishType(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}

// RecentMovements lists the latest inventory movements
// @Summary      Recent movements
// @Tags         dashboard
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows"  default(10)
// @Success      200    {object}  response.Response{data=[]model.InventoryItem}
// @Failure      500    {object}  response.Response
// @Router       /api/sales/recent [get]
func (h *DashboardHandler) RecentMovements(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	movements, err := h.dashboardService.RecentMovements(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, movements))
}

// ExportReport downloads the sales report as an Excel workbook
// @Summary      Export sales report
// @Tags         dashboard
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  response.Response
// @Router       /api/sales/export [get]
func (h *DashboardHandler) ExportReport(c *gin.Context) {
	data, err := h.dashboardService.ExportReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	filename := fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
