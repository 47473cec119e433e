package handler

import (
	"net/http"

	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/model"
	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/stock", h.List)
		api.POST("/stock/reset", middleware.RequireAuth(), middleware.RequireRole(model.RoleAdmin), h.Reset)
		api.GET("/fish-types", h.FishTypes)
		api.GET("/fish-items", h.FishItems)
	}
}

// List retrieves current stock levels with low stock flags
// @Summary      List stock levels
// @Tags         stock
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.StockLevelResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/stock [get]
func (h *StockHandler) List(c *gin.Context) {
	levels, err := h.stockService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, levels))
}

// Reset zeroes every tracked stock level
// @Summary      Reset stock
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/stock/reset [post]
func (h *StockHandler) Reset(c *gin.Context) {
	if err := h.stockService.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "All stock levels have been reset"}))
}

// FishTypes lists the distinct fish types known to the stock ledger
// @Summary      List fish types
// @Tags         stock
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      500  {object}  response.Response
// @Router       /api/fish-types [get]
func (h *StockHandler) FishTypes(c *gin.Context) {
	types, err := h.stockService.FishTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, types))
}

// FishItems lists the billable fish catalogue with current prices
// @Summary      List fish items
// @Tags         stock
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.FishItem}
// @Failure      500  {object}  response.Response
// @Router       /api/fish-items [get]
func (h *StockHandler) FishItems(c *gin.Context) {
	items, err := h.stockService.FishItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}
