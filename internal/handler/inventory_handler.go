package handler

import (
	"net/http"
	"strings"

	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/pagination"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api")
	{
		inventory.GET("/inventory", h.List)
		inventory.POST("/inventory", middleware.RequireAuth(), h.Create)
	}
}

// Create saves a purchase/movement entry and updates stock
// @Summary      Create inventory entry
// @Description  Records an IN/OUT movement, recomputes the line total server-side and applies the quantity delta to stock
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateInventoryRequest  true  "Movement entry"
// @Success      201      {object}  response.Response{data=model.InventoryItem}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid date") {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// List retrieves inventory entries, newest first
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Param        type   query     string  false  "Filter by transaction type (IN or OUT)"
// @Param        limit  query     int     false  "Maximum rows to return"
// @Success      200    {object}  response.Response{data=[]model.InventoryItem}
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	transactionType := c.Query("type")
	limit := pagination.Limit(c)

	items, err := h.inventoryService.List(c.Request.Context(), transactionType, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}
