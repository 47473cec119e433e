package handler

import (
	"errors"
	"net/http"

	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdvanceOrderHandler struct {
	orderService service.AdvanceOrderService
}

func NewAdvanceOrderHandler(orderService service.AdvanceOrderService) *AdvanceOrderHandler {
	return &AdvanceOrderHandler{orderService: orderService}
}

func (h *AdvanceOrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/advance-orders")
	{
		orders.GET("", h.List)
		orders.POST("", middleware.RequireAuth(), h.Create)
		orders.DELETE("/:id", middleware.RequireAuth(), h.Delete)
	}
}

// Create saves a prepaid fish order
// @Summary      Create advance order
// @Tags         advance-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAdvanceOrderRequest  true  "Advance order"
// @Success      201      {object}  response.Response{data=model.AdvanceOrder}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/advance-orders [post]
func (h *AdvanceOrderHandler) Create(c *gin.Context) {
	var req service.CreateAdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// List retrieves advance orders, optionally for a single date
// @Summary      List advance orders
// @Tags         advance-orders
// @Produce      json
// @Param        date  query     string  false  "Exact date filter (YYYY-MM-DD)"
// @Success      200   {object}  response.Response{data=[]model.AdvanceOrder}
// @Failure      400   {object}  response.Response
// @Router       /api/advance-orders [get]
func (h *AdvanceOrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orders))
}

// Delete removes a fulfilled order by id
// @Summary      Delete advance order
// @Tags         advance-orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/advance-orders/{id} [delete]
func (h *AdvanceOrderHandler) Delete(c *gin.Context) {
	err := h.orderService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Order deleted successfully"))
}
