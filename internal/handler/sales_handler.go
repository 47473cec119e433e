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

type SalesHandler struct {
	salesService service.SalesService
}

func NewSalesHandler(salesService service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api")
	{
		sales.GET("/sales", h.List)
		sales.POST("/sales", middleware.RequireAuth(), h.Create)
	}
}

// Create records a counter sale after checking stock availability
// @Summary      Record sale
// @Description  Rejects the sale when stock is insufficient; otherwise records it and deducts the sold quantity
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateSaleRequest  true  "Sale"
// @Success      201      {object}  response.Response{data=service.SaleResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sale, err := h.salesService.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "insufficient stock") || strings.Contains(err.Error(), "invalid date") {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, sale))
}

// List retrieves sale records, newest first
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows to return"
// @Success      200    {object}  response.Response{data=[]model.SaleRecord}
// @Failure      500    {object}  response.Response
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.salesService.List(c.Request.Context(), pagination.Limit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, sales))
}
