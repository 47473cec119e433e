package handler

import (
	"errors"
	"net/http"

	"fishshop-backend/internal/billing"
	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BillHandler struct {
	billingService service.BillingService
}

func NewBillHandler(billingService service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

func (h *BillHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/bills", h.List)
		api.GET("/bills/search", h.Search)
		api.GET("/bills/:id", h.GetByID)
		api.POST("/bills", middleware.RequireAuth(), h.Create)

		api.GET("/customers", h.Customers)
		api.GET("/customers/search", h.SearchCustomers)
	}
}

// Create validates and persists a finalized bill
// @Summary      Create bill
// @Description  Recomputes subtotal, tax, total and balance due from the line items, finds or creates the customer and stores the bill atomically
// @Tags         bills
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBillRequest  true  "Bill"
// @Success      201      {object}  response.Response{data=model.Bill}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req service.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	bill, err := h.billingService.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, billing.ErrNoValidItems) || errors.Is(err, billing.ErrCustomerName) ||
			errors.Is(err, billing.ErrNegativeAmounts) {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bill))
}

// GetByID retrieves a stored bill with its items and customer
// @Summary      Get bill
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.Response{data=model.Bill}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetByID(c *gin.Context) {
	bill, err := h.billingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bill))
}

// List retrieves all bills, newest first
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Bill}
// @Failure      500  {object}  response.Response
// @Router       /api/bills [get]
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billingService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bills))
}

// Search filters bills by customer name and/or phone
// @Summary      Search bills
// @Tags         bills
// @Produce      json
// @Param        name   query     string  false  "Customer name substring"
// @Param        phone  query     string  false  "Customer phone substring"
// @Success      200    {object}  response.Response{data=[]model.Bill}
// @Failure      500    {object}  response.Response
// @Router       /api/bills/search [get]
func (h *BillHandler) Search(c *gin.Context) {
	bills, err := h.billingService.Search(c.Request.Context(), c.Query("name"), c.Query("phone"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, bills))
}

// Customers lists bill recipients
// @Summary      List customers
// @Tags         bills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Customer}
// @Failure      500  {object}  response.Response
// @Router       /api/customers [get]
func (h *BillHandler) Customers(c *gin.Context) {
	customers, err := h.billingService.Customers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, customers))
}

// SearchCustomers filters customers by name and/or phone
// @Summary      Search customers
// @Tags         bills
// @Produce      json
// @Param        name   query     string  false  "Name substring"
// @Param        phone  query     string  false  "Phone substring"
// @Success      200    {object}  response.Response{data=[]model.Customer}
// @Failure      500    {object}  response.Response
// @Router       /api/customers/search [get]
func (h *BillHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.billingService.SearchCustomers(c.Request.Context(), c.Query("name"), c.Query("phone"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, customers))
}
