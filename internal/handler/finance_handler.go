package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/service"
	"fishshop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	financeService service.FinanceService
}

func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

func (h *FinanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/transactions", h.List)
		api.GET("/transactions/search", h.Search)
		api.GET("/transactions/summary", h.Summary)
		api.GET("/transactions/:id/receipt", h.GetReceipt)
		api.POST("/transactions", middleware.RequireAuth(), h.Create)
	}
}

// Create records a financial transaction with an optional receipt image
// @Summary      Record transaction
// @Description  Accepts multipart form data with the transaction fields and an optional receipt_image file
// @Tags         finance
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        transaction_type  formData  string  true   "in or out"
// @Param        payment_method    formData  string  true   "cash or online"
// @Param        amount            formData  number  true   "Amount"
// @Param        client_name       formData  string  true   "Client name"
// @Param        client_phone      formData  string  false  "Client phone"
// @Param        notes             formData  string  false  "Notes"
// @Param        receipt_image     formData  file    false  "Receipt image"
// @Success      201  {object}  response.Response{data=model.FinancialTransaction}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/transactions [post]
func (h *FinanceHandler) Create(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "amount must be a number"))
		return
	}

	req := service.CreateTransactionRequest{
		TransactionType: c.PostForm("transaction_type"),
		PaymentMethod:   c.PostForm("payment_method"),
		Amount:          amount,
		ClientName:      c.PostForm("client_name"),
		ClientPhone:     c.PostForm("client_phone"),
		Notes:           c.PostForm("notes"),
	}

	if file, err := c.FormFile("receipt_image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "could not read receipt image"))
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "could not read receipt image"))
			return
		}
		req.Receipt = &service.Receipt{
			Data:        data,
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	tx, err := h.financeService.Create(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "failed to save") {
			status = http.StatusInternalServerError
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tx))
}

// List retrieves recent transactions without receipt payloads
// @Summary      List transactions
// @Tags         finance
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.FinancialTransaction}
// @Failure      500  {object}  response.Response
// @Router       /api/transactions [get]
func (h *FinanceHandler) List(c *gin.Context) {
	txs, err := h.financeService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, txs))
}

// Search filters transactions by an inclusive date range
// @Summary      Search transactions
// @Tags         finance
// @Produce      json
// @Param        start_date  query     string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query     string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response{data=[]model.FinancialTransaction}
// @Failure      400  {object}  response.Response
// @Router       /api/transactions/search [get]
func (h *FinanceHandler) Search(c *gin.Context) {
	txs, err := h.financeService.Search(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, txs))
}

// Summary tallies in/out counts and totals for a date and overall
// @Summary      Transaction summary
// @Tags         finance
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  response.Response{data=service.TransactionSummary}
// @Failure      400   {object}  response.Response
// @Router       /api/transactions/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.financeService.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// GetReceipt streams the stored receipt image
// @Summary      Get receipt image
// @Tags         finance
// @Produce      image/png
// @Param        id   path  string  true  "Transaction ID"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/transactions/{id}/receipt [get]
func (h *FinanceHandler) GetReceipt(c *gin.Context) {
	tx, err := h.financeService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReceiptNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	contentType := tx.ImageType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if tx.ImageName != "" {
		c.Header("Content-Disposition", "inline; filename=\""+tx.ImageName+"\"")
	}
	c.Data(http.StatusOK, contentType, tx.ImageData)
}
