package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// FinanceHandler handles cash-register HTTP requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// parseDateRange reads optional from/to query params as YYYY-MM-DD.
// The "to" bound is inclusive of the whole day.
func parseDateRange(c *gin.Context) (from, to *time.Time) {
	if f := c.Query("from"); f != "" {
		if parsed, err := time.Parse("2006-01-02", f); err == nil {
			from = &parsed
		}
	}
	if t := c.Query("to"); t != "" {
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			end := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
			to = &end
		}
	}
	return from, to
}

// List handles listing cash-register transactions
// @Summary List Transactions
// @Description Get cash-register entries with pagination and date filtering
// @Tags finance
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /transactions [get]
func (h *FinanceHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	from, to := parseDateRange(c)
	transactions, err := h.financeService.ListTransactions(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved", pagination.Paginate(transactions, params))
}

// Create handles manual transaction creation
func (h *FinanceHandler) Create(c *gin.Context) {
	var input service.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	transaction, err := h.financeService.AddTransaction(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded", transaction)
}

// Summary totals the ledger over an optional date range
func (h *FinanceHandler) Summary(c *gin.Context) {
	from, to := parseDateRange(c)
	summary, err := h.financeService.Summary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Finance summary retrieved", summary)
}
