package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/request"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// InvoiceHandler handles invoice and payment HTTP requests
type InvoiceHandler struct {
	billingService *service.BillingService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(billingService *service.BillingService) *InvoiceHandler {
	return &InvoiceHandler{billingService: billingService}
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	invoices, err := h.billingService.ListInvoices(c.Request.Context(), enum.InvoiceStatus(c.Query("status")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved", pagination.Paginate(invoices, params))
}

// Get returns one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// CreateFromQuote generates an invoice and its delivery note from a quote
// @Summary Invoice a Quote
// @Description Generate an invoice and delivery note from an accepted quote
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/invoice [post]
func (h *InvoiceHandler) CreateFromQuote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	invoice, err := h.billingService.CreateInvoiceFromQuote(c.Request.Context(), GetActor(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", invoice)
}

// AddPayment records a payment against an invoice
// @Summary Add Payment
// @Description Record money received against an invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.AddPaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.billingService.AddPayment(c.Request.Context(), GetActor(c), id, req.Amount, req.Method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded", invoice)
}

// ListPayments returns payments for an invoice
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.billingService.ListPayments(c.Request.Context(), &id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}
