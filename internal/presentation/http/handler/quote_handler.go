package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/request"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List handles listing quotes
// @Summary List Quotes
// @Description Get quotes with pagination and status filtering
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param status query string false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), enum.QuoteStatus(c.Query("status")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved", pagination.Paginate(quotes, params))
}

// Get returns one quote
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved", quote)
}

// Create handles quote creation
// @Summary Create Quote
// @Description Create a new DRAFT quote for a client
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.CreateQuoteInput true "Quote"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var input service.CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quote, err := h.quoteService.AddQuote(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created", quote)
}

// UpdateStatus moves a quote through its lifecycle
// @Summary Update Quote Status
// @Description Transition a quote; accepting it reserves stock
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body request.UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), GetActor(c), id, enum.QuoteStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated", quote)
}
