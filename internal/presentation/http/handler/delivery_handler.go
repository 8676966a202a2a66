package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/request"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// DeliveryHandler handles delivery note HTTP requests
type DeliveryHandler struct {
	deliveryService *service.DeliveryService
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(deliveryService *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// List handles listing delivery notes
func (h *DeliveryHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	deliveries, err := h.deliveryService.ListDeliveries(c.Request.Context(), enum.DeliveryStatus(c.Query("status")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deliveries retrieved", pagination.Paginate(deliveries, params))
}

// Get returns one delivery note
func (h *DeliveryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid delivery ID")
		return
	}

	delivery, err := h.deliveryService.GetDelivery(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery retrieved", delivery)
}

// Create handles manual delivery note creation
func (h *DeliveryHandler) Create(c *gin.Context) {
	var input service.CreateDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	delivery, err := h.deliveryService.AddDelivery(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Delivery note created", delivery)
}

// UpdateStatus moves a delivery note through its lifecycle
// @Summary Update Delivery Status
// @Description Transition a delivery note; confirming delivery deducts stock
// @Tags deliveries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Delivery ID"
// @Param request body request.UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /deliveries/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid delivery ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	delivery, err := h.deliveryService.UpdateDeliveryStatus(c.Request.Context(), GetActor(c), id, enum.DeliveryStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery status updated", delivery)
}
