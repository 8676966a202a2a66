package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// ClientHandler handles client and supplier HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing clients
// @Summary List Clients
// @Description Get clients with pagination and search
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved", pagination.Paginate(clients, params))
}

// Get returns one client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved", client)
}

// Create handles client creation
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.AddClient(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created", client)
}

// Update handles client updates
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var input service.UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), GetActor(c), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated", client)
}

// ListSuppliers handles listing suppliers
func (h *ClientHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.clientService.ListSuppliers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suppliers retrieved", suppliers)
}

// CreateSupplier handles supplier creation
func (h *ClientHandler) CreateSupplier(c *gin.Context) {
	var supplier entity.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.clientService.AddSupplier(c.Request.Context(), GetActor(c), supplier)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created", created)
}
