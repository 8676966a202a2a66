package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/request"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// ProductHandler handles product and stock HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	stockService   *service.StockService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, stockService *service.StockService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		stockService:   stockService,
	}
}

// List handles listing products
// @Summary List Products
// @Description Get the product catalogue with pagination and filtering
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param category query string false "Category filter"
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", pagination.Paginate(products, params))
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.AddProduct(c.Request.Context(), GetActor(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var input service.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), GetActor(c), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles product removal
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), GetActor(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock lists products at or below their reorder threshold
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.LowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}

// AdjustStock applies a manual stock correction
// @Summary Adjust Stock
// @Description Apply a manual stock movement to a product
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request.AdjustStockRequest true "Adjustment"
// @Success 200 {object} response.APIResponse
// @Router /products/{id}/adjust-stock [post]
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.stockService.AdjustStock(c.Request.Context(), GetActor(c), id, req.Quantity, enum.MovementType(req.Type), req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted", product)
}

// Movements lists the stock movement ledger
func (h *ProductHandler) Movements(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	movements, err := h.stockService.Movements(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved", pagination.Paginate(movements, params))
}

// ProductMovements lists movements for one product
func (h *ProductHandler) ProductMovements(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	movements, err := h.stockService.Movements(c.Request.Context(), &id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock movements retrieved", movements)
}
