package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techstock/techstock-api/internal/application/service"
	"github.com/techstock/techstock-api/internal/presentation/http/dto/response"
	"github.com/techstock/techstock-api/pkg/pagination"
)

// AuditHandler handles audit log HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func auditFilter(c *gin.Context) service.AuditFilter {
	return service.AuditFilter{
		Search: c.Query("search"),
		Module: c.Query("module"),
		Date:   c.Query("date"),
	}
}

// List handles listing audit log entries
// @Summary List Audit Log
// @Description Get audit entries with pagination and filtering
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param module query string false "Module filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	logs, err := h.auditService.List(c.Request.Context(), auditFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit log retrieved", pagination.Paginate(logs, params))
}

// Modules returns the distinct module labels in the log
func (h *AuditHandler) Modules(c *gin.Context) {
	modules, err := h.auditService.Modules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Audit modules retrieved", modules)
}

// Export downloads the filtered audit log as CSV
func (h *AuditHandler) Export(c *gin.Context) {
	data, err := h.auditService.ExportCSV(c.Request.Context(), auditFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="audit_export.csv"`)
	c.Data(200, "text/csv", data)
}
