package handler

import (
	"net/http"

	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/internal/tenants/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid tenant ID"
)

// Handler handles HTTP requests for tenants.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new tenants handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts tenant routes on the provided group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List retrieves tenants, optionally filtered by name substring.
// GET /api/v1/tenants
func (h *Handler) List(c *gin.Context) {
	var req transport.ListTenantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	items, err := h.svc.List(c.Request.Context(), req.Name)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toListResponse(items))
}

// Create creates a tenant.
// POST /api/v1/tenants
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Name, req.Slug)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, toResponse(t))
}

// GetByID retrieves a tenant by ID.
// GET /api/v1/tenants/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	t, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(t))
}

// Update changes a tenant's name and/or slug.
// PUT /api/v1/tenants/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Slug)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(t))
}

// Delete removes a tenant and all its leads.
// DELETE /api/v1/tenants/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.NoContent(c)
}

func toResponse(t repository.Tenant) transport.TenantResponse {
	return transport.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toListResponse(items []repository.Tenant) transport.TenantListResponse {
	responses := make([]transport.TenantResponse, 0, len(items))
	for _, t := range items {
		responses = append(responses, toResponse(t))
	}
	return transport.TenantListResponse{Items: responses, Total: len(responses)}
}
