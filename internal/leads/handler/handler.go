package handler

import (
	"net/http"
	"strconv"

	"leadscore_backend/internal/http/middleware"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid lead ID"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts lead routes on the provided group. Static segments
// are registered before the :id routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/top", h.Top)
	rg.GET("/stats", h.Stats)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List retrieves leads in the current scope, best first.
// GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	items, err := h.svc.List(c.Request.Context(), toListQuery(req))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toListResponse(items))
}

// Create stores a new lead and returns it with its computed score.
// POST /api/v1/leads
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	middleware.RecordLeadScore(lead.Score)
	httpkit.Created(c, toResponse(lead))
}

// Top retrieves the highest scoring leads matching the filters.
// GET /api/v1/leads/top
func (h *Handler) Top(c *gin.Context) {
	var req transport.TopLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	items, err := h.svc.Top(c.Request.Context(), toListQuery(req.ListLeadsRequest), parseOptionalInt(req.Limit))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toListResponse(items))
}

// Stats returns aggregate figures over the same set the list endpoint would
// return for these filters.
// GET /api/v1/leads/stats
func (h *Handler) Stats(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), toListQuery(req))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.StatsResponse{
		TotalLeads:     stats.TotalLeads,
		AvgScore:       stats.AvgScore,
		HighScoreLeads: stats.HighScoreLeads,
	})
}

// GetByID retrieves a single lead visible in the current scope.
// GET /api/v1/leads/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	lead, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toResponse(lead))
}

// Update applies a partial update and returns the lead with its refreshed
// score.
// PUT /api/v1/leads/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	middleware.RecordLeadScore(lead.Score)
	httpkit.OK(c, toResponse(lead))
}

// Delete removes a lead visible in the current scope.
// DELETE /api/v1/leads/:id
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

// parseOptionalInt discards values that do not parse, like an absent
// parameter.
func parseOptionalInt(raw *string) *int {
	if raw == nil {
		return nil
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		return nil
	}
	return &n
}

func toListQuery(req transport.ListLeadsRequest) service.ListQuery {
	q := service.ListQuery{
		Search:   req.Search,
		MinScore: parseOptionalInt(req.MinScore),
	}
	if req.Industry != nil {
		industry := scoring.Industry(*req.Industry)
		q.Industry = &industry
	}
	if req.Urgency != nil {
		urgency := scoring.Urgency(*req.Urgency)
		q.Urgency = &urgency
	}
	return q
}

func toResponse(l repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:          l.ID,
		TenantID:    l.TenantID,
		FirstName:   l.FirstName,
		LastName:    l.LastName,
		Email:       l.Email,
		Company:     l.Company,
		Budget:      l.Budget,
		CompanySize: l.CompanySize,
		Industry:    l.Industry,
		Urgency:     l.Urgency,
		Score:       l.Score,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toListResponse(items []repository.Lead) transport.LeadListResponse {
	responses := make([]transport.LeadListItem, 0, len(items))
	for _, l := range items {
		responses = append(responses, transport.LeadListItem{
			ID:        l.ID,
			FirstName: l.FirstName,
			LastName:  l.LastName,
			Email:     l.Email,
			Company:   l.Company,
			Score:     l.Score,
			CreatedAt: l.CreatedAt,
		})
	}
	return transport.LeadListResponse{Items: responses, Total: len(responses)}
}
