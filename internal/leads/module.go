// Package leads provides the lead capture and scoring bounded context module.
package leads

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/leads/handler"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/events"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, cfg config.LeadsConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
