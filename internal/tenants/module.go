// Package tenants provides the tenant bounded context module.
package tenants

import (
	"context"

	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/tenants/handler"
	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/platform/events"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tenants bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tenants module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tenants"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Resolver returns the lookup used by the tenant resolution middleware.
func (m *Module) Resolver() Lookup {
	return serviceLookup{svc: m.service}
}

// serviceLookup adapts the service to the minimal Lookup interface so the
// middleware does not depend on the full service API.
type serviceLookup struct {
	svc *service.Service
}

func (l serviceLookup) Resolve(ctx context.Context, id uuid.UUID) (Tenant, error) {
	t, err := l.svc.GetByID(ctx, id)
	if err != nil {
		return Tenant{}, err
	}
	return Tenant{ID: t.ID, Name: t.Name, Slug: t.Slug}, nil
}

// RegisterRoutes mounts tenant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/tenants"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
