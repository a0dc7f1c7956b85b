// Package tenants provides tenant resolution middleware.
package tenants

import (
	"context"
	"strings"

	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderTenantID carries the caller-supplied tenant identifier.
	HeaderTenantID = "X-Tenant-ID"
	// HeaderTenantName echoes the resolved tenant's display name.
	HeaderTenantName = "X-Tenant-Name"
)

// Lookup resolves a tenant id to its minimal representation.
type Lookup interface {
	Resolve(ctx context.Context, id uuid.UUID) (Tenant, error)
}

// Resolver returns middleware that resolves the X-Tenant-ID header once per
// request, before any lead-store access. An absent, blank, malformed, or
// unknown id degrades to the global view; resolution never fails a request.
// On success the tenant and a tenant-restricted scope are attached to the
// request context and the tenant name is echoed in the response headers.
func Resolver(lookup Lookup, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := GlobalScope()
		ctx := c.Request.Context()

		if raw := strings.TrimSpace(c.GetHeader(HeaderTenantID)); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				tenant, err := lookup.Resolve(ctx, id)
				switch {
				case err == nil:
					scope = TenantScope(tenant.ID)
					ctx = WithTenant(ctx, &tenant)
					c.Header(HeaderTenantName, tenant.Name)
					log.TenantResolved(tenant.ID.String(), tenant.Name)
				case !apperr.Is(err, apperr.KindNotFound):
					// Store faults also degrade to global view, but are
					// worth surfacing in the logs.
					log.Warn("tenant resolution failed", "tenantId", raw, "error", err)
				}
			}
		}

		c.Request = c.Request.WithContext(WithScope(ctx, scope))
		c.Next()
	}
}
