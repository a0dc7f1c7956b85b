// Package tenants provides the tenant bounded context.
// This file defines the public API of the context: the minimal tenant
// representation and the request scope other domains consume.
// Only types and helpers defined here should be imported by other domains.
package tenants

import (
	"context"

	"github.com/google/uuid"
)

// Tenant is the minimal tenant information shared with other domains.
type Tenant struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// ScopeMode names the tenant-visibility mode of a request.
type ScopeMode int

const (
	// ScopeGlobal is the explicit no-tenant mode: leads from every tenant
	// are visible. Resolution misses land here rather than failing the
	// request. A future access-control layer can deny this mode outright.
	ScopeGlobal ScopeMode = iota
	// ScopeTenant restricts visibility to a single tenant's leads.
	ScopeTenant
)

// Scope is the tenant restriction attached to a request.
type Scope struct {
	Mode     ScopeMode
	TenantID uuid.UUID // valid only when Mode == ScopeTenant
}

// GlobalScope returns the unrestricted scope.
func GlobalScope() Scope {
	return Scope{Mode: ScopeGlobal}
}

// TenantScope returns a scope restricted to the given tenant.
func TenantScope(id uuid.UUID) Scope {
	return Scope{Mode: ScopeTenant, TenantID: id}
}

// IsTenant reports whether the scope restricts to a single tenant.
func (s Scope) IsTenant() bool {
	return s.Mode == ScopeTenant
}

type contextKey string

const (
	scopeKey  contextKey = "tenantScope"
	tenantKey contextKey = "tenant"
)

// WithScope stores the resolved scope in the context.
func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFromContext returns the request scope, defaulting to the global view
// when no resolver ran.
func ScopeFromContext(ctx context.Context) Scope {
	if scope, ok := ctx.Value(scopeKey).(Scope); ok {
		return scope
	}
	return GlobalScope()
}

// WithTenant stores the resolved tenant in the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, tenantKey, t)
}

// FromContext returns the resolved tenant, or nil when none was resolved.
func FromContext(ctx context.Context) *Tenant {
	t, _ := ctx.Value(tenantKey).(*Tenant)
	return t
}
