package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is the persisted tenant record.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams contains parameters for creating a tenant.
type CreateParams struct {
	Name string
	Slug string
}

// UpdateParams contains parameters for updating a tenant.
// Nil fields are left unchanged.
type UpdateParams struct {
	ID   uuid.UUID
	Name *string
	Slug *string
}

// ListParams contains optional filters for listing tenants.
type ListParams struct {
	// Name filters by case-insensitive substring match on the display name.
	Name string
}

// Repository defines tenant persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Tenant, error)
	List(ctx context.Context, params ListParams) ([]Tenant, error)
	Create(ctx context.Context, params CreateParams) (Tenant, error)
	Update(ctx context.Context, params UpdateParams) (Tenant, error)
	// Delete removes the tenant; the store cascades to its leads.
	Delete(ctx context.Context, id uuid.UUID) error
}
