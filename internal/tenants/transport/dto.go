package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	// Slug is optional; when omitted it is derived from the name.
	Slug string `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
}

type UpdateTenantRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	// Slug changes only when explicitly supplied or when the name changes.
	Slug *string `json:"slug,omitempty" validate:"omitempty,min=1,max=255"`
}

type ListTenantsRequest struct {
	// Name filters by case-insensitive substring match.
	Name string `form:"name" validate:"max=255"`
}

// Response DTOs

type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Total int              `json:"total"`
}
