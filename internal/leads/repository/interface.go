package repository

import (
	"context"
	"time"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants"

	"github.com/google/uuid"
)

// Lead is the persisted lead record. Score is derived; the service computes
// it from the other criteria on every write.
type Lead struct {
	ID          uuid.UUID
	TenantID    *uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Company     string
	Budget      float64
	CompanySize int
	Industry    scoring.Industry
	Urgency     scoring.Urgency
	Score       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams contains parameters for creating a lead.
type CreateParams struct {
	TenantID    *uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Company     string
	Budget      float64
	CompanySize int
	Industry    scoring.Industry
	Urgency     scoring.Urgency
	Score       int
}

// UpdateParams is the complete post-merge state written back for a lead.
// The service merges the patch into the current record and recomputes the
// score, so criteria and score always change in the same statement.
type UpdateParams struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Company     string
	Budget      float64
	CompanySize int
	Industry    scoring.Industry
	Urgency     scoring.Urgency
	Score       int
}

// ListFilter is the composed predicate over the lead collection. All supplied
// filters are ANDed; the tenant clause applies only in tenant scope.
type ListFilter struct {
	Scope    tenants.Scope
	Search   string
	Industry *scoring.Industry
	Urgency  *scoring.Urgency
	MinScore *int
}

// Stats are aggregate figures over one filtered lead set.
type Stats struct {
	TotalLeads     int
	AvgScore       float64
	HighScoreLeads int
}

// Repository defines lead persistence operations. Results are always ordered
// score descending, then creation time descending.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Lead, error)
	GetByID(ctx context.Context, id uuid.UUID, scope tenants.Scope) (Lead, error)
	Update(ctx context.Context, params UpdateParams) (Lead, error)
	Delete(ctx context.Context, id uuid.UUID, scope tenants.Scope) error
	List(ctx context.Context, filter ListFilter) ([]Lead, error)
	Top(ctx context.Context, filter ListFilter, limit int) ([]Lead, error)
	Stats(ctx context.Context, filter ListFilter) (Stats, error)
}
