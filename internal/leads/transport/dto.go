package transport

import (
	"time"

	"github.com/google/uuid"

	"leadscore_backend/internal/leads/scoring"
)

// Request DTOs
type CreateLeadRequest struct {
	TenantID    *uuid.UUID       `json:"tenant_id,omitempty" validate:"-"`
	FirstName   string           `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string           `json:"last_name" validate:"required,min=1,max=100"`
	Email       string           `json:"email" validate:"required,email"`
	Company     string           `json:"company" validate:"required,min=1,max=200"`
	Budget      float64          `json:"budget" validate:"gte=0"`
	CompanySize int              `json:"company_size" validate:"required,gte=1"`
	Industry    scoring.Industry `json:"industry" validate:"required,oneof=tech finance healthcare other"`
	Urgency     scoring.Urgency  `json:"urgency" validate:"required,oneof=immediately this_week this_month later"`
}

type UpdateLeadRequest struct {
	FirstName   *string           `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string           `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string           `json:"email,omitempty" validate:"omitempty,email"`
	Company     *string           `json:"company,omitempty" validate:"omitempty,min=1,max=200"`
	Budget      *float64          `json:"budget,omitempty" validate:"omitempty,gte=0"`
	CompanySize *int              `json:"company_size,omitempty" validate:"omitempty,gte=1"`
	Industry    *scoring.Industry `json:"industry,omitempty" validate:"omitempty,oneof=tech finance healthcare other"`
	Urgency     *scoring.Urgency  `json:"urgency,omitempty" validate:"omitempty,oneof=immediately this_week this_month later"`
}

type ListLeadsRequest struct {
	Search   string  `form:"search" validate:"max=100"`
	Industry *string `form:"industry" validate:"omitempty,oneof=tech finance healthcare other"`
	Urgency  *string `form:"urgency" validate:"omitempty,oneof=immediately this_week this_month later"`
	MinScore *string `form:"min_score" validate:"-"`
}

// TopLeadsRequest accepts the same filters as the list endpoint plus a
// result cap.
type TopLeadsRequest struct {
	ListLeadsRequest
	Limit *string `form:"limit" validate:"-"`
}

// Response DTOs
type LeadResponse struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    *uuid.UUID       `json:"tenant_id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	Company     string           `json:"company"`
	Budget      float64          `json:"budget"`
	CompanySize int              `json:"company_size"`
	Industry    scoring.Industry `json:"industry"`
	Urgency     scoring.Urgency  `json:"urgency"`
	Score       int              `json:"score"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// LeadListItem is the abbreviated shape used for collection endpoints.
type LeadListItem struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadListResponse struct {
	Items []LeadListItem `json:"items"`
	Total int            `json:"total"`
}

type StatsResponse struct {
	TotalLeads     int     `json:"total_leads"`
	AvgScore       float64 `json:"avg_score"`
	HighScoreLeads int     `json:"high_score_leads"`
}
