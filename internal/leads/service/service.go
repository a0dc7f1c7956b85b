// Package service implements lead business logic. Both write paths compute
// the score from the full post-merge criteria right before persisting, so a
// stored score always matches the stored criteria.
package service

import (
	"context"
	"math"
	"strings"

	"leadscore_backend/internal/events"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/internal/tenants"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

const defaultTopLimit = 10

// Service provides lead operations.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	cfg  config.LeadsConfig
	log  *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, bus events.Bus, cfg config.LeadsConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, cfg: cfg, log: log}
}

// ListQuery carries the optional list filters after transport-level parsing.
type ListQuery struct {
	Search   string
	Industry *scoring.Industry
	Urgency  *scoring.Urgency
	MinScore *int
}

// Create stores a new lead. The score is computed from the scoring criteria
// and is never accepted from the caller. When the request does not name a
// tenant, the lead is attached to the resolved tenant scope, if any.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (repository.Lead, error) {
	tenantID := req.TenantID
	if tenantID == nil {
		if scope := tenants.ScopeFromContext(ctx); scope.IsTenant() {
			id := scope.TenantID
			tenantID = &id
		}
	}

	score := scoring.Calculate(req.Budget, req.CompanySize, req.Industry, req.Urgency)

	lead, err := s.repo.Create(ctx, repository.CreateParams{
		TenantID:    tenantID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Company:     req.Company,
		Budget:      req.Budget,
		CompanySize: req.CompanySize,
		Industry:    req.Industry,
		Urgency:     req.Urgency,
		Score:       score,
	})
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		TenantID:  lead.TenantID,
		Email:     lead.Email,
		Company:   lead.Company,
		Score:     lead.Score,
	})

	s.log.Info("lead created", "id", lead.ID, "company", lead.Company, "score", lead.Score)
	return lead, nil
}

// GetByID retrieves a lead visible in the current tenant scope.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	return s.repo.GetByID(ctx, id, tenants.ScopeFromContext(ctx))
}

// Update applies a partial update to a lead in the current scope and
// recomputes its score from the merged criteria before persisting.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (repository.Lead, error) {
	scope := tenants.ScopeFromContext(ctx)

	lead, err := s.repo.GetByID(ctx, id, scope)
	if err != nil {
		return repository.Lead{}, err
	}

	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Email != nil {
		lead.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Company != nil {
		lead.Company = *req.Company
	}
	if req.Budget != nil {
		lead.Budget = *req.Budget
	}
	if req.CompanySize != nil {
		lead.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		lead.Industry = *req.Industry
	}
	if req.Urgency != nil {
		lead.Urgency = *req.Urgency
	}

	oldScore := lead.Score
	lead.Score = scoring.Calculate(lead.Budget, lead.CompanySize, lead.Industry, lead.Urgency)

	updated, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:          lead.ID,
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Company:     lead.Company,
		Budget:      lead.Budget,
		CompanySize: lead.CompanySize,
		Industry:    lead.Industry,
		Urgency:     lead.Urgency,
		Score:       lead.Score,
	})
	if err != nil {
		return repository.Lead{}, err
	}

	if updated.Score != oldScore {
		s.bus.Publish(ctx, events.LeadRescored{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    updated.ID,
			OldScore:  oldScore,
			NewScore:  updated.Score,
		})
	}

	return updated, nil
}

// Delete removes a lead visible in the current scope.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, tenants.ScopeFromContext(ctx))
}

// List returns leads in the current scope matching the query, best first.
func (s *Service) List(ctx context.Context, q ListQuery) ([]repository.Lead, error) {
	return s.repo.List(ctx, s.filter(ctx, q))
}

// Top returns the highest scoring leads matching the query in the current
// scope. The limit defaults when absent and is clamped to the configured
// maximum.
func (s *Service) Top(ctx context.Context, q ListQuery, limit *int) ([]repository.Lead, error) {
	n := defaultTopLimit
	if limit != nil {
		n = *limit
	}
	if n < 1 {
		n = 1
	}
	if max := s.cfg.GetTopLeadsMaxLimit(); n > max {
		n = max
	}

	return s.repo.Top(ctx, s.filter(ctx, q), n)
}

// Stats aggregates lead counts and scores over the same set a List call with
// this query would return. The average is rounded to two decimal places; an
// empty set yields zeros.
func (s *Service) Stats(ctx context.Context, q ListQuery) (repository.Stats, error) {
	stats, err := s.repo.Stats(ctx, s.filter(ctx, q))
	if err != nil {
		return repository.Stats{}, err
	}

	stats.AvgScore = math.Round(stats.AvgScore*100) / 100
	return stats, nil
}

func (s *Service) filter(ctx context.Context, q ListQuery) repository.ListFilter {
	return repository.ListFilter{
		Scope:    tenants.ScopeFromContext(ctx),
		Search:   q.Search,
		Industry: q.Industry,
		Urgency:  q.Urgency,
		MinScore: q.MinScore,
	}
}
