// Package service implements tenant business logic: slug derivation and CRUD
// orchestration over the repository.
package service

import (
	"context"
	"regexp"
	"strings"

	"leadscore_backend/internal/events"
	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

// Service provides tenant operations.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new tenants service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// GetByID retrieves a tenant by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns tenants ordered by name, optionally filtered by name substring.
func (s *Service) List(ctx context.Context, nameFilter string) ([]repository.Tenant, error) {
	return s.repo.List(ctx, repository.ListParams{Name: nameFilter})
}

// Create inserts a tenant. When no slug is supplied it is derived from the
// name deterministically.
func (s *Service) Create(ctx context.Context, name, slug string) (repository.Tenant, error) {
	if slug == "" {
		slug = GenerateSlug(name)
	}

	t, err := s.repo.Create(ctx, repository.CreateParams{Name: name, Slug: slug})
	if err != nil {
		return repository.Tenant{}, err
	}

	s.log.Info("tenant created", "id", t.ID, "name", t.Name, "slug", t.Slug)
	return t, nil
}

// Update changes the tenant's name and/or slug. A name change regenerates the
// slug unless the caller supplied one explicitly.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name, slug *string) (repository.Tenant, error) {
	params := repository.UpdateParams{ID: id, Name: name, Slug: slug}
	if name != nil && slug == nil {
		derived := GenerateSlug(*name)
		params.Slug = &derived
	}

	return s.repo.Update(ctx, params)
}

// Delete removes the tenant and, via the store cascade, all its leads.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.TenantDeleted{
		BaseEvent: events.NewBaseEvent(),
		TenantID:  t.ID,
		Name:      t.Name,
	})

	s.log.Info("tenant deleted", "id", t.ID, "name", t.Name)
	return nil
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug creates a URL-friendly slug from a name: lowercase, whitespace
// collapsed to hyphens, punctuation stripped, hyphen runs collapsed.
func GenerateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
