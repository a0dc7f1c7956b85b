package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"leadscore_backend/internal/events"
	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	tenants map[uuid.UUID]repository.Tenant
}

func newMemRepo() *memRepo {
	return &memRepo{tenants: make(map[uuid.UUID]repository.Tenant)}
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return repository.Tenant{}, apperr.NotFound("tenant not found")
	}
	return t, nil
}

func (r *memRepo) List(_ context.Context, params repository.ListParams) ([]repository.Tenant, error) {
	var items []repository.Tenant
	for _, t := range r.tenants {
		if params.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(params.Name)) {
			continue
		}
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *memRepo) Create(_ context.Context, params repository.CreateParams) (repository.Tenant, error) {
	for _, t := range r.tenants {
		if t.Slug == params.Slug {
			return repository.Tenant{}, apperr.Conflict("a tenant with this slug already exists")
		}
	}
	now := time.Now()
	t := repository.Tenant{ID: uuid.New(), Name: params.Name, Slug: params.Slug, CreatedAt: now, UpdatedAt: now}
	r.tenants[t.ID] = t
	return t, nil
}

func (r *memRepo) Update(_ context.Context, params repository.UpdateParams) (repository.Tenant, error) {
	t, ok := r.tenants[params.ID]
	if !ok {
		return repository.Tenant{}, apperr.NotFound("tenant not found")
	}
	if params.Name != nil {
		t.Name = *params.Name
	}
	if params.Slug != nil {
		t.Slug = *params.Slug
	}
	t.UpdatedAt = time.Now()
	r.tenants[t.ID] = t
	return t, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tenants[id]; !ok {
		return apperr.NotFound("tenant not found")
	}
	delete(r.tenants, id)
	return nil
}

type nopBus struct{}

func (nopBus) Publish(context.Context, events.Event) {}

func (nopBus) PublishSync(context.Context, events.Event) error { return nil }

func (nopBus) Subscribe(string, events.Handler) {}

type fixture struct {
	router *gin.Engine
	repo   *memRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemRepo()
	svc := service.New(repo, nopBus{}, logger.New("test"))
	h := New(svc, validator.New())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1/tenants"))

	return &fixture{router: router, repo: repo}
}

func (f *fixture) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTenantDerivesSlug(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/tenants", map[string]any{"name": "Acme Corp"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acme-corp", resp.Slug)
}

func TestCreateTenantDuplicateSlugConflicts(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/tenants", map[string]any{"name": "Acme Corp"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodPost, "/api/v1/tenants", map[string]any{"name": "Acme Corp"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListTenantsFiltersByName(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"Acme Corp", "Globex Industries"} {
		rec := f.do(http.MethodPost, "/api/v1/tenants", map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(http.MethodGet, "/api/v1/tenants?name=ACME", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestListTenantsRejectsOverlongNameFilter(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/tenants?name="+strings.Repeat("a", 256), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTenantNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/tenants/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTenant(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/tenants", map[string]any{"name": "Acme Corp"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.do(http.MethodDelete, "/api/v1/tenants/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/tenants/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
